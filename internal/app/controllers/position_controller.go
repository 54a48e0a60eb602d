package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/models/dto"
	"github.com/arifsetiawan/magangdik/internal/app/services"
	"github.com/arifsetiawan/magangdik/internal/middleware"
)

// PositionController handles internship position endpoints
type PositionController struct {
	positionService *services.PositionService
}

// NewPositionController creates a new PositionController
func NewPositionController(positionService *services.PositionService) *PositionController {
	return &PositionController{
		positionService: positionService,
	}
}

// CreatePosition creates a new position
// @Summary Create position
// @Description Creates a new internship position with the given quota
// @Tags positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePositionRequest true "Position information"
// @Success 201 {object} dto.APIResponse{data=dto.PositionResponse} "Position created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Position already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions [post]
func (c *PositionController) CreatePosition(ctx *gin.Context) {
	var req dto.CreatePositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	position := &models.Position{
		Title: req.Title,
		Quota: req.Quota,
	}

	if err := c.positionService.CreatePosition(ctx, position); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromPosition(position),
		Timestamp: time.Now(),
	})
}

// GetAllPositions lists all positions
// @Summary List positions
// @Description Retrieves all internship positions with quota and remaining seats. Public so applicants can see what is open.
// @Tags positions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PositionResponse} "Positions retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions [get]
func (c *PositionController) GetAllPositions(ctx *gin.Context) {
	positions, err := c.positionService.GetAllPositions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromPositions(positions),
		Timestamp: time.Now(),
	})
}

// GetPositionByID retrieves a position
// @Summary Get position by ID
// @Description Retrieves a specific internship position
// @Tags positions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Success 200 {object} dto.APIResponse{data=dto.PositionResponse} "Position retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid position ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Position not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions/{id} [get]
func (c *PositionController) GetPositionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	position, err := c.positionService.GetPositionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromPosition(position),
		Timestamp: time.Now(),
	})
}

// UpdatePosition updates a position
// @Summary Update position
// @Description Updates a position's title and quota. The quota cannot go below the number of seats already filled.
// @Tags positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Param request body dto.UpdatePositionRequest true "Updated position information"
// @Success 200 {object} dto.APIResponse{data=dto.PositionResponse} "Position updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Position not found"
// @Failure 409 {object} dto.ErrorResponse "Title taken or quota below filled count"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions/{id} [put]
func (c *PositionController) UpdatePosition(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	position := &models.Position{
		ID:    id,
		Title: req.Title,
		Quota: req.Quota,
	}

	if err := c.positionService.UpdatePosition(ctx, position); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.positionService.GetPositionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromPosition(updated),
		Timestamp: time.Now(),
	})
}

// DeletePosition deletes a position
// @Summary Delete position
// @Description Deletes a position. Positions still assigned to applicants cannot be deleted.
// @Tags positions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Success 204 "Position deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid position ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Position not found"
// @Failure 409 {object} dto.ErrorResponse "Position still referenced by applicants"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /positions/{id} [delete]
func (c *PositionController) DeletePosition(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.positionService.DeletePosition(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

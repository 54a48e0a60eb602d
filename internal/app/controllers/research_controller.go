package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/models/dto"
	"github.com/arifsetiawan/magangdik/internal/app/services"
	"github.com/arifsetiawan/magangdik/internal/middleware"
	"github.com/arifsetiawan/magangdik/internal/pkg/helpers"
)

// ResearchController handles research permit request endpoints
type ResearchController struct {
	researchService *services.ResearchService
}

// NewResearchController creates a new ResearchController
func NewResearchController(researchService *services.ResearchService) *ResearchController {
	return &ResearchController{
		researchService: researchService,
	}
}

// CreateRequest registers a new research permit request
// @Summary Submit research permit request
// @Description Registers a new research permit request with status PENDING
// @Tags research-requests
// @Accept json
// @Produce json
// @Param request body dto.CreateResearchRequest true "Research request information"
// @Success 201 {object} dto.APIResponse{data=dto.ResearchResponse} "Request registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research-requests [post]
func (c *ResearchController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateResearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid start date")
		errorDetail = errorDetail.WithField("startDate")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid end date")
		errorDetail = errorDetail.WithField("endDate")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request := &models.ResearchRequest{
		FullName:       req.FullName,
		IdentityNumber: req.IdentityNumber,
		Email:          req.Email,
		Phone:          req.Phone,
		Institution:    req.Institution,
		Title:          req.Title,
		Subject:        req.Subject,
		StartDate:      startDate,
		EndDate:        endDate,
	}

	if err := c.researchService.CreateRequest(ctx, request); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromResearchRequest(request),
		Timestamp: time.Now(),
	})
}

// GetAllRequests lists research requests with status filter and pagination
// @Summary List research requests
// @Description Retrieves research permit requests filtered by status with pagination
// @Tags research-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, ACCEPTED, REJECTED)"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ResearchListResponse} "Requests retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research-requests [get]
func (c *ResearchController) GetAllRequests(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	status := models.ApplicationStatus(ctx.Query("status"))

	requests, total, err := c.researchService.ListRequests(ctx, status, int(offset), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ResearchListResponse{
			Requests:   dto.FromResearchRequests(requests),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetRequestByID retrieves a research request
// @Summary Get research request by ID
// @Description Retrieves a specific research permit request
// @Tags research-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResearchResponse} "Request retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research-requests/{id} [get]
func (c *ResearchController) GetRequestByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.researchService.GetRequestByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromResearchRequest(request),
		Timestamp: time.Now(),
	})
}

// UpdateRequestStatus records a review decision on a research request
// @Summary Decide on a research request
// @Description Moves a research request from PENDING to ACCEPTED or REJECTED. Repeating an identical decision is a no-op.
// @Tags research-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateResearchStatusRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=dto.ResearchResponse} "Decision recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research-requests/{id}/status [put]
func (c *ResearchController) UpdateRequestStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateResearchStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.researchService.Decide(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	request, err := c.researchService.GetRequestByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromResearchRequest(request),
		Timestamp: time.Now(),
	})
}

// DeleteRequest deletes a research request
// @Summary Delete research request
// @Description Deletes a research permit request
// @Tags research-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 204 "Request deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /research-requests/{id} [delete]
func (c *ResearchController) DeleteRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.researchService.DeleteRequest(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

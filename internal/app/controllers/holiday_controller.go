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

// HolidayController handles holiday calendar endpoints
type HolidayController struct {
	holidayService *services.HolidayService
}

// NewHolidayController creates a new HolidayController
func NewHolidayController(holidayService *services.HolidayService) *HolidayController {
	return &HolidayController{
		holidayService: holidayService,
	}
}

// CreateHoliday adds a holiday date
// @Summary Add holiday
// @Description Records a holiday date that is skipped in working-day calculations
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHolidayRequest true "Holiday information"
// @Success 201 {object} dto.APIResponse{data=dto.HolidayResponse} "Holiday created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Holiday already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holidays [post]
func (c *HolidayController) CreateHoliday(ctx *gin.Context) {
	var req dto.CreateHolidayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date")
		errorDetail = errorDetail.WithField("date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	holiday := &models.Holiday{
		Date:        date,
		Description: req.Description,
	}

	if err := c.holidayService.CreateHoliday(ctx, holiday); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromHoliday(holiday),
		Timestamp: time.Now(),
	})
}

// GetAllHolidays lists all holidays
// @Summary List holidays
// @Description Retrieves all recorded holidays ordered by date. Public so the application form can show the calendar.
// @Tags holidays
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.HolidayResponse} "Holidays retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holidays [get]
func (c *HolidayController) GetAllHolidays(ctx *gin.Context) {
	holidays, err := c.holidayService.GetAllHolidays(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromHolidays(holidays),
		Timestamp: time.Now(),
	})
}

// DeleteHoliday deletes a holiday
// @Summary Delete holiday
// @Description Deletes a recorded holiday date
// @Tags holidays
// @Produce json
// @Security BearerAuth
// @Param id path int true "Holiday ID"
// @Success 204 "Holiday deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid holiday ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Holiday not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holidays/{id} [delete]
func (c *HolidayController) DeleteHoliday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.holidayService.DeleteHoliday(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

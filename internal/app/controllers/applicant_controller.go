package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/models/dto"
	"github.com/arifsetiawan/magangdik/internal/app/services"
	"github.com/arifsetiawan/magangdik/internal/middleware"
	"github.com/arifsetiawan/magangdik/internal/pkg/helpers"
)

// ApplicantController handles internship application endpoints
type ApplicantController struct {
	applicantService *services.ApplicantService
}

// NewApplicantController creates a new ApplicantController
func NewApplicantController(applicantService *services.ApplicantService) *ApplicantController {
	return &ApplicantController{
		applicantService: applicantService,
	}
}

// CreateApplicant registers a new internship application
// @Summary Submit internship application
// @Description Registers a new internship application with attached documents. The end date is computed on the server from the start date and requested working days.
// @Tags applicants
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Applicant full name"
// @Param email formData string true "Applicant email"
// @Param phone formData string true "Applicant phone number"
// @Param institution formData string true "Applicant institution"
// @Param major formData string true "Applicant study program"
// @Param startDate formData string true "Requested start date (YYYY-MM-DD)"
// @Param durationDays formData int true "Requested duration in working days"
// @Param coverLetter formData file false "Cover letter document"
// @Param recommendationLetter formData file false "Recommendation letter document"
// @Param photo formData file false "Applicant photo"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicantResponse} "Application registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applicants [post]
func (c *ApplicantController) CreateApplicant(ctx *gin.Context) {
	var req dto.CreateApplicantRequest
	if err := ctx.ShouldBind(&req); err != nil {
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

	// Attachments are optional on the form; missing files come back as nil
	coverLetter, _ := ctx.FormFile("coverLetter")
	recommendationLetter, _ := ctx.FormFile("recommendationLetter")
	photo, _ := ctx.FormFile("photo")

	applicant := &models.Applicant{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Institution:  req.Institution,
		Major:        req.Major,
		StartDate:    startDate,
		DurationDays: req.DurationDays,
	}

	if err := c.applicantService.Register(ctx, applicant, coverLetter, recommendationLetter, photo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromApplicant(applicant),
		Timestamp: time.Now(),
	})
}

// CalculateEndDate computes an internship end date without registering
// @Summary Calculate internship end date
// @Description Returns the end date for an internship starting on startDate and spanning workingDays working days. Weekends and recorded holidays are skipped.
// @Tags applicants
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param workingDays query int true "Duration in working days"
// @Success 200 {object} dto.APIResponse{data=dto.EndDateResponse} "End date calculated"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applicants/end-date [get]
func (c *ApplicantController) CalculateEndDate(ctx *gin.Context) {
	startDate, err := helpers.ParseDate(ctx.Query("startDate"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid start date")
		errorDetail = errorDetail.WithField("startDate")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	workingDays, err := strconv.Atoi(ctx.Query("workingDays"))
	if err != nil || workingDays < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid working day count")
		errorDetail = errorDetail.WithField("workingDays")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	endDate, err := c.applicantService.ComputeEndDate(ctx, startDate, workingDays)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.EndDateResponse{
			StartDate:   startDate.Format(dto.DateFormat),
			WorkingDays: workingDays,
			EndDate:     endDate.Format(dto.DateFormat),
		},
		Timestamp: time.Now(),
	})
}

// GetAllApplicants lists applicants with status filter and pagination
// @Summary List applicants
// @Description Retrieves applicants filtered by status with pagination
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, ACCEPTED, REJECTED)"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantListResponse} "Applicants retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applicants [get]
func (c *ApplicantController) GetAllApplicants(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	status := models.ApplicationStatus(ctx.Query("status"))

	applicants, total, err := c.applicantService.ListApplicants(ctx, status, int(offset), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ApplicantListResponse{
			Applicants: dto.FromApplicants(applicants),
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetApplicantByID retrieves a single applicant
// @Summary Get applicant by ID
// @Description Retrieves a specific applicant including the assigned position
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Applicant ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantResponse} "Applicant retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid applicant ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applicants/{id} [get]
func (c *ApplicantController) GetApplicantByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	applicant, err := c.applicantService.GetApplicantByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromApplicant(applicant),
		Timestamp: time.Now(),
	})
}

// UpdateApplicantStatus records a review decision
// @Summary Decide on an application
// @Description Moves an applicant from PENDING to ACCEPTED or REJECTED. Accepting requires a position and claims one quota seat; a full position rejects the decision. Repeating an identical decision is a no-op.
// @Tags applicants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Applicant ID"
// @Param request body dto.UpdateApplicantStatusRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantResponse} "Decision recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Applicant or position not found"
// @Failure 409 {object} dto.ErrorResponse "Position full or application already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applicants/{id}/status [put]
func (c *ApplicantController) UpdateApplicantStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicantStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.applicantService.Decide(ctx, id, req.Status, req.PositionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	applicant, err := c.applicantService.GetApplicantByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromApplicant(applicant),
		Timestamp: time.Now(),
	})
}

// UpdateApplicantDates rewrites an applicant's internship period
// @Summary Update internship period
// @Description Sets a new start date and duration. The end date is recomputed on the server against the holiday calendar.
// @Tags applicants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Applicant ID"
// @Param request body dto.UpdateApplicantDatesRequest true "New internship period"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantResponse} "Period updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applicants/{id}/dates [put]
func (c *ApplicantController) UpdateApplicantDates(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicantDatesRequest
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

	applicant, err := c.applicantService.UpdateDates(ctx, id, startDate, req.DurationDays)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromApplicant(applicant),
		Timestamp: time.Now(),
	})
}

// DeleteApplicant deletes an applicant
// @Summary Delete applicant
// @Description Deletes an applicant. An accepted applicant's position seat is released and stored documents are removed.
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Applicant ID"
// @Success 204 "Applicant deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid applicant ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applicants/{id} [delete]
func (c *ApplicantController) DeleteApplicant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicantService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

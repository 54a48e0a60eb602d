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
)

// AdminController handles admin account management endpoints
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateAdmin creates a new admin account
// @Summary Create admin account
// @Description Creates a new admin account with a hashed password
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin account information"
// @Success 201 {object} dto.APIResponse{data=dto.AdminResponse} "Admin created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admin := &models.Admin{
		Username: req.Username,
		FullName: req.FullName,
		Jabatan:  req.Jabatan,
	}

	if err := c.adminService.CreateAdmin(ctx, admin, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromAdmin(admin),
		Timestamp: time.Now(),
	})
}

// GetAllAdmins lists all admin accounts
// @Summary List admin accounts
// @Description Retrieves all admin accounts
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminResponse} "Admins retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins [get]
func (c *AdminController) GetAllAdmins(ctx *gin.Context) {
	admins, err := c.adminService.GetAllAdmins(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.AdminResponse, 0, len(admins))
	for _, admin := range admins {
		responses = append(responses, dto.FromAdmin(admin))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// GetAdminByID retrieves an admin account
// @Summary Get admin by ID
// @Description Retrieves a specific admin account
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=dto.AdminResponse} "Admin retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid admin ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins/{id} [get]
func (c *AdminController) GetAdminByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	admin, err := c.adminService.GetAdminByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromAdmin(admin),
		Timestamp: time.Now(),
	})
}

// UpdateAdmin updates an admin's profile
// @Summary Update admin account
// @Description Updates an admin's username, full name and jabatan
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Updated admin information"
// @Success 200 {object} dto.APIResponse{data=dto.AdminResponse} "Admin updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admin := &models.Admin{
		ID:       id,
		Username: req.Username,
		FullName: req.FullName,
		Jabatan:  req.Jabatan,
	}

	if err := c.adminService.UpdateAdmin(ctx, admin); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromAdmin(admin),
		Timestamp: time.Now(),
	})
}

// ChangePassword changes an admin's password
// @Summary Change admin password
// @Description Replaces an admin's password after verifying the old one
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password changed"
// @Failure 400 {object} dto.ErrorResponse "Old password does not match"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins/{id}/password [put]
func (c *AdminController) ChangePassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.ChangePassword(ctx, id, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Password changed"},
		Timestamp: time.Now(),
	})
}

// DeleteAdmin deletes an admin account
// @Summary Delete admin account
// @Description Deletes an admin account. Admins cannot delete their own account.
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 204 "Admin deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid admin ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 409 {object} dto.ErrorResponse "Cannot delete own account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	actorID, _ := middleware.AdminIDFromContext(ctx)

	if err := c.adminService.DeleteAdmin(ctx, id, actorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

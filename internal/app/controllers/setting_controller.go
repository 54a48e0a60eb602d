package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arifsetiawan/magangdik/internal/app/models/dto"
	"github.com/arifsetiawan/magangdik/internal/app/services"
	"github.com/arifsetiawan/magangdik/internal/middleware"
)

// SettingController handles portal setting endpoints
type SettingController struct {
	settingService *services.SettingService
}

// NewSettingController creates a new SettingController
func NewSettingController(settingService *services.SettingService) *SettingController {
	return &SettingController{
		settingService: settingService,
	}
}

// GetAllSettings lists all settings
// @Summary List settings
// @Description Retrieves all portal settings. Public so the frontend can render contact details and announcements.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.SettingResponse} "Settings retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings [get]
func (c *SettingController) GetAllSettings(ctx *gin.Context) {
	settings, err := c.settingService.GetAllSettings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.SettingResponse, 0, len(settings))
	for _, setting := range settings {
		responses = append(responses, dto.SettingResponse{Key: setting.Key, Value: setting.Value})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// GetSetting retrieves a setting by key
// @Summary Get setting
// @Description Retrieves a single portal setting by key
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=dto.SettingResponse} "Setting retrieved"
// @Failure 404 {object} dto.ErrorResponse "Setting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/{key} [get]
func (c *SettingController) GetSetting(ctx *gin.Context) {
	key := ctx.Param("key")

	setting, err := c.settingService.GetSetting(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SettingResponse{Key: setting.Key, Value: setting.Value},
		Timestamp: time.Now(),
	})
}

// UpdateSetting writes a setting value
// @Summary Update setting
// @Description Writes a portal setting value, creating the key if it does not exist
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body dto.UpdateSettingRequest true "New value"
// @Success 200 {object} dto.APIResponse{data=dto.SettingResponse} "Setting saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/{key} [put]
func (c *SettingController) UpdateSetting(ctx *gin.Context) {
	key := ctx.Param("key")

	var req dto.UpdateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	setting, err := c.settingService.UpdateSetting(ctx, key, req.Value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SettingResponse{Key: setting.Key, Value: setting.Value},
		Timestamp: time.Now(),
	})
}

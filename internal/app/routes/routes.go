package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arifsetiawan/magangdik/internal/app/controllers"
	"github.com/arifsetiawan/magangdik/internal/app/models/dto"
	"github.com/arifsetiawan/magangdik/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	applicantController *controllers.ApplicantController,
	positionController *controllers.PositionController,
	researchController *controllers.ResearchController,
	holidayController *controllers.HolidayController,
	settingController *controllers.SettingController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	// Applicants submit forms and look up open positions without a session.
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	applicants := v1.Group("/applicants")
	{
		applicants.POST("", applicantController.CreateApplicant)
		applicants.GET("/end-date", applicantController.CalculateEndDate)
	}

	positions := v1.Group("/positions")
	{
		positions.GET("", positionController.GetAllPositions)
	}

	research := v1.Group("/research-requests")
	{
		research.POST("", researchController.CreateRequest)
	}

	holidays := v1.Group("/holidays")
	{
		holidays.GET("", holidayController.GetAllHolidays)
	}

	settings := v1.Group("/settings")
	{
		settings.GET("", settingController.GetAllSettings)
		settings.GET("/:key", settingController.GetSetting)
	}

	// --- Admin routes ---
	// Everything below requires a valid session.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticatedAuth := authenticated.Group("/auth")
		{
			authenticatedAuth.POST("/logout", authController.Logout)
			authenticatedAuth.GET("/me", authController.Me)
		}

		admins := authenticated.Group("/admins")
		{
			admins.POST("", adminController.CreateAdmin)
			admins.GET("", adminController.GetAllAdmins)
			admins.GET("/:id", adminController.GetAdminByID)
			admins.PUT("/:id", adminController.UpdateAdmin)
			admins.PUT("/:id/password", adminController.ChangePassword)
			admins.DELETE("/:id", adminController.DeleteAdmin)
		}

		applicantsProtected := authenticated.Group("/applicants")
		{
			applicantsProtected.GET("", applicantController.GetAllApplicants)
			applicantsProtected.GET("/:id", applicantController.GetApplicantByID)
			applicantsProtected.PUT("/:id/status", applicantController.UpdateApplicantStatus)
			applicantsProtected.PUT("/:id/dates", applicantController.UpdateApplicantDates)
			applicantsProtected.DELETE("/:id", applicantController.DeleteApplicant)
		}

		positionsProtected := authenticated.Group("/positions")
		{
			positionsProtected.POST("", positionController.CreatePosition)
			positionsProtected.GET("/:id", positionController.GetPositionByID)
			positionsProtected.PUT("/:id", positionController.UpdatePosition)
			positionsProtected.DELETE("/:id", positionController.DeletePosition)
		}

		researchProtected := authenticated.Group("/research-requests")
		{
			researchProtected.GET("", researchController.GetAllRequests)
			researchProtected.GET("/:id", researchController.GetRequestByID)
			researchProtected.PUT("/:id/status", researchController.UpdateRequestStatus)
			researchProtected.DELETE("/:id", researchController.DeleteRequest)
		}

		holidaysProtected := authenticated.Group("/holidays")
		{
			holidaysProtected.POST("", holidayController.CreateHoliday)
			holidaysProtected.DELETE("/:id", holidayController.DeleteHoliday)
		}

		settingsProtected := authenticated.Group("/settings")
		{
			settingsProtected.PUT("/:key", settingController.UpdateSetting)
		}

		authenticated.GET("/stats", statsController.GetStats)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}

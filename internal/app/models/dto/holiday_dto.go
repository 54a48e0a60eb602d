package dto

import "github.com/arifsetiawan/magangdik/internal/app/models"

// CreateHolidayRequest represents a request to add a holiday date
type CreateHolidayRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description" binding:"required"`
}

// HolidayResponse represents a holiday calendar entry
type HolidayResponse struct {
	ID          int64  `json:"id" example:"1"`
	Date        string `json:"date" example:"2026-08-17"`
	Description string `json:"description" example:"Hari Kemerdekaan"`
}

// FromHoliday converts a models.Holiday to a HolidayResponse
func FromHoliday(holiday *models.Holiday) HolidayResponse {
	if holiday == nil {
		return HolidayResponse{}
	}
	return HolidayResponse{
		ID:          holiday.ID,
		Date:        holiday.Date.Format(DateFormat),
		Description: holiday.Description,
	}
}

// FromHolidays converts a slice of holidays to responses
func FromHolidays(holidays []*models.Holiday) []HolidayResponse {
	responses := make([]HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		responses = append(responses, FromHoliday(holiday))
	}
	return responses
}

package dto

import "github.com/arifsetiawan/magangdik/internal/app/models"

// CreatePositionRequest represents a request to create a position
type CreatePositionRequest struct {
	Title string `json:"title" binding:"required"`
	Quota int    `json:"quota" binding:"required,min=1"`
}

// UpdatePositionRequest represents a request to update a position
type UpdatePositionRequest struct {
	Title string `json:"title" binding:"required"`
	Quota int    `json:"quota" binding:"required,min=1"`
}

// PositionResponse represents a position with its remaining slots
type PositionResponse struct {
	ID        int64  `json:"id" example:"1"`
	Title     string `json:"title" example:"Bidang Kurikulum"`
	Quota     int    `json:"quota" example:"3"`
	Filled    int    `json:"filled" example:"1"`
	Remaining int    `json:"remaining" example:"2"`
}

// FromPosition converts a models.Position to a PositionResponse
func FromPosition(position *models.Position) PositionResponse {
	if position == nil {
		return PositionResponse{}
	}
	return PositionResponse{
		ID:        position.ID,
		Title:     position.Title,
		Quota:     position.Quota,
		Filled:    position.Filled,
		Remaining: position.Remaining(),
	}
}

// FromPositions converts a slice of positions to responses
func FromPositions(positions []*models.Position) []PositionResponse {
	responses := make([]PositionResponse, 0, len(positions))
	for _, position := range positions {
		responses = append(responses, FromPosition(position))
	}
	return responses
}

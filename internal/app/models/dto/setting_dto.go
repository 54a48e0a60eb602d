package dto

// UpdateSettingRequest represents a key/value upsert
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// SettingResponse represents a settings row
type SettingResponse struct {
	Key   string `json:"key" example:"contact_email"`
	Value string `json:"value" example:"magang@disdik.example.id"`
}

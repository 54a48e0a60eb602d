package dto

import "github.com/arifsetiawan/magangdik/internal/app/models"

// CreateAdminRequest represents a request to create an admin account
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Jabatan  string `json:"jabatan" binding:"required"`
}

// UpdateAdminRequest represents a profile update for an admin account
type UpdateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	FullName string `json:"fullName" binding:"required"`
	Jabatan  string `json:"jabatan" binding:"required"`
}

// ChangePasswordRequest represents a password change with old-password check
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// AdminResponse represents an admin account's public fields
type AdminResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	FullName string `json:"fullName" example:"Siti Rahayu"`
	Jabatan  string `json:"jabatan" example:"Kepala Bidang Pembinaan"`
}

// FromAdmin converts a models.Admin to an AdminResponse
func FromAdmin(admin *models.Admin) AdminResponse {
	if admin == nil {
		return AdminResponse{}
	}
	return AdminResponse{
		ID:       admin.ID,
		Username: admin.Username,
		FullName: admin.FullName,
		Jabatan:  admin.Jabatan,
	}
}

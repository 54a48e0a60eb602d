package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Admin errors
var (
	ErrAdminNotFound         = errors.New("admin not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrWrongOldPassword      = errors.New("old password does not match")
	ErrSelfDeletion          = errors.New("admins cannot delete their own account")
)

// Position errors
var (
	ErrPositionNotFound   = errors.New("position not found")
	ErrPositionExists     = errors.New("position with this title already exists")
	ErrPositionFull       = errors.New("position quota is already filled")
	ErrPositionReferenced = errors.New("position is referenced by applicants and cannot be deleted")
)

// Applicant errors
var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrApplicantDecided  = errors.New("applicant status has already been decided")
	ErrPositionRequired  = errors.New("a position is required to accept an applicant")
	ErrInvalidStatus     = errors.New("invalid application status")
	ErrResearchNotFound  = errors.New("research request not found")
)

// Holiday errors
var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("holiday with this date already exists")
)

// Setting errors
var (
	ErrSettingNotFound = errors.New("setting not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

package models

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// IsValid checks whether the status is one of the known states
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsDecided reports whether the status is a terminal review decision
func (s ApplicationStatus) IsDecided() bool {
	return s == StatusAccepted || s == StatusRejected
}

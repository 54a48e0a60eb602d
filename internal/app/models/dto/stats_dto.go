package dto

// StatusCounts holds per-status totals for one application type
type StatusCounts struct {
	Pending  int64 `json:"pending" example:"4"`
	Accepted int64 `json:"accepted" example:"10"`
	Rejected int64 `json:"rejected" example:"2"`
	Total    int64 `json:"total" example:"16"`
}

// QuotaSummary aggregates quota usage across all positions
type QuotaSummary struct {
	TotalQuota  int64 `json:"totalQuota" example:"12"`
	TotalFilled int64 `json:"totalFilled" example:"7"`
}

// StatsResponse is the admin dashboard summary
type StatsResponse struct {
	Applicants       StatusCounts `json:"applicants"`
	ResearchRequests StatusCounts `json:"researchRequests"`
	Positions        QuotaSummary `json:"positions"`
	ActiveInterns    int64        `json:"activeInterns" example:"5"`
}

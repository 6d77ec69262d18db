package dto

type AnalyticsResponseDTO struct {
	TotalUsers  int               `json:"total_users" example:"120"`
	ActiveUsers int               `json:"active_users" example:"95"`
	TotalJobs   int               `json:"total_jobs" example:"40"`
	OpenJobs    int               `json:"open_jobs" example:"12"`
	Revenue     RevenueSummaryDTO `json:"revenue"`
}

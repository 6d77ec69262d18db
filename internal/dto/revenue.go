package dto

type RevenueSummaryDTO struct {
	Total      float64 `json:"total" example:"1099.5"`
	Week       float64 `json:"week" example:"140"`
	Today      float64 `json:"today" example:"30"`
	GrowthRate float64 `json:"growth_rate" example:"150"`
}

type UserRevenueResponseDTO struct {
	Earnings     float64          `json:"earnings" example:"250"`
	Transactions []TransactionDTO `json:"transactions"`
}

type PlatformRevenueResponseDTO struct {
	PlatformRevenue RevenueSummaryDTO `json:"platform_revenue"`
	Transactions    []TransactionDTO  `json:"transactions"`
}

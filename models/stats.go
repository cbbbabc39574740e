package models

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	Users             int     `json:"users"`
	Providers         int     `json:"providers"`
	ApprovedProviders int     `json:"approvedProviders"`
	ApprovedReviews   int     `json:"approvedReviews"`
	PendingReviews    int     `json:"pendingReviews"`
	Payments          int     `json:"payments"`
}

// MonthlyRevenue is one bucket of the revenue chart.
type MonthlyRevenue struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

package models

// Stats summarizes the account population for the dashboard overview.
type Stats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	TotalAdmins int `json:"totalAdmins"`
}

package models

// DashboardMetrics is the at-a-glance ingestion overview for the admin
// panel: headcount plus today's badge activity.
type DashboardMetrics struct {
	TotalEmployees      int `json:"totalEmployees"`
	LogsToday           int `json:"logsToday"`
	PresentToday        int `json:"presentToday"`        // distinct employees with a Check-IN today
	IncompleteYesterday int `json:"incompleteYesterday"` // Check-IN without Check-OUT yesterday
}

// ActivityEntry is one row of the audit trail.
type ActivityEntry struct {
	ID         int64   `json:"id"`
	UserID     *string `json:"userId"`
	UserName   *string `json:"userName,omitempty"`
	Action     string  `json:"action"`
	EntityType string  `json:"entityType"`
	EntityID   string  `json:"entityId"`
	Details    *string `json:"details,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

package report

// AdminDashboardResponse is the combined read-only view for the admin
// dashboard. It composes ledger output and derives nothing new.
type AdminDashboardResponse struct {
	TotalEmployees int64                `json:"total_employees"`
	Today          TodayAttendanceStats `json:"today"`
	PendingLeaves  int64                `json:"pending_leaves"`
}

// TodayAttendanceStats counts today's attendance rows by status.
// NotSignedIn is employees with no row for the day.
type TodayAttendanceStats struct {
	Present     int64  `json:"present"`
	HalfDay     int64  `json:"half_day"`
	Absent      int64  `json:"absent"`
	NotSignedIn int64  `json:"not_signed_in"`
	Date        string `json:"date"` // Format: "YYYY-MM-DD"
}

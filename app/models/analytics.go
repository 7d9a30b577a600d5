package models

// PartitionTotals is a count and amount pair for one slice of records.
type PartitionTotals struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// AdminAnalytics is the school-wide rollup for the admin dashboard.
type AdminAnalytics struct {
	TotalAdmins      int     `json:"total_admins"`
	TotalStudents    int     `json:"total_students"`
	TotalClasses     int     `json:"total_classes"`
	TotalCollections float64 `json:"total_collections"`
}

// ClassAnalytics summarizes today's records for one class.
type ClassAnalytics struct {
	TotalStudents  int             `json:"total_students"`
	TotalAmount    float64         `json:"total_amount"`
	PaidStudents   PartitionTotals `json:"paid_students"`
	UnpaidStudents PartitionTotals `json:"unpaid_students"`
}

// DailyAnalytics partitions one day's records into paid, unpaid and absent.
// Absent records count toward TotalRecords but their amounts stay out of
// TotalAmount.
type DailyAnalytics struct {
	Date          string          `json:"date"`
	TotalRecords  int             `json:"total_records"`
	TotalAmount   float64         `json:"total_amount"`
	PaidRecords   PartitionTotals `json:"paid_records"`
	UnpaidRecords PartitionTotals `json:"unpaid_records"`
	AbsentRecords PartitionTotals `json:"absent_records"`
}

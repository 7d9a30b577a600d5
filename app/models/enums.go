package models

// UserRole defines the possible roles for an application user.
type UserRole string

const (
	SuperAdmin UserRole = "SUPER_ADMIN"
	Admin      UserRole = "ADMIN"
	Teacher    UserRole = "TEACHER"
)

// Gender defines the possible gender values for a user or student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// SettingAmount is the settings key holding the standing daily canteen fee.
const SettingAmount = "amount"

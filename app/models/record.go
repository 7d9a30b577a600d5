package models

import "time"

// Record is one student's canteen charge for one day. At most one record
// exists per (payed_by, submited_at) pair; the database enforces this and
// daily generation relies on it to stay idempotent.
type Record struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassID        string    `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	PayedBy        string    `json:"payed_by" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubmitedAt     time.Time `json:"submited_at" gorm:"not null;type:date" validate:"required"`
	Amount         float64   `json:"amount" gorm:"not null;type:numeric(10,2)"`
	HasPaid        bool      `json:"has_paid" gorm:"default:false"`
	IsPrepaid      bool      `json:"is_prepaid" gorm:"default:false"`
	IsAbsent       bool      `json:"is_absent" gorm:"default:false"`
	SettingsAmount float64   `json:"settings_amount" gorm:"not null;type:numeric(10,2)"`
	SubmitedBy     string    `json:"submited_by" gorm:"index;type:uuid"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:PayedBy;references:ID"`
	Class   *Class   `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

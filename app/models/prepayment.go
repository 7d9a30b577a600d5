package models

import "time"

// Prepayment is a pre-purchased block of canteen days for one student,
// amortized over the weekdays of [start_date, end_date].
type Prepayment struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID    string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID      string    `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount       float64   `json:"amount" gorm:"not null;type:numeric(10,2)" validate:"required,gt=0"`
	StartDate    time.Time `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate      time.Time `json:"end_date" gorm:"not null;type:date" validate:"required"`
	NumberOfDays int       `json:"number_of_days" gorm:"not null" validate:"required,gt=0"`
	PerDayAmount float64   `json:"per_day_amount" gorm:"not null;type:numeric(10,2)"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Class   *Class   `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

// CoversDate reports whether the prepayment window contains d (inclusive).
func (p *Prepayment) CoversDate(d time.Time) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

package models

import "time"

// Student represents an enrolled pupil tracked by the canteen.
type Student struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string    `json:"name" gorm:"not null" validate:"required"`
	Age         int       `json:"age,omitempty"`
	Gender      Gender    `json:"gender,omitempty" gorm:"type:varchar(10)"`
	ParentPhone string    `json:"parent_phone,omitempty" gorm:"type:varchar(20)"`
	ClassID     *string   `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Class       *Class    `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// CrewMember is the employee taking the assessment. Authentication against
// shipboard HR systems is outside this service; the record exists so attempts
// have an owner.
type CrewMember struct {
	ID       uint         `json:"id" gorm:"primaryKey"`
	Name     string       `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Email    string       `json:"email" gorm:"not null;uniqueIndex;size:254" validate:"required,email"`
	Division DivisionType `json:"division" gorm:"not null" validate:"required,division_type"`
	Position string       `json:"position" gorm:"size:100"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (CrewMember) TableName() string {
	return "crew_members"
}

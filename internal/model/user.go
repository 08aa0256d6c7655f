package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"not null;uniqueIndex"`
	Role  string `json:"role" gorm:"not null;default:'student'"` // "student", "teacher"

	// Academic snapshot used to derive a submission's learning pace. Both are
	// percentages in [0,100], maintained by the user management side.
	Attendance float64 `json:"attendance"`
	Marks      float64 `json:"marks"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

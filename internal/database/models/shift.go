package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift is one concrete, dated work assignment. Rows with Origin "template"
// are owned by the publish/diff engine; rows created or resized by the
// coverage engine carry Origin "coverage" and are left alone on re-publish.
// Invariant: StartTime < EndTime.
type Shift struct {
	BaseModel
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	RoleID       uuid.UUID  `json:"role_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date         time.Time  `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime    TimeOfDay  `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime      TimeOfDay  `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	CourseTypeID *uuid.UUID `json:"course_type_id,omitempty" gorm:"type:uuid"`
	Approved     bool       `json:"approved" gorm:"default:false"`
	Origin       ShiftOrigin `json:"origin" gorm:"type:varchar(20);not null;default:'template'"`

	User       User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Role       Role        `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	CourseType *CourseType `json:"course_type,omitempty" gorm:"foreignKey:CourseTypeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// TotalHours returns the shift length in fractional hours.
func (s *Shift) TotalHours() float64 {
	return s.StartTime.HoursUntil(s.EndTime)
}

// CoversInterval reports whether the shift's interval fully contains [start, end).
func (s *Shift) CoversInterval(start, end TimeOfDay) bool {
	return Contains(s.StartTime, s.EndTime, start, end)
}

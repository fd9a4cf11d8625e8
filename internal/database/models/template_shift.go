package models

import "github.com/google/uuid"

// Weekday indexing follows the original schedule: 0=Monday .. 6=Sunday.

// TemplateShift is a recurring weekly pattern concrete shifts are generated
// from. UserID is nullable: an unassigned slot produces no shift on publish.
type TemplateShift struct {
	BaseModel
	RoleID       uuid.UUID  `json:"role_id" gorm:"type:uuid;not null;index" validate:"required"`
	Weekday      int        `json:"weekday" gorm:"not null" validate:"min=0,max=6"`
	StartTime    TimeOfDay  `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime      TimeOfDay  `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	UserID       *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	CourseTypeID *uuid.UUID `json:"course_type_id,omitempty" gorm:"type:uuid"`

	Role       Role        `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	CourseType *CourseType `json:"course_type,omitempty" gorm:"foreignKey:CourseTypeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for TemplateShift
func (TemplateShift) TableName() string {
	return "template_shifts"
}

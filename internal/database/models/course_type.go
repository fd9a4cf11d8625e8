package models

// CourseType is a catalog entry for lesson kinds a shift may be attached to
// (swim school, aqua fitness, ...).
type CourseType struct {
	BaseModel
	Name           string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	DefaultMinutes int    `json:"default_minutes" gorm:"default:60" validate:"min=0"`
}

// TableName returns the table name for CourseType
func (CourseType) TableName() string {
	return "course_types"
}

package models

// Role is a job category (lifeguard, instructor, front desk, cleaning).
// It is the single typed reference used by shifts, templates, published weeks
// and pay rates; role codes are never duplicated as free-text enums elsewhere.
type Role struct {
	BaseModel
	Code  string `json:"code" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
	Label string `json:"label" gorm:"not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// PublishedWeek marks that publish/diff processed a (role, week-start) pair.
// It is an idempotent audit marker, never read back to block re-publishing.
type PublishedWeek struct {
	BaseModel
	RoleID    uuid.UUID `json:"role_id" gorm:"type:uuid;not null;uniqueIndex:idx_published_weeks_role_start" validate:"required"`
	StartDate time.Time `json:"start_date" gorm:"type:date;not null;uniqueIndex:idx_published_weeks_role_start" validate:"required"`

	Role Role `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PublishedWeek
func (PublishedWeek) TableName() string {
	return "published_weeks"
}

package models

import "github.com/google/uuid"

// PayRate is the amount a user earns in a role, either per hour or flat per
// shift. Unique per (user, role).
type PayRate struct {
	BaseModel
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_pay_rates_user_role" validate:"required"`
	RoleID  uuid.UUID `json:"role_id" gorm:"type:uuid;not null;uniqueIndex:idx_pay_rates_user_role" validate:"required"`
	PayType PayType   `json:"pay_type" gorm:"type:varchar(10);not null;default:'hour'" validate:"required"`
	Amount  float64   `json:"amount" gorm:"type:decimal(8,2);not null" validate:"required,min=0"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Role Role `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PayRate
func (PayRate) TableName() string {
	return "pay_rates"
}

// PaymentFor returns the pay owed for one shift under this rate.
func (r *PayRate) PaymentFor(s *Shift) float64 {
	if r.PayType == PayTypePerShift {
		return r.Amount
	}
	return r.Amount * s.TotalHours()
}

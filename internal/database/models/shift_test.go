package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShiftTotalHours(t *testing.T) {
	s := &Shift{StartTime: "09:00", EndTime: "17:00"}
	assert.InDelta(t, 8.0, s.TotalHours(), 1e-9)

	s = &Shift{StartTime: "09:15", EndTime: "10:00"}
	assert.InDelta(t, 0.75, s.TotalHours(), 1e-9)
}

func TestShiftCoversInterval(t *testing.T) {
	s := &Shift{StartTime: "09:00", EndTime: "17:00"}
	assert.True(t, s.CoversInterval("09:00", "17:00"))
	assert.True(t, s.CoversInterval("11:00", "14:00"))
	assert.False(t, s.CoversInterval("08:00", "10:00"))
}

func TestPayRatePaymentFor(t *testing.T) {
	shift := &Shift{StartTime: "09:00", EndTime: "13:00"}

	hourly := &PayRate{PayType: PayTypeHourly, Amount: 12.5}
	assert.InDelta(t, 50.0, hourly.PaymentFor(shift), 1e-9)

	flat := &PayRate{PayType: PayTypePerShift, Amount: 80}
	assert.InDelta(t, 80.0, flat.PaymentFor(shift), 1e-9)
}

func TestReplacementRequestOverlapsInterval(t *testing.T) {
	start, end := TimeOfDay("10:00"), TimeOfDay("12:00")
	partial := &ReplacementRequest{Partial: true, PartialStart: &start, PartialEnd: &end}
	assert.True(t, partial.OverlapsInterval("11:00", "13:00"))
	assert.False(t, partial.OverlapsInterval("12:00", "13:00"))

	total := &ReplacementRequest{}
	assert.False(t, total.OverlapsInterval("00:00", "23:59"))
}

func TestRequestStatusLifecycle(t *testing.T) {
	assert.True(t, RequestStatusPending.IsValid())
	assert.False(t, RequestStatusPending.Terminal())
	assert.True(t, RequestStatusAccepted.Terminal())
	assert.True(t, RequestStatusCancelled.Terminal())
	assert.False(t, RequestStatus("done").IsValid())
}

func TestUserHelpers(t *testing.T) {
	role := Role{BaseModel: BaseModel{ID: uuid.New()}, Code: "trainer", Label: "Trainer"}
	u := &User{FirstName: "Ada", LastName: "Lovelace", Roles: []Role{role}}
	assert.Equal(t, "Ada Lovelace", u.FullName())
	assert.True(t, u.HasRole("trainer"))
	assert.False(t, u.HasRole("reception"))
}

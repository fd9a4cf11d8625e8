package testutils

import (
	"fmt"
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// All factory users share this hash so suites can log in as any of them.
var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// MustParseDate parses a YYYY-MM-DD date for test fixtures
func MustParseDate(value string) time.Time {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return date
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{ seq int }

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role with default values
func (f *RoleFactory) Create() *models.Role {
	f.seq++
	return &models.Role{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Code:      fmt.Sprintf("role-%d", f.seq),
		Label:     fmt.Sprintf("Role %d", f.seq),
	}
}

// WithCode sets a custom code for the role
func (f *RoleFactory) WithCode(code string) *models.Role {
	role := f.Create()
	role.Code = code
	role.Label = code
	return role
}

// UserFactory provides methods to create test User data
type UserFactory struct{ seq int }

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	f.seq++
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  fmt.Sprintf("user%d", f.seq),
		FirstName: fmt.Sprintf("First%d", f.seq),
		LastName:  fmt.Sprintf("Last%d", f.seq),
		PasswordHash: testPasswordHash,
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithRole attaches a role to the user
func (f *UserFactory) WithRole(role *models.Role) *models.User {
	user := f.Create()
	user.Roles = []models.Role{*role}
	return user
}

// CourseTypeFactory provides methods to create test CourseType data
type CourseTypeFactory struct{ seq int }

// NewCourseTypeFactory creates a new CourseTypeFactory
func NewCourseTypeFactory() *CourseTypeFactory {
	return &CourseTypeFactory{}
}

// Create creates a test CourseType with default values
func (f *CourseTypeFactory) Create() *models.CourseType {
	f.seq++
	return &models.CourseType{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Name:           fmt.Sprintf("Course %d", f.seq),
		DefaultMinutes: 60,
	}
}

// TemplateShiftFactory provides methods to create test TemplateShift data
type TemplateShiftFactory struct{}

// NewTemplateShiftFactory creates a new TemplateShiftFactory
func NewTemplateShiftFactory() *TemplateShiftFactory {
	return &TemplateShiftFactory{}
}

// Create creates a template slot for the given role, weekday and user
func (f *TemplateShiftFactory) Create(roleID uuid.UUID, weekday int, userID *uuid.UUID, start, end models.TimeOfDay) *models.TemplateShift {
	return &models.TemplateShift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		RoleID:    roleID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		UserID:    userID,
	}
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a template-origin shift with default times
func (f *ShiftFactory) Create(userID, roleID uuid.UUID, date time.Time) *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		RoleID:    roleID,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "17:00",
		Origin:    models.ShiftOriginTemplate,
	}
}

// WithTimes creates a shift with explicit clock bounds
func (f *ShiftFactory) WithTimes(userID, roleID uuid.UUID, date time.Time, start, end models.TimeOfDay) *models.Shift {
	shift := f.Create(userID, roleID, date)
	shift.StartTime = start
	shift.EndTime = end
	return shift
}

// ReplacementRequestFactory provides methods to create test request data
type ReplacementRequestFactory struct{}

// NewReplacementRequestFactory creates a new ReplacementRequestFactory
func NewReplacementRequestFactory() *ReplacementRequestFactory {
	return &ReplacementRequestFactory{}
}

// Total creates a pending total request for the shift with anchors stamped
func (f *ReplacementRequestFactory) Total(shift *models.Shift, requesterID, targetID uuid.UUID) *models.ReplacementRequest {
	start, end := shift.StartTime, shift.EndTime
	return &models.ReplacementRequest{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		ShiftID:           shift.ID,
		RequesterID:       requesterID,
		TargetUserID:      targetID,
		OriginalStartTime: &start,
		OriginalEndTime:   &end,
		Status:            models.RequestStatusPending,
	}
}

// Partial creates a pending partial request over [start, end)
func (f *ReplacementRequestFactory) Partial(shift *models.Shift, requesterID, targetID uuid.UUID, start, end models.TimeOfDay) *models.ReplacementRequest {
	req := f.Total(shift, requesterID, targetID)
	req.Partial = true
	req.PartialStart = &start
	req.PartialEnd = &end
	return req
}

// PayRateFactory provides methods to create test PayRate data
type PayRateFactory struct{}

// NewPayRateFactory creates a new PayRateFactory
func NewPayRateFactory() *PayRateFactory {
	return &PayRateFactory{}
}

// Hourly creates an hourly rate for the user and role
func (f *PayRateFactory) Hourly(userID, roleID uuid.UUID, amount float64) *models.PayRate {
	return &models.PayRate{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		RoleID:    roleID,
		PayType:   models.PayTypeHourly,
		Amount:    amount,
	}
}

// PerShift creates a flat per-shift rate for the user and role
func (f *PayRateFactory) PerShift(userID, roleID uuid.UUID, amount float64) *models.PayRate {
	return &models.PayRate{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		RoleID:    roleID,
		PayType:   models.PayTypePerShift,
		Amount:    amount,
	}
}

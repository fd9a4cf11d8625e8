package service_test

import (
	"testing"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/service"
	"shift-planner-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PublisherServiceTestSuite exercises the publish/diff engine on an in-memory
// database with real repositories.
type PublisherServiceTestSuite struct {
	suite.Suite
	db           *gorm.DB
	shiftRepo    *repository.ShiftRepository
	templateRepo *repository.TemplateShiftRepository
	weekRepo     *repository.PublishedWeekRepository
	svc          *service.PublisherService

	role       *models.Role
	alice, bob *models.User
}

func (s *PublisherServiceTestSuite) SetupTest() {
	s.db = testutils.OpenSQLite(s.T())
	roleRepo := repository.NewRoleRepository(s.db)
	s.templateRepo = repository.NewTemplateShiftRepository(s.db)
	s.shiftRepo = repository.NewShiftRepository(s.db)
	s.weekRepo = repository.NewPublishedWeekRepository(s.db)
	s.svc = service.NewPublisherService(s.db, roleRepo, s.templateRepo, s.shiftRepo, s.weekRepo,
		models.OverlapPolicyAllow, validator.New())

	s.role = testutils.NewRoleFactory().WithCode("trainer")
	s.Require().NoError(s.db.Create(s.role).Error)

	users := testutils.NewUserFactory()
	s.alice = users.WithUsername("alice")
	s.bob = users.WithUsername("bob")
	s.Require().NoError(s.db.Create(s.alice).Error)
	s.Require().NoError(s.db.Create(s.bob).Error)
}

func (s *PublisherServiceTestSuite) addTemplate(weekday int, userID *uuid.UUID, start, end models.TimeOfDay) *models.TemplateShift {
	tpl := testutils.NewTemplateShiftFactory().Create(s.role.ID, weekday, userID, start, end)
	s.Require().NoError(s.templateRepo.Create(tpl))
	return tpl
}

func (s *PublisherServiceTestSuite) publish(start string) *service.PublishResult {
	result, err := s.svc.PublishWeeks(&service.PublishWeeksRequest{
		RoleCode: "trainer",
		Weeks:    []service.WeekRange{{Start: start, End: start}},
	})
	s.Require().NoError(err)
	return result
}

func (s *PublisherServiceTestSuite) weekShifts() []models.Shift {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	shifts, err := s.shiftRepo.GetByDateRange(start, start.AddDate(0, 0, 6))
	s.Require().NoError(err)
	return shifts
}

func (s *PublisherServiceTestSuite) TestPublishCreatesFromTemplates() {
	s.addTemplate(0, &s.alice.ID, "09:00", "17:00")
	s.addTemplate(2, &s.bob.ID, "10:00", "14:00")
	s.addTemplate(4, nil, "08:00", "12:00") // unassigned, skipped

	result := s.publish("2025-06-02")
	s.Equal(2, result.Created)
	s.Equal(0, result.Updated)
	s.Equal(0, result.Deleted)
	s.Equal([]string{"2025-06-02 -> 2025-06-08"}, result.Weeks)

	shifts := s.weekShifts()
	s.Require().Len(shifts, 2)
	for _, sh := range shifts {
		s.False(sh.Approved)
		s.Equal(models.ShiftOriginTemplate, sh.Origin)
	}

	weeks, err := s.weekRepo.GetByRoleAndRange(s.role.ID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Len(weeks, 1)
}

func (s *PublisherServiceTestSuite) TestPublishIsIdempotent() {
	s.addTemplate(0, &s.alice.ID, "09:00", "17:00")

	s.publish("2025-06-02")
	result := s.publish("2025-06-02")

	s.Equal(0, result.Created)
	s.Equal(0, result.Updated)
	s.Equal(0, result.Deleted)
	s.Len(s.weekShifts(), 1)
}

func (s *PublisherServiceTestSuite) TestPublishUpdatesChangedSlot() {
	tpl := s.addTemplate(0, &s.alice.ID, "09:00", "17:00")
	s.publish("2025-06-02")

	tpl.StartTime = "10:00"
	s.Require().NoError(s.templateRepo.Update(tpl))

	result := s.publish("2025-06-02")
	s.Equal(0, result.Created)
	s.Equal(1, result.Updated)
	s.Equal(0, result.Deleted)

	shifts := s.weekShifts()
	s.Require().Len(shifts, 1)
	s.Equal(models.TimeOfDay("10:00"), shifts[0].StartTime)
}

func (s *PublisherServiceTestSuite) TestPublishDeletesRemovedSlot() {
	tpl := s.addTemplate(0, &s.alice.ID, "09:00", "17:00")
	s.addTemplate(1, &s.bob.ID, "09:00", "17:00")
	s.publish("2025-06-02")
	s.Len(s.weekShifts(), 2)

	s.Require().NoError(s.templateRepo.Delete(tpl.ID))

	result := s.publish("2025-06-02")
	s.Equal(1, result.Deleted)
	shifts := s.weekShifts()
	s.Require().Len(shifts, 1)
	s.Equal(s.bob.ID, shifts[0].UserID)
}

func (s *PublisherServiceTestSuite) TestSundayStartNormalizesToNextMonday() {
	s.addTemplate(0, &s.alice.ID, "09:00", "17:00")

	// 2025-06-01 is a Sunday; it belongs to the week starting 2025-06-02.
	result := s.publish("2025-06-01")
	s.Equal(1, result.Created)
	s.Equal([]string{"2025-06-02 -> 2025-06-08"}, result.Weeks)

	shifts := s.weekShifts()
	s.Require().Len(shifts, 1)
	s.Equal("2025-06-02", shifts[0].Date.Format("2006-01-02"))
}

func (s *PublisherServiceTestSuite) TestMidWeekStartRollsBackToMonday() {
	s.addTemplate(0, &s.alice.ID, "09:00", "17:00")

	result := s.publish("2025-06-05") // a Thursday
	s.Equal([]string{"2025-06-02 -> 2025-06-08"}, result.Weeks)
	s.Equal(1, result.Created)
}

func (s *PublisherServiceTestSuite) TestCoverageOriginRowsInvisibleToDiff() {
	s.addTemplate(0, &s.alice.ID, "09:00", "17:00")
	s.publish("2025-06-02")

	// Simulate the coverage engine resizing the row and creating a segment.
	shifts := s.weekShifts()
	s.Require().Len(shifts, 1)
	resized := shifts[0]
	resized.UserID = s.bob.ID
	resized.EndTime = "12:00"
	resized.Origin = models.ShiftOriginCoverage
	s.Require().NoError(s.shiftRepo.Update(&resized))

	segment := testutils.NewShiftFactory().WithTimes(s.alice.ID, s.role.ID,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), "12:00", "17:00")
	segment.Origin = models.ShiftOriginCoverage
	s.Require().NoError(s.shiftRepo.Create(segment))

	// Re-publish recreates the template row but never touches coverage rows.
	result := s.publish("2025-06-02")
	s.Equal(1, result.Created)
	s.Equal(0, result.Updated)
	s.Equal(0, result.Deleted)
	s.Len(s.weekShifts(), 3)
}

func (s *PublisherServiceTestSuite) TestPublishValidation() {
	_, err := s.svc.PublishWeeks(&service.PublishWeeksRequest{
		RoleCode: "unknown",
		Weeks:    []service.WeekRange{{Start: "2025-06-02", End: "2025-06-08"}},
	})
	s.ErrorIs(err, apperrors.ErrRoleNotFound)

	_, err = s.svc.PublishWeeks(&service.PublishWeeksRequest{
		RoleCode: "trainer",
		Weeks:    []service.WeekRange{{Start: "06/02/2025", End: "06/08/2025"}},
	})
	s.ErrorIs(err, apperrors.ErrInvalidDateFormat)
}

func (s *PublisherServiceTestSuite) TestOverlapPolicyReject() {
	rejecting := service.NewPublisherService(s.db,
		repository.NewRoleRepository(s.db), s.templateRepo, s.shiftRepo, s.weekRepo,
		models.OverlapPolicyReject, validator.New())

	s.addTemplate(0, &s.alice.ID, "09:00", "17:00")
	s.addTemplate(0, &s.alice.ID, "10:00", "12:00")

	_, err := rejecting.PublishWeeks(&service.PublishWeeksRequest{
		RoleCode: "trainer",
		Weeks:    []service.WeekRange{{Start: "2025-06-02", End: "2025-06-08"}},
	})
	s.ErrorIs(err, apperrors.ErrOverlapRejected)
	s.True(apperrors.IsConflict(err))
}

func (s *PublisherServiceTestSuite) TestGenerateMonth() {
	s.addTemplate(0, &s.alice.ID, "09:00", "17:00")
	s.addTemplate(3, &s.bob.ID, "10:00", "14:00")

	created, err := s.svc.GenerateMonth(&service.GenerateMonthRequest{Year: 2025, Month: 6})
	s.Require().NoError(err)
	// June 2025 has five Mondays and four Thursdays.
	s.Equal(9, created)

	// Second run creates nothing new.
	created, err = s.svc.GenerateMonth(&service.GenerateMonthRequest{Year: 2025, Month: 6})
	s.Require().NoError(err)
	s.Equal(0, created)
}

func TestPublisherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherServiceTestSuite))
}

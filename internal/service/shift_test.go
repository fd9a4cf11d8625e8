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

type ShiftServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	shiftRepo   *repository.ShiftRepository
	requestRepo *repository.ReplacementRequestRepository
	weekRepo    *repository.PublishedWeekRepository
	replSvc     *service.ReplacementService
	svc         *service.ShiftService

	role       *models.Role
	alice, bob *models.User
	course     *models.CourseType
}

func (s *ShiftServiceTestSuite) SetupTest() {
	s.db = testutils.OpenSQLite(s.T())
	roleRepo := repository.NewRoleRepository(s.db)
	userRepo := repository.NewUserRepository(s.db)
	courseRepo := repository.NewCourseTypeRepository(s.db)
	templateRepo := repository.NewTemplateShiftRepository(s.db)
	s.weekRepo = repository.NewPublishedWeekRepository(s.db)
	s.shiftRepo = repository.NewShiftRepository(s.db)
	s.requestRepo = repository.NewReplacementRequestRepository(s.db)

	v := validator.New()
	s.replSvc = service.NewReplacementService(s.db, s.shiftRepo, s.requestRepo, templateRepo, userRepo, v)
	s.svc = service.NewShiftService(s.shiftRepo, s.requestRepo, roleRepo, s.weekRepo, userRepo, courseRepo, v)

	s.role = testutils.NewRoleFactory().WithCode("trainer")
	s.Require().NoError(s.db.Create(s.role).Error)

	users := testutils.NewUserFactory()
	s.alice = users.WithUsername("alice")
	s.bob = users.WithUsername("bob")
	for _, u := range []*models.User{s.alice, s.bob} {
		u.Roles = []models.Role{*s.role}
		s.Require().NoError(s.db.Create(u).Error)
	}

	s.course = testutils.NewCourseTypeFactory().Create()
	s.Require().NoError(s.db.Create(s.course).Error)
}

func (s *ShiftServiceTestSuite) TestCreateShift() {
	shift, err := s.svc.CreateShift(&service.CreateShiftRequest{
		UserID:       s.alice.ID,
		RoleCode:     "trainer",
		Date:         "2025-06-02",
		StartTime:    "09:00",
		EndTime:      "17:00",
		CourseTypeID: &s.course.ID,
	})
	s.Require().NoError(err)
	s.Equal(models.ShiftOriginTemplate, shift.Origin)
	s.False(shift.Approved)

	_, err = s.svc.CreateShift(&service.CreateShiftRequest{
		UserID:    s.alice.ID,
		RoleCode:  "trainer",
		Date:      "2025-06-02",
		StartTime: "17:00",
		EndTime:   "09:00",
	})
	s.ErrorIs(err, apperrors.ErrInvalidTimeRange)

	_, err = s.svc.CreateShift(&service.CreateShiftRequest{
		UserID:    s.alice.ID,
		RoleCode:  "lifeguard",
		Date:      "2025-06-02",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	s.ErrorIs(err, apperrors.ErrRoleNotFound)

	_, err = s.svc.CreateShift(&service.CreateShiftRequest{
		UserID:    uuid.New(),
		RoleCode:  "trainer",
		Date:      "2025-06-02",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *ShiftServiceTestSuite) TestUpdateShiftPartialFields() {
	shift := testutils.NewShiftFactory().Create(s.alice.ID, s.role.ID, testDate)
	s.Require().NoError(s.shiftRepo.Create(shift))

	approved := true
	start := models.TimeOfDay("10:00")
	updated, err := s.svc.UpdateShift(shift.ID, &service.UpdateShiftRequest{
		StartTime: &start,
		Approved:  &approved,
	})
	s.Require().NoError(err)
	s.Equal(models.TimeOfDay("10:00"), updated.StartTime)
	s.Equal(models.TimeOfDay("17:00"), updated.EndTime, "untouched field keeps its value")
	s.True(updated.Approved)

	bad := models.TimeOfDay("18:00")
	_, err = s.svc.UpdateShift(shift.ID, &service.UpdateShiftRequest{StartTime: &bad})
	s.ErrorIs(err, apperrors.ErrInvalidTimeRange)

	_, err = s.svc.UpdateShift(uuid.New(), &service.UpdateShiftRequest{Approved: &approved})
	s.ErrorIs(err, apperrors.ErrShiftNotFound)
}

func (s *ShiftServiceTestSuite) TestDeleteShift() {
	shift := testutils.NewShiftFactory().Create(s.alice.ID, s.role.ID, testDate)
	s.Require().NoError(s.shiftRepo.Create(shift))

	s.Require().NoError(s.svc.DeleteShift(shift.ID))
	_, err := s.svc.GetShift(shift.ID)
	s.ErrorIs(err, apperrors.ErrShiftNotFound)

	s.ErrorIs(s.svc.DeleteShift(shift.ID), apperrors.ErrShiftNotFound)
}

func (s *ShiftServiceTestSuite) TestWeekViewAnnotatesLatestAcceptedRequest() {
	shift := testutils.NewShiftFactory().Create(s.alice.ID, s.role.ID, testDate)
	s.Require().NoError(s.shiftRepo.Create(shift))
	plain := testutils.NewShiftFactory().Create(s.bob.ID, s.role.ID, testDate.AddDate(0, 0, 2))
	s.Require().NoError(s.shiftRepo.Create(plain))

	ids, err := s.replSvc.CreateRequests(&service.CreateRequestsInput{
		ShiftID:       shift.ID,
		TargetUserIDs: []uuid.UUID{s.bob.ID},
	})
	s.Require().NoError(err)
	_, err = s.replSvc.Respond(ids[0], service.ActionAccept, s.bob.ID)
	s.Require().NoError(err)

	views, err := s.svc.GetWeekShifts("2025-06-02")
	s.Require().NoError(err)
	s.Require().Len(views, 2)

	byID := make(map[uuid.UUID]service.ShiftView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}
	annotated := byID[shift.ID]
	s.Require().NotNil(annotated.Replacement)
	s.Equal(s.alice.FullName(), annotated.Replacement.RequesterName)
	s.Equal(s.bob.FullName(), annotated.Replacement.TargetName)
	s.False(annotated.Replacement.Partial)
	s.Equal(s.bob.ID, annotated.UserID, "accepted total request transferred the shift")

	s.Nil(byID[plain.ID].Replacement)
}

func (s *ShiftServiceTestSuite) TestWeekViewSpansSevenDays() {
	inside := testutils.NewShiftFactory().Create(s.alice.ID, s.role.ID, testDate.AddDate(0, 0, 6))
	outside := testutils.NewShiftFactory().Create(s.alice.ID, s.role.ID, testDate.AddDate(0, 0, 7))
	s.Require().NoError(s.shiftRepo.Create(inside))
	s.Require().NoError(s.shiftRepo.Create(outside))

	views, err := s.svc.GetWeekShifts("2025-06-02")
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(inside.ID, views[0].ID)

	_, err = s.svc.GetWeekShifts("02/06/2025")
	s.ErrorIs(err, apperrors.ErrInvalidDateFormat)
}

func (s *ShiftServiceTestSuite) TestMonthView() {
	june := testutils.NewShiftFactory().Create(s.alice.ID, s.role.ID, testDate)
	july := testutils.NewShiftFactory().Create(s.alice.ID, s.role.ID, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(s.shiftRepo.Create(june))
	s.Require().NoError(s.shiftRepo.Create(july))

	views, err := s.svc.GetMonthShifts(2025, 6)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal("2025-06-02", views[0].Date)

	_, err = s.svc.GetMonthShifts(2025, 13)
	s.True(apperrors.IsValidation(err))
}

func (s *ShiftServiceTestSuite) TestAvailableCollaboratorsExcludesHolder() {
	shift := testutils.NewShiftFactory().Create(s.alice.ID, s.role.ID, testDate)
	s.Require().NoError(s.shiftRepo.Create(shift))

	other := testutils.NewRoleFactory().WithCode("lifeguard")
	s.Require().NoError(s.db.Create(other).Error)
	outsider := testutils.NewUserFactory().WithUsername("eve")
	outsider.Roles = []models.Role{*other}
	s.Require().NoError(s.db.Create(outsider).Error)

	candidates, err := s.svc.AvailableCollaborators(shift.ID)
	s.Require().NoError(err)
	s.Require().Len(candidates, 1)
	s.Equal(s.bob.ID, candidates[0].ID)
}

func (s *ShiftServiceTestSuite) TestGetPublishedWeeksPadsMonthEdges() {
	s.Require().NoError(s.weekRepo.Upsert(s.role.ID, time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(s.weekRepo.Upsert(s.role.ID, testDate))
	s.Require().NoError(s.weekRepo.Upsert(s.role.ID, time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)))

	weeks, err := s.svc.GetPublishedWeeks("trainer", 2025, 6)
	s.Require().NoError(err)
	s.Equal([]string{"2025-05-26", "2025-06-02"}, weeks, "week just before the month is included, far weeks are not")

	_, err = s.svc.GetPublishedWeeks("lifeguard", 2025, 6)
	s.ErrorIs(err, apperrors.ErrRoleNotFound)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}

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

type PayRateServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	rateRepo  *repository.PayRateRepository
	shiftRepo *repository.ShiftRepository
	svc       *service.PayRateService

	trainer   *models.Role
	lifeguard *models.Role
	alice     *models.User
}

func (s *PayRateServiceTestSuite) SetupTest() {
	s.db = testutils.OpenSQLite(s.T())
	s.rateRepo = repository.NewPayRateRepository(s.db)
	s.shiftRepo = repository.NewShiftRepository(s.db)
	roleRepo := repository.NewRoleRepository(s.db)
	userRepo := repository.NewUserRepository(s.db)
	s.svc = service.NewPayRateService(s.rateRepo, roleRepo, s.shiftRepo, userRepo, validator.New())

	roles := testutils.NewRoleFactory()
	s.trainer = roles.WithCode("trainer")
	s.lifeguard = roles.WithCode("lifeguard")
	s.Require().NoError(s.db.Create(s.trainer).Error)
	s.Require().NoError(s.db.Create(s.lifeguard).Error)

	s.alice = testutils.NewUserFactory().WithUsername("alice")
	s.alice.Roles = []models.Role{*s.trainer, *s.lifeguard}
	s.Require().NoError(s.db.Create(s.alice).Error)
}

func (s *PayRateServiceTestSuite) TestSetPayRateUpserts() {
	rate, err := s.svc.SetPayRate(&service.PayRateRequest{
		UserID:   s.alice.ID,
		RoleCode: "trainer",
		PayType:  models.PayTypeHourly,
		Amount:   50,
	})
	s.Require().NoError(err)
	s.Equal(models.PayTypeHourly, rate.PayType)

	updated, err := s.svc.SetPayRate(&service.PayRateRequest{
		UserID:   s.alice.ID,
		RoleCode: "trainer",
		PayType:  models.PayTypePerShift,
		Amount:   300,
	})
	s.Require().NoError(err)
	s.Equal(rate.ID, updated.ID, "same (user, role) pair updates in place")
	s.Equal(models.PayTypePerShift, updated.PayType)
	s.Equal(300.0, updated.Amount)

	all, err := s.svc.GetUserRates(s.alice.ID)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *PayRateServiceTestSuite) TestSetPayRateValidation() {
	_, err := s.svc.SetPayRate(&service.PayRateRequest{
		UserID:   s.alice.ID,
		RoleCode: "trainer",
		PayType:  "monthly",
		Amount:   50,
	})
	s.True(apperrors.IsValidation(err))

	_, err = s.svc.SetPayRate(&service.PayRateRequest{
		UserID:   uuid.New(),
		RoleCode: "trainer",
		PayType:  models.PayTypeHourly,
		Amount:   50,
	})
	s.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = s.svc.SetPayRate(&service.PayRateRequest{
		UserID:   s.alice.ID,
		RoleCode: "janitor",
		PayType:  models.PayTypeHourly,
		Amount:   50,
	})
	s.ErrorIs(err, apperrors.ErrRoleNotFound)
}

func (s *PayRateServiceTestSuite) TestDeletePayRate() {
	rate := testutils.NewPayRateFactory().Hourly(s.alice.ID, s.trainer.ID, 50)
	s.Require().NoError(s.rateRepo.Create(rate))

	s.Require().NoError(s.svc.DeletePayRate(rate.ID))
	s.ErrorIs(s.svc.DeletePayRate(rate.ID), apperrors.ErrPayRateNotFound)
}

func (s *PayRateServiceTestSuite) TestMonthlyAccountingMixesRateKinds() {
	shifts := testutils.NewShiftFactory()
	// 8h trainer shift at 50/h, 4h lifeguard shift at flat 120, and one
	// trainer shift in another month that must not count.
	s.Require().NoError(s.shiftRepo.Create(shifts.Create(s.alice.ID, s.trainer.ID, testDate)))
	s.Require().NoError(s.shiftRepo.Create(shifts.WithTimes(s.alice.ID, s.lifeguard.ID, testDate.AddDate(0, 0, 1), "08:00", "12:00")))
	s.Require().NoError(s.shiftRepo.Create(shifts.Create(s.alice.ID, s.trainer.ID, time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC))))

	rates := testutils.NewPayRateFactory()
	s.Require().NoError(s.rateRepo.Create(rates.Hourly(s.alice.ID, s.trainer.ID, 50)))
	s.Require().NoError(s.rateRepo.Create(rates.PerShift(s.alice.ID, s.lifeguard.ID, 120)))

	acc, err := s.svc.ComputeMonthlyAccounting(s.alice.ID, 2025, 6)
	s.Require().NoError(err)
	s.Len(acc.Lines, 2)
	s.Equal(12.0, acc.TotalHours)
	s.Equal(8*50.0+120.0, acc.Total)
}

func (s *PayRateServiceTestSuite) TestMonthlyAccountingFlagsUnpricedShifts() {
	s.Require().NoError(s.shiftRepo.Create(testutils.NewShiftFactory().Create(s.alice.ID, s.trainer.ID, testDate)))

	acc, err := s.svc.ComputeMonthlyAccounting(s.alice.ID, 2025, 6)
	s.Require().NoError(err)
	s.Require().Len(acc.Lines, 1)
	s.True(acc.Lines[0].Unpriced)
	s.Equal(0.0, acc.Total)
	s.Equal(8.0, acc.TotalHours)

	_, err = s.svc.ComputeMonthlyAccounting(s.alice.ID, 2025, 0)
	s.True(apperrors.IsValidation(err))
}

func TestPayRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayRateServiceTestSuite))
}

package service_test

import (
	"testing"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/mocks"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/service"
	"shift-planner-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TestCreateShiftCollaboratorLookups exercises the directory and catalog
// boundaries in isolation: the shift is persisted only when both lookups pass.
func TestCreateShiftCollaboratorLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := testutils.OpenSQLite(t)
	role := testutils.NewRoleFactory().WithCode("trainer")
	require.NoError(t, db.Create(role).Error)

	alice := testutils.NewUserFactory().WithUsername("alice")
	course := testutils.NewCourseTypeFactory().Create()

	mockUsers := mocks.NewMockUserDirectory(ctrl)
	mockCourses := mocks.NewMockCourseCatalog(ctrl)
	svc := service.NewShiftService(
		repository.NewShiftRepository(db),
		repository.NewReplacementRequestRepository(db),
		repository.NewRoleRepository(db),
		repository.NewPublishedWeekRepository(db),
		mockUsers, mockCourses, validator.New(),
	)

	req := &service.CreateShiftRequest{
		UserID:       alice.ID,
		RoleCode:     "trainer",
		Date:         "2025-06-02",
		StartTime:    "09:00",
		EndTime:      "17:00",
		CourseTypeID: &course.ID,
	}

	mockUsers.EXPECT().GetByID(alice.ID).Return(alice, nil)
	mockCourses.EXPECT().GetByID(course.ID).Return(nil, gorm.ErrRecordNotFound)
	_, err := svc.CreateShift(req)
	assert.ErrorIs(t, err, apperrors.ErrCourseTypeNotFound)

	mockUsers.EXPECT().GetByID(alice.ID).Return(alice, nil)
	mockCourses.EXPECT().GetByID(course.ID).Return(course, nil)
	shift, err := svc.CreateShift(req)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftOriginTemplate, shift.Origin)
}

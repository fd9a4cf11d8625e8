//go:build integration
// +build integration

package repository

import (
	"testing"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TemplateShiftRepositoryTestSuite tests the weekly template queries
type TemplateShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TemplateShiftRepository

	trainer   *models.Role
	lifeguard *models.Role
}

// SetupSuite runs before all tests in the suite
func (suite *TemplateShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTemplateShiftRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TemplateShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TemplateShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	roles := testutils.NewRoleFactory()
	suite.trainer = roles.WithCode("trainer")
	suite.lifeguard = roles.WithCode("lifeguard")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.trainer).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.lifeguard).Error)
}

// TearDownTest runs after each test
func (suite *TemplateShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByWeekdayAndRole tests the publish-day query
func (suite *TemplateShiftRepositoryTestSuite) TestGetByWeekdayAndRole() {
	factory := testutils.NewTemplateShiftFactory()
	monday := factory.Create(suite.trainer.ID, 0, nil, "09:00", "17:00")
	otherDay := factory.Create(suite.trainer.ID, 1, nil, "09:00", "17:00")
	otherRole := factory.Create(suite.lifeguard.ID, 0, nil, "08:00", "16:00")
	for _, tpl := range []*models.TemplateShift{monday, otherDay, otherRole} {
		suite.NoError(suite.repo.Create(tpl))
	}

	slots, err := suite.repo.GetByWeekdayAndRole(0, suite.trainer.ID)
	suite.NoError(err)
	suite.Len(slots, 1)
	suite.Equal(monday.ID, slots[0].ID)
}

// TestFindMatchingSlot tests the propagate-to-template lookup
func (suite *TemplateShiftRepositoryTestSuite) TestFindMatchingSlot() {
	tpl := testutils.NewTemplateShiftFactory().Create(suite.trainer.ID, 2, nil, "09:00", "17:00")
	suite.NoError(suite.repo.Create(tpl))

	found, err := suite.repo.FindMatchingSlot(suite.trainer.ID, 2, "09:00", "17:00")
	suite.NoError(err)
	suite.Equal(tpl.ID, found.ID)

	_, err = suite.repo.FindMatchingSlot(suite.trainer.ID, 2, "10:00", "17:00")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.FindMatchingSlot(suite.lifeguard.ID, 2, "09:00", "17:00")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTemplateShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateShiftRepositoryTestSuite))
}

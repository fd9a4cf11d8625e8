//go:build integration
// +build integration

package repository

import (
	"testing"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ShiftRepositoryTestSuite tests the shift queries backing the publish diff
// and the calendar views
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository

	role  *models.Role
	alice *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.role = testutils.NewRoleFactory().WithCode("trainer")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.role).Error)
	suite.alice = testutils.NewUserFactory().WithUsername("alice")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.alice).Error)
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetTemplateOriginByWeek tests that coverage rows are invisible to the diff
func (suite *ShiftRepositoryTestSuite) TestGetTemplateOriginByWeek() {
	monday := testutils.MustParseDate("2025-06-02")
	factory := testutils.NewShiftFactory()

	published := factory.Create(suite.alice.ID, suite.role.ID, monday)
	suite.NoError(suite.repo.Create(published))

	split := factory.WithTimes(suite.alice.ID, suite.role.ID, monday.AddDate(0, 0, 1), "12:00", "17:00")
	split.Origin = models.ShiftOriginCoverage
	suite.NoError(suite.repo.Create(split))

	nextWeek := factory.Create(suite.alice.ID, suite.role.ID, monday.AddDate(0, 0, 7))
	suite.NoError(suite.repo.Create(nextWeek))

	shifts, err := suite.repo.GetTemplateOriginByWeek(suite.role.ID, monday, monday.AddDate(0, 0, 6))
	suite.NoError(err)
	suite.Len(shifts, 1)
	suite.Equal(published.ID, shifts[0].ID)
}

// TestFindOverlapping tests the half-open interval query
func (suite *ShiftRepositoryTestSuite) TestFindOverlapping() {
	monday := testutils.MustParseDate("2025-06-02")
	existing := testutils.NewShiftFactory().WithTimes(suite.alice.ID, suite.role.ID, monday, "09:00", "13:00")
	suite.NoError(suite.repo.Create(existing))

	hits, err := suite.repo.FindOverlapping(suite.alice.ID, monday, "12:00", "16:00", nil)
	suite.NoError(err)
	suite.Len(hits, 1)

	// Back-to-back intervals do not overlap.
	hits, err = suite.repo.FindOverlapping(suite.alice.ID, monday, "13:00", "17:00", nil)
	suite.NoError(err)
	suite.Empty(hits)

	hits, err = suite.repo.FindOverlapping(suite.alice.ID, monday, "12:00", "16:00", &existing.ID)
	suite.NoError(err)
	suite.Empty(hits)
}

// TestGetByDateRangeOrdering tests calendar ordering and preloads
func (suite *ShiftRepositoryTestSuite) TestGetByDateRangeOrdering() {
	monday := testutils.MustParseDate("2025-06-02")
	factory := testutils.NewShiftFactory()

	late := factory.WithTimes(suite.alice.ID, suite.role.ID, monday, "14:00", "18:00")
	early := factory.WithTimes(suite.alice.ID, suite.role.ID, monday, "08:00", "12:00")
	tuesday := factory.Create(suite.alice.ID, suite.role.ID, monday.AddDate(0, 0, 1))
	for _, sh := range []*models.Shift{late, early, tuesday} {
		suite.NoError(suite.repo.Create(sh))
	}

	shifts, err := suite.repo.GetByDateRange(monday, monday.AddDate(0, 0, 6))
	suite.NoError(err)
	suite.Len(shifts, 3)
	suite.Equal(early.ID, shifts[0].ID)
	suite.Equal(late.ID, shifts[1].ID)
	suite.Equal(tuesday.ID, shifts[2].ID)
	suite.Equal("alice", shifts[0].User.Username)
	suite.Equal("trainer", shifts[0].Role.Code)
}

func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}

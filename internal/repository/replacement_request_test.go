//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReplacementRequestRepositoryTestSuite tests the request ledger
type ReplacementRequestRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ReplacementRequestRepository

	role       *models.Role
	alice, bob *models.User
	carol      *models.User
	shift      *models.Shift
}

// SetupSuite runs before all tests in the suite
func (suite *ReplacementRequestRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewReplacementRequestRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ReplacementRequestRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ReplacementRequestRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.role = testutils.NewRoleFactory().WithCode("trainer")
	suite.NoError(suite.baseTestSuite.DB.Create(suite.role).Error)

	users := testutils.NewUserFactory()
	suite.alice = users.WithUsername("alice")
	suite.bob = users.WithUsername("bob")
	suite.carol = users.WithUsername("carol")
	for _, u := range []*models.User{suite.alice, suite.bob, suite.carol} {
		suite.NoError(suite.baseTestSuite.DB.Create(u).Error)
	}

	suite.shift = testutils.NewShiftFactory().Create(suite.alice.ID, suite.role.ID,
		testutils.MustParseDate("2025-06-02"))
	suite.NoError(suite.baseTestSuite.DB.Create(suite.shift).Error)
}

// TearDownTest runs after each test
func (suite *ReplacementRequestRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ReplacementRequestRepositoryTestSuite) createTotal(targetID uuid.UUID) *models.ReplacementRequest {
	req := testutils.NewReplacementRequestFactory().Total(suite.shift, suite.alice.ID, targetID)
	suite.NoError(suite.repo.Create(req))
	return req
}

func (suite *ReplacementRequestRepositoryTestSuite) createPartial(targetID uuid.UUID, start, end models.TimeOfDay) *models.ReplacementRequest {
	req := testutils.NewReplacementRequestFactory().Partial(suite.shift, suite.alice.ID, targetID, start, end)
	suite.NoError(suite.repo.Create(req))
	return req
}

// TestCloseCompetingTotalsOnly tests that the totals predicate spares partials
func (suite *ReplacementRequestRepositoryTestSuite) TestCloseCompetingTotalsOnly() {
	winner := suite.createTotal(suite.bob.ID)
	loserTotal := suite.createTotal(suite.carol.ID)
	partial := suite.createPartial(suite.carol.ID, "10:00", "12:00")

	n, err := suite.repo.CloseCompeting(suite.shift.ID, winner.ID, suite.bob.ID, CompetingTotals())
	suite.NoError(err)
	suite.Equal(int64(1), n)

	reloaded, err := suite.repo.GetByID(loserTotal.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusCancelled, reloaded.Status)
	suite.NotNil(reloaded.ClosedByID)
	suite.Equal(suite.bob.ID, *reloaded.ClosedByID)

	untouched, err := suite.repo.GetByID(partial.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusPending, untouched.Status)
}

// TestCloseCompetingOverlappingPartials tests half-open window intersection
func (suite *ReplacementRequestRepositoryTestSuite) TestCloseCompetingOverlappingPartials() {
	winner := suite.createPartial(suite.bob.ID, "10:00", "12:00")
	overlapping := suite.createPartial(suite.carol.ID, "11:00", "13:00")
	touching := suite.createPartial(suite.carol.ID, "12:00", "14:00")

	n, err := suite.repo.CloseCompeting(suite.shift.ID, winner.ID, suite.bob.ID,
		CompetingOverlappingPartials("10:00", "12:00"))
	suite.NoError(err)
	suite.Equal(int64(1), n)

	cancelled, err := suite.repo.GetByID(overlapping.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusCancelled, cancelled.Status)

	// A window that only touches at the boundary does not overlap.
	kept, err := suite.repo.GetByID(touching.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusPending, kept.Status)
}

// TestCloseCompetingAll tests that predicates are OR-ed and terminal rows stay
func (suite *ReplacementRequestRepositoryTestSuite) TestCloseCompetingAll() {
	winner := suite.createTotal(suite.bob.ID)
	pending := suite.createTotal(suite.carol.ID)
	rejected := suite.createPartial(suite.carol.ID, "10:00", "12:00")
	rejected.Status = models.RequestStatusRejected
	suite.NoError(suite.repo.Update(rejected))

	n, err := suite.repo.CloseCompeting(suite.shift.ID, winner.ID, suite.bob.ID, CompetingAll())
	suite.NoError(err)
	suite.Equal(int64(1), n)

	stillRejected, err := suite.repo.GetByID(rejected.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusRejected, stillRejected.Status)

	cancelled, err := suite.repo.GetByID(pending.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusCancelled, cancelled.Status)
}

// TestFindPriorAccepted tests lineage lookup by recorded original bounds
func (suite *ReplacementRequestRepositoryTestSuite) TestFindPriorAccepted() {
	prior := suite.createTotal(suite.bob.ID)
	prior.Status = models.RequestStatusAccepted
	suite.NoError(suite.repo.Update(prior))

	current := suite.createPartial(suite.carol.ID, "10:00", "12:00")

	found, err := suite.repo.FindPriorAccepted(suite.shift.ID, current.ID, "09:00", "17:00")
	suite.NoError(err)
	suite.Equal(prior.ID, found.ID)

	_, err = suite.repo.FindPriorAccepted(suite.shift.ID, current.ID, "08:00", "17:00")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// A pending row never counts as lineage.
	_, err = suite.repo.FindPriorAccepted(suite.shift.ID, prior.ID, "09:00", "17:00")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByShiftIDExcludes tests the exclusion filter
func (suite *ReplacementRequestRepositoryTestSuite) TestGetByShiftIDExcludes() {
	first := suite.createTotal(suite.bob.ID)
	second := suite.createTotal(suite.carol.ID)

	all, err := suite.repo.GetByShiftID(suite.shift.ID, nil)
	suite.NoError(err)
	suite.Len(all, 2)

	rest, err := suite.repo.GetByShiftID(suite.shift.ID, &first.ID)
	suite.NoError(err)
	suite.Len(rest, 1)
	suite.Equal(second.ID, rest[0].ID)
}

// TestGetAcceptedByShiftIDsNewestFirst tests calendar annotation ordering
func (suite *ReplacementRequestRepositoryTestSuite) TestGetAcceptedByShiftIDsNewestFirst() {
	older := suite.createTotal(suite.bob.ID)
	older.Status = models.RequestStatusAccepted
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Update(older))

	newer := suite.createTotal(suite.carol.ID)
	newer.Status = models.RequestStatusAccepted
	suite.NoError(suite.repo.Update(newer))

	rows, err := suite.repo.GetAcceptedByShiftIDs([]uuid.UUID{suite.shift.ID})
	suite.NoError(err)
	suite.Len(rows, 2)
	suite.Equal(newer.ID, rows[0].ID)

	empty, err := suite.repo.GetAcceptedByShiftIDs(nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestListSentAndReceivedFilters tests the mailbox queries
func (suite *ReplacementRequestRepositoryTestSuite) TestListSentAndReceivedFilters() {
	suite.createTotal(suite.bob.ID)
	done := suite.createTotal(suite.carol.ID)
	done.Status = models.RequestStatusAccepted
	suite.NoError(suite.repo.Update(done))

	julyShift := testutils.NewShiftFactory().Create(suite.alice.ID, suite.role.ID,
		testutils.MustParseDate("2025-07-07"))
	suite.NoError(suite.baseTestSuite.DB.Create(julyShift).Error)
	julyReq := testutils.NewReplacementRequestFactory().Total(julyShift, suite.alice.ID, suite.bob.ID)
	suite.NoError(suite.repo.Create(julyReq))

	sent, err := suite.repo.ListSent(suite.alice.ID, false, 0, 0)
	suite.NoError(err)
	suite.Len(sent, 3)
	suite.Equal(julyReq.ID, sent[0].ID, "newest shift date first")

	pendingOnly, err := suite.repo.ListSent(suite.alice.ID, true, 0, 0)
	suite.NoError(err)
	suite.Len(pendingOnly, 2)

	june, err := suite.repo.ListSent(suite.alice.ID, false, 2025, 6)
	suite.NoError(err)
	suite.Len(june, 2)

	received, err := suite.repo.ListReceived(suite.bob.ID, false, 0, 0)
	suite.NoError(err)
	suite.Len(received, 2)
	for _, r := range received {
		suite.Equal(suite.bob.ID, r.TargetUserID)
	}
}

func TestReplacementRequestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReplacementRequestRepositoryTestSuite))
}

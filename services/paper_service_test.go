package services

import (
	"fmt"
	"testing"

	"confhub-api/models"

	"github.com/stretchr/testify/suite"
)

// firstNPicker selects the first count reviewers from the pool, giving tests
// full control over the assignment.
func firstNPicker(pool []models.User, count int) []models.User {
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

type PaperServiceTestSuite struct {
	suite.Suite
	store   *fakeStore
	service PaperService

	author     *models.User
	reviewer1  *models.User
	reviewer2  *models.User
	reviewer3  *models.User
	conference *models.Conference
}

func (suite *PaperServiceTestSuite) SetupTest() {
	suite.store = newFakeStore()

	suite.author = suite.store.addUser("author", models.RoleAuthor)
	suite.reviewer1 = suite.store.addUser("reviewer1", models.RoleReviewer)
	suite.reviewer2 = suite.store.addUser("reviewer2", models.RoleReviewer)
	suite.reviewer3 = suite.store.addUser("reviewer3", models.RoleReviewer)
	suite.conference = suite.store.addConference(0, suite.reviewer1, suite.reviewer2, suite.reviewer3)

	suite.service = NewPaperService(
		&fakePaperRepo{store: suite.store},
		&fakeReviewRepo{store: suite.store},
		&fakeConferenceRepo{store: suite.store},
		firstNPicker,
	)
}

func (suite *PaperServiceTestSuite) submit() *models.Paper {
	paper, err := suite.service.SubmitPaper(models.SubmitPaperRequest{
		Title:        "Test Paper",
		Abstract:     "An abstract",
		VersionLink:  "paper_v1.pdf",
		ConferenceID: suite.conference.ID,
	}, suite.author.ID)
	suite.Require().NoError(err)
	return paper
}

func (suite *PaperServiceTestSuite) TestSubmitPaperAssignsTwoReviewers() {
	paper := suite.submit()

	suite.Equal(models.StatusInReview, paper.Status)
	suite.Equal("paper_v1.pdf", paper.CurrentVersionLink)
	suite.Equal(suite.author.ID, paper.AuthorID)

	suite.Require().Len(paper.VersionHistory, 1)
	suite.Equal(1, paper.VersionHistory[0].Version)
	suite.Equal("paper_v1.pdf", paper.VersionHistory[0].Link)

	suite.Require().Len(paper.Reviews, 2)
	assigned := map[uint]bool{}
	for _, review := range paper.Reviews {
		assigned[review.ReviewerID] = true
		suite.Equal(models.VerdictApproved, review.Verdict)
		suite.Equal("Pending review", review.Comments)
	}
	// Deterministic picker: first two reviewers from the pool.
	suite.True(assigned[suite.reviewer1.ID])
	suite.True(assigned[suite.reviewer2.ID])
}

func (suite *PaperServiceTestSuite) TestSubmitPaperConferenceNotFound() {
	_, err := suite.service.SubmitPaper(models.SubmitPaperRequest{
		Title:        "Test Paper",
		VersionLink:  "paper_v1.pdf",
		ConferenceID: 9999,
	}, suite.author.ID)

	suite.ErrorIs(err, models.ErrNotFound)
}

func (suite *PaperServiceTestSuite) TestSubmitPaperRequiresTwoReviewers() {
	small := suite.store.addConference(0, suite.reviewer1)

	_, err := suite.service.SubmitPaper(models.SubmitPaperRequest{
		Title:        "Test Paper",
		VersionLink:  "paper_v1.pdf",
		ConferenceID: small.ID,
	}, suite.author.ID)

	suite.ErrorIs(err, models.ErrInsufficientReviewers)
	// The failure must not leave a partially created paper behind.
	suite.Empty(suite.store.papers)
	suite.Empty(suite.store.reviews)
}

func (suite *PaperServiceTestSuite) TestUploadNewVersionAppendsAndResets() {
	paper := suite.submit()

	for n := 2; n <= 4; n++ {
		link := fmt.Sprintf("paper_v%d.pdf", n)
		updated, err := suite.service.UploadNewVersion(paper.ID, link)
		suite.Require().NoError(err)

		suite.Equal(models.StatusInReview, updated.Status)
		suite.Equal(link, updated.CurrentVersionLink)
		suite.Require().Len(updated.VersionHistory, n)
		for i, version := range updated.VersionHistory {
			suite.Equal(i+1, version.Version)
		}
	}
}

func (suite *PaperServiceTestSuite) TestUploadNewVersionResetsFinalStatuses() {
	paper := suite.submit()

	// Reject the paper, then upload: it goes back to review.
	_, err := suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer1.ID, models.VerdictRejected, "no")
	suite.Require().NoError(err)

	updated, err := suite.service.UploadNewVersion(paper.ID, "paper_v2.pdf")
	suite.Require().NoError(err)
	suite.Equal(models.StatusInReview, updated.Status)
}

func (suite *PaperServiceTestSuite) TestUploadNewVersionNotFound() {
	_, err := suite.service.UploadNewVersion(9999, "paper_v2.pdf")
	suite.ErrorIs(err, models.ErrNotFound)
}

func (suite *PaperServiceTestSuite) TestRejectionDominates() {
	paper := suite.submit()

	_, err := suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer1.ID, models.VerdictRejected, "no")
	suite.Require().NoError(err)
	_, err = suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer2.ID, models.VerdictApproved, "ok")
	suite.Require().NoError(err)

	reloaded, err := suite.service.GetPaper(paper.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusRejected, reloaded.Status)
}

func (suite *PaperServiceTestSuite) TestChangesRequestedNeedsRevisions() {
	paper := suite.submit()

	_, err := suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer1.ID, models.VerdictChangesRequested, "fix X")
	suite.Require().NoError(err)

	reloaded, err := suite.service.GetPaper(paper.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusNeedsRevisions, reloaded.Status)
}

func (suite *PaperServiceTestSuite) TestUnanimousApprovalAccepts() {
	paper := suite.submit()

	_, err := suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer1.ID, models.VerdictApproved, "ok")
	suite.Require().NoError(err)
	_, err = suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer2.ID, models.VerdictApproved, "good")
	suite.Require().NoError(err)

	reloaded, err := suite.service.GetPaper(paper.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusAccepted, reloaded.Status)
}

// A seeded placeholder review carries verdict "approved", so one genuine
// approval plus one untouched placeholder already satisfies unanimity. This
// mirrors the original system's behavior.
func (suite *PaperServiceTestSuite) TestPlaceholderVerdictCountsTowardAcceptance() {
	paper := suite.submit()
	suite.Equal(models.StatusInReview, paper.Status)

	_, err := suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer1.ID, models.VerdictApproved, "ok")
	suite.Require().NoError(err)

	reloaded, err := suite.service.GetPaper(paper.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusAccepted, reloaded.Status)
}

func (suite *PaperServiceTestSuite) TestReviewUpsertOverwrites() {
	paper := suite.submit()

	first, err := suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer1.ID, models.VerdictChangesRequested, "fix")
	suite.Require().NoError(err)

	second, err := suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer1.ID, models.VerdictApproved, "fixed now")
	suite.Require().NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.Equal(models.VerdictApproved, second.Verdict)
	suite.Equal("fixed now", second.Comments)

	// Still exactly one review per (paper, reviewer) pair.
	count := 0
	for _, review := range suite.store.reviews {
		if review.PaperID == paper.ID && review.ReviewerID == suite.reviewer1.ID {
			count++
		}
	}
	suite.Equal(1, count)
}

// An extra reviewer beyond the two assigned joins the unanimity requirement.
func (suite *PaperServiceTestSuite) TestLateReviewerJoinsUnanimity() {
	paper := suite.submit()

	_, err := suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer1.ID, models.VerdictApproved, "ok")
	suite.Require().NoError(err)
	_, err = suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer2.ID, models.VerdictApproved, "ok")
	suite.Require().NoError(err)

	// A third reviewer requests changes: acceptance is withdrawn.
	_, err = suite.service.SubmitOrUpdateReview(paper.ID, suite.reviewer3.ID, models.VerdictChangesRequested, "section 3 unclear")
	suite.Require().NoError(err)

	reloaded, err := suite.service.GetPaper(paper.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusNeedsRevisions, reloaded.Status)
}

func (suite *PaperServiceTestSuite) TestSubmitReviewPaperNotFound() {
	_, err := suite.service.SubmitOrUpdateReview(9999, suite.reviewer1.ID, models.VerdictApproved, "ok")
	suite.ErrorIs(err, models.ErrNotFound)
}

func TestPaperServiceSuite(t *testing.T) {
	suite.Run(t, new(PaperServiceTestSuite))
}

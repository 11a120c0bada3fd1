package services

import "confhub-api/models"

// deriveStatus recomputes a paper's status from its full review set. The
// rules are evaluated in order and the first match wins: a single rejection
// dominates everything else; acceptance requires every review to be approved
// and at least two reviews to exist; changes_requested applies otherwise.
// The returned bool is false when no rule matched, in which case the caller
// keeps the paper's current status.
//
// Re-running this on the same review set always yields the same result.
func deriveStatus(reviews []models.Review) (models.PaperStatus, bool) {
	if len(reviews) == 0 {
		return "", false
	}

	var approved, rejected, changes int
	for _, review := range reviews {
		switch review.Verdict {
		case models.VerdictApproved:
			approved++
		case models.VerdictRejected:
			rejected++
		case models.VerdictChangesRequested:
			changes++
		}
	}

	switch {
	case rejected > 0:
		return models.StatusRejected, true
	case approved == len(reviews) && len(reviews) >= minReviewsForAcceptance:
		return models.StatusAccepted, true
	case changes > 0:
		return models.StatusNeedsRevisions, true
	}

	return "", false
}

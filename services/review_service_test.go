package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edsonffff/catering-new/repository"
)

func newReviewService(t *testing.T) *ReviewService {
	return NewReviewService(repository.NewReviewRepository(newTestDB(t)))
}

func TestSubmitRatingBounds(t *testing.T) {
	svc := newReviewService(t)

	_, err := svc.Submit("Carol", 0, "", "wedding")
	assert.ErrorIs(t, err, ErrRatingRange)

	_, err = svc.Submit("Carol", 6, "", "wedding")
	assert.ErrorIs(t, err, ErrRatingRange)

	_, err = svc.Submit("  ", 4, "", "wedding")
	assert.ErrorIs(t, err, ErrNameRequired)

	review, err := svc.Submit("Carol", 5, "Wonderful food", "wedding")
	require.NoError(t, err)
	assert.False(t, review.IsApproved)
}

func TestApprovedListingExcludesPending(t *testing.T) {
	svc := newReviewService(t)

	approved, err := svc.Submit("Carol", 5, "Great", "wedding")
	require.NoError(t, err)
	_, err = svc.Submit("Dan", 3, "Fine", "corporate")
	require.NoError(t, err)

	require.NoError(t, svc.SetApproved(approved.ID, true))

	visible, err := svc.ListApproved()
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Carol", visible[0].CustomerName)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Approval can be retracted again.
	require.NoError(t, svc.SetApproved(approved.ID, false))
	visible, err = svc.ListApproved()
	require.NoError(t, err)
	assert.Empty(t, visible)
}

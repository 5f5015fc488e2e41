package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{ApplicationStatusSubmitted, ApplicationStatusUnderReview, true},
		{ApplicationStatusSubmitted, ApplicationStatusApproved, true},
		{ApplicationStatusSubmitted, ApplicationStatusRejected, true},
		{ApplicationStatusSubmitted, ApplicationStatusWithdrawn, true},
		{ApplicationStatusUnderReview, ApplicationStatusApproved, true},
		{ApplicationStatusUnderReview, ApplicationStatusRejected, true},
		{ApplicationStatusUnderReview, ApplicationStatusWithdrawn, true},
		{ApplicationStatusDraft, ApplicationStatusSubmitted, true},

		{ApplicationStatusApproved, ApplicationStatusWithdrawn, false},
		{ApplicationStatusApproved, ApplicationStatusSubmitted, false},
		{ApplicationStatusRejected, ApplicationStatusUnderReview, false},
		{ApplicationStatusWithdrawn, ApplicationStatusSubmitted, false},
		{ApplicationStatusUnderReview, ApplicationStatusSubmitted, false},
		{ApplicationStatusSubmitted, ApplicationStatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusReviewable(t *testing.T) {
	assert.True(t, ApplicationStatusSubmitted.Reviewable())
	assert.True(t, ApplicationStatusUnderReview.Reviewable())
	assert.False(t, ApplicationStatusApproved.Reviewable())
	assert.False(t, ApplicationStatusRejected.Reviewable())
	assert.False(t, ApplicationStatusWithdrawn.Reviewable())
	assert.False(t, ApplicationStatusDraft.Reviewable())
}

func TestKnownInclusion(t *testing.T) {
	for _, name := range InclusionNames {
		assert.True(t, KnownInclusion(name))
	}
	assert.False(t, KnownInclusion("jacuzzi"))
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mealmate/internal/domain/entity"
)

func TestSummarizeRatings(t *testing.T) {
	summary := summarizeRatings([]ratingGroup{{TotalRating: 14, TotalCount: 4}})

	assert.Equal(t, &entity.RatingSummary{
		TotalRating:   14,
		TotalCount:    4,
		AverageRating: 3.5,
	}, summary)
}

func TestSummarizeRatingsNoReviews(t *testing.T) {
	// No group emitted by the aggregation means zero reviews; the contract is
	// a zero summary, not a missing body or NaN.
	assert.Equal(t, &entity.RatingSummary{}, summarizeRatings(nil))
	assert.Equal(t, &entity.RatingSummary{}, summarizeRatings([]ratingGroup{}))
}

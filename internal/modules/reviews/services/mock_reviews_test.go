package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
)

func TestGenerateMockReviews(t *testing.T) {
	businessID := uuid.New()
	reviews := GenerateMockReviews(businessID, 200)
	require.Len(t, reviews, 200)

	now := time.Now()
	var positive int
	for i, r := range reviews {
		assert.Equal(t, businessID, r.BusinessID)
		assert.NotEmpty(t, r.ReviewerName)
		assert.NotEmpty(t, r.Content)
		assert.GreaterOrEqual(t, r.StarRating, 1)
		assert.LessOrEqual(t, r.StarRating, 5)
		assert.True(t, r.PostedAt.Before(now.Add(time.Minute)))
		assert.GreaterOrEqual(t, len(r.Topics), 1)
		assert.LessOrEqual(t, len(r.Topics), 3)

		// Sentiment must agree with the star rating band.
		switch r.Sentiment {
		case models.SentimentPositive:
			assert.GreaterOrEqual(t, r.StarRating, 4)
			positive++
		case models.SentimentNeutral:
			assert.Equal(t, 3, r.StarRating)
		case models.SentimentNegative:
			assert.LessOrEqual(t, r.StarRating, 2)
		default:
			t.Fatalf("unexpected sentiment %q", r.Sentiment)
		}

		if i > 0 {
			assert.False(t, r.PostedAt.After(reviews[i-1].PostedAt), "reviews must be sorted newest first")
		}
	}

	// 65% positive weighting; allow generous slack for randomness.
	assert.Greater(t, positive, 80)
}

func TestGenerateMockReviewsTopicsUniqueSorted(t *testing.T) {
	reviews := GenerateMockReviews(uuid.New(), 50)
	for _, r := range reviews {
		seen := map[string]bool{}
		for i, topic := range r.Topics {
			assert.False(t, seen[topic], "topics must be unique")
			seen[topic] = true
			if i > 0 {
				assert.Less(t, r.Topics[i-1], topic)
			}
		}
	}
}

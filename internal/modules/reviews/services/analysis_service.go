package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/reviewpilot/review-pilot-be/internal/core/analysis"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
)

// enrichBatchSize caps one enrichment pass to keep token spend bounded.
const enrichBatchSize = 10

// AnalysisService enriches stored reviews with sentiment, topics and
// entities from the analyzer.
type AnalysisService struct {
	reviewRepo repositories.ReviewRepo
	analyzer   *analysis.Analyzer
}

func NewAnalysisService(reviewRepo repositories.ReviewRepo, analyzer *analysis.Analyzer) *AnalysisService {
	return &AnalysisService{
		reviewRepo: reviewRepo,
		analyzer:   analyzer,
	}
}

// EnrichReviews analyzes the newest unanalyzed reviews for a business, at
// most enrichBatchSize per call. Analysis itself never fails; only storage
// errors are logged and skipped. Returns the number of reviews enriched.
func (s *AnalysisService) EnrichReviews(ctx context.Context, businessID uuid.UUID) (int, error) {
	reviews, err := s.reviewRepo.ListUnanalyzed(businessID, enrichBatchSize)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}

	var enriched int
	for _, review := range reviews {
		result := s.analyzer.Analyze(ctx, review.Content, review.StarRating)
		if err := s.reviewRepo.UpdateAnalysis(review.ID, models.Sentiment(result.Sentiment), result.Topics, result.Entities); err != nil {
			log.Error().
				Err(err).
				Str("review_id", review.ID.String()).
				Msg("failed to save review analysis")
			continue
		}
		enriched++
	}

	log.Info().
		Str("business_id", businessID.String()).
		Int("enriched", enriched).
		Msg("review enrichment finished")

	return enriched, nil
}

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
)

// AutoReplyService drafts and publishes replies for pending reviews at or
// above the business auto-reply threshold. It runs on a cron schedule.
type AutoReplyService struct {
	reviewRepo    repositories.ReviewRepo
	businessRepo  repositories.BusinessRepo
	reviewService *ReviewService
}

func NewAutoReplyService(reviewRepo repositories.ReviewRepo, businessRepo repositories.BusinessRepo, reviewService *ReviewService) *AutoReplyService {
	return &AutoReplyService{
		reviewRepo:    reviewRepo,
		businessRepo:  businessRepo,
		reviewService: reviewService,
	}
}

// Run processes one auto-reply sweep for the default business. Failures on
// individual reviews are logged and skipped so one bad review cannot stall
// the rest of the batch.
func (s *AutoReplyService) Run(ctx context.Context) {
	started := time.Now()

	business, err := s.businessRepo.GetDefault()
	if err != nil {
		log.Error().Err(err).Msg("auto-reply sweep skipped, no business")
		return
	}

	pending, err := s.reviewRepo.ListPendingAboveRating(business.ID, business.AutoReplyThreshold)
	if err != nil {
		log.Error().Err(err).Msg("auto-reply sweep failed to list pending reviews")
		return
	}
	if len(pending) == 0 {
		return
	}

	log.Info().
		Int("pending", len(pending)).
		Int("threshold", business.AutoReplyThreshold).
		Msg("🤖 auto-reply sweep started")

	var replied, skipped int
	for _, review := range pending {
		result, err := s.reviewService.GenerateReply(ctx, review.ID, "")
		if err != nil {
			// Blocked reviews stay pending for a human to handle.
			log.Warn().
				Err(err).
				Str("review_id", review.ID.String()).
				Msg("auto-reply skipped review")
			skipped++
			continue
		}

		if err := s.reviewRepo.UpdateReply(review.ID, result.Reply, models.StatusReplied, result.IsFallback); err != nil {
			log.Error().
				Err(err).
				Str("review_id", review.ID.String()).
				Msg("auto-reply failed to publish")
			skipped++
			continue
		}
		replied++
	}

	log.Info().
		Int("replied", replied).
		Int("skipped", skipped).
		Dur("took", time.Since(started)).
		Msg("✅ auto-reply sweep finished")
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/reviewpilot/review-pilot-be/internal/core/reply"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
)

// ReviewService wires the reply engine to the review store: it loads the
// business configuration, runs the pipeline and persists drafts.
type ReviewService struct {
	reviewRepo   repositories.ReviewRepo
	businessRepo repositories.BusinessRepo
	engine       *reply.Engine
}

func NewReviewService(
	reviewRepo repositories.ReviewRepo,
	businessRepo repositories.BusinessRepo,
	engine *reply.Engine,
) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
		engine:       engine,
	}
}

// GetReviews lists a business's reviews, seeding the canonical demo set the
// first time the store is empty.
func (s *ReviewService) GetReviews(businessID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	if len(reviews) > 0 {
		return reviews, nil
	}

	log.Info().Str("business_id", businessID.String()).Msg("no reviews found, seeding demo set")
	if err := s.reviewRepo.CreateBatch(seedReviews(businessID)); err != nil {
		return nil, fmt.Errorf("failed to seed reviews: %w", err)
	}
	return s.reviewRepo.ListByBusiness(businessID)
}

// GenerateReply runs the full pipeline for one review and saves the result as
// a draft. toneOverride, when non-empty, beats the stored brand voice. A
// crisis block is returned to the caller as a *reply.BlockedError; nothing is
// persisted in that case.
func (s *ReviewService) GenerateReply(ctx context.Context, reviewID uuid.UUID, toneOverride string) (*reply.Result, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, fmt.Errorf("review not found: %w", err)
	}

	business, err := s.businessRepo.GetByID(review.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("business not found: %w", err)
	}

	req, err := s.buildRequest(review, business, toneOverride)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.GenerateReply(ctx, req)
	if err != nil {
		return nil, err // only ever *reply.BlockedError
	}

	if err := s.reviewRepo.UpdateReply(review.ID, result.Reply, models.StatusDraft, result.IsFallback); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	log.Info().
		Str("review_id", review.ID.String()).
		Bool("is_fallback", result.IsFallback).
		Msg("reply drafted")

	return result, nil
}

// buildRequest decodes the business configuration blobs into a typed engine
// request.
func (s *ReviewService) buildRequest(review *models.Review, business *models.Business, toneOverride string) (reply.Request, error) {
	kb, err := business.ParseKnowledgeBase()
	if err != nil {
		return reply.Request{}, fmt.Errorf("invalid knowledge base: %w", err)
	}
	brandVoice, err := business.ParseBrandVoice()
	if err != nil {
		return reply.Request{}, fmt.Errorf("invalid brand voice: %w", err)
	}
	safetySettings, err := business.ParseSafetySettings()
	if err != nil {
		return reply.Request{}, fmt.Errorf("invalid safety settings: %w", err)
	}

	return reply.Request{
		ReviewerName:   review.ReviewerName,
		StarRating:     review.StarRating,
		Content:        review.Content,
		KB:             kb,
		LegacyContext:  business.BusinessContext,
		Voice:          brandVoice,
		ToneOverride:   toneOverride,
		CrisisKeywords: safetySettings.CrisisKeywords,
	}, nil
}

// SaveReply persists an operator-approved (or edited) reply.
func (s *ReviewService) SaveReply(reviewID uuid.UUID, replyContent string, status models.ReviewStatus) error {
	switch status {
	case models.StatusDraft, models.StatusReplied:
	default:
		return errors.New("status must be draft or replied")
	}
	return s.reviewRepo.UpdateReply(reviewID, replyContent, status, false)
}

// SeedMockReviews inserts n generated reviews for dev/demo use.
func (s *ReviewService) SeedMockReviews(businessID uuid.UUID, count int) (int, error) {
	if count <= 0 {
		count = 25
	}
	if count > 500 {
		count = 500
	}
	reviews := GenerateMockReviews(businessID, count)
	if err := s.reviewRepo.CreateBatch(reviews); err != nil {
		return 0, err
	}
	return len(reviews), nil
}

// seedReviews is the fixed demo set inserted when a business has no reviews.
func seedReviews(businessID uuid.UUID) []models.Review {
	now := time.Now()
	return []models.Review{
		{
			BusinessID:   businessID,
			ReviewerName: "Alice Johnson",
			StarRating:   5,
			Content:      "Absolutely loved the service! The team was professional and quick.",
			Status:       models.StatusPending,
			PostedAt:     now.Add(-2 * time.Hour),
		},
		{
			BusinessID:   businessID,
			ReviewerName: "Mark Smith",
			StarRating:   2,
			Content:      "Waited for 30 minutes and no one showed up. Very disappointed.",
			Status:       models.StatusPending,
			PostedAt:     now.Add(-24 * time.Hour),
		},
		{
			BusinessID:   businessID,
			ReviewerName: "Tom Wilson",
			StarRating:   3,
			Content:      "Food was good but service was slow.",
			ReplyContent: "Hi Tom, sorry about the wait. We are training new staff.",
			Status:       models.StatusDraft,
			PostedAt:     now.Add(-12 * time.Hour),
		},
		{
			BusinessID:   businessID,
			ReviewerName: "Sarah Davis",
			StarRating:   4,
			Content:      "Great experience overall, but parking was a bit of a hassle.",
			ReplyContent: "Hi Sarah, glad you had a great experience! We are working on improving our parking situation. Hope to see you again soon!",
			Status:       models.StatusReplied,
			PostedAt:     now.Add(-48 * time.Hour),
		},
	}
}

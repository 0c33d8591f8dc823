package repositories

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
)

type ReviewRepo interface {
	ListByBusiness(businessID uuid.UUID) ([]models.Review, error)
	GetByID(id uuid.UUID) (*models.Review, error)
	CreateBatch(reviews []models.Review) error
	UpdateReply(id uuid.UUID, replyContent string, status models.ReviewStatus, isFallback bool) error
	ListPendingAboveRating(businessID uuid.UUID, minRating int) ([]models.Review, error)
	ListUnanalyzed(businessID uuid.UUID, limit int) ([]models.Review, error)
	UpdateAnalysis(id uuid.UUID, sentiment models.Sentiment, topics, entities []string) error
	CountByBusiness(businessID uuid.UUID) (int64, error)
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepo {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) ListByBusiness(businessID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Where("business_id = ?", businessID).
		Order("posted_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) GetByID(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) CreateBatch(reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	return r.db.Create(&reviews).Error
}

func (r *reviewRepo) UpdateReply(id uuid.UUID, replyContent string, status models.ReviewStatus, isFallback bool) error {
	return r.db.Model(&models.Review{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reply_content": replyContent,
			"status":        status,
			"is_fallback":   isFallback,
		}).Error
}

func (r *reviewRepo) ListPendingAboveRating(businessID uuid.UUID, minRating int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Where("business_id = ? AND status = ? AND star_rating >= ?", businessID, models.StatusPending, minRating).
		Order("posted_at ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) ListUnanalyzed(businessID uuid.UUID, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Where("business_id = ? AND (sentiment IS NULL OR sentiment = '')", businessID).
		Order("posted_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) UpdateAnalysis(id uuid.UUID, sentiment models.Sentiment, topics, entities []string) error {
	return r.db.Model(&models.Review{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sentiment": sentiment,
			"topics":    pq.StringArray(topics),
			"entities":  pq.StringArray(entities),
		}).Error
}

func (r *reviewRepo) CountByBusiness(businessID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	return count, err
}

package repositories

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
)

type BusinessRepo interface {
	GetByID(id uuid.UUID) (*models.Business, error)
	GetDefault() (*models.Business, error)
	Save(business *models.Business) error
}

type businessRepo struct {
	db *gorm.DB
}

func NewBusinessRepo(db *gorm.DB) BusinessRepo {
	return &businessRepo{db: db}
}

func (r *businessRepo) GetByID(id uuid.UUID) (*models.Business, error) {
	var business models.Business
	if err := r.db.Where("id = ?", id).First(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

// GetDefault returns the single-tenant business record, provisioning a demo
// business on first use (the dashboard MVP runs against one business).
func (r *businessRepo) GetDefault() (*models.Business, error) {
	var business models.Business
	err := r.db.Order("created_at ASC").First(&business).Error
	if err == nil {
		return &business, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	log.Println("ℹ️ No business found, provisioning demo business...")
	business = models.Business{
		BusinessName:       "ReviewPilot Demo",
		AutoReplyThreshold: 4,
		AITone:             "professional",
	}
	if err := r.db.Create(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepo) Save(business *models.Business) error {
	return r.db.Save(business).Error
}

package services

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/reviewpilot/review-pilot-be/internal/core/knowledge"
	"github.com/reviewpilot/review-pilot-be/internal/core/safety"
	"github.com/reviewpilot/review-pilot-be/internal/core/voice"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
)

// SettingsUpdate carries a partial settings change. Nil fields are left
// untouched so the dashboard can send only what the operator edited.
type SettingsUpdate struct {
	BusinessName       *string                  `json:"businessName,omitempty"`
	AutoReplyThreshold *int                     `json:"autoReplyThreshold,omitempty"`
	AITone             *string                  `json:"aiTone,omitempty"`
	BusinessContext    *string                  `json:"businessContext,omitempty"`
	KnowledgeBase      *knowledge.KnowledgeBase `json:"knowledgeBase,omitempty"`
	BrandVoice         *voice.BrandVoice        `json:"brandVoice,omitempty"`
	SafetySettings     *safety.Settings         `json:"safetySettings,omitempty"`
}

// SettingsService reads and upserts the per-business configuration blob.
type SettingsService struct {
	businessRepo repositories.BusinessRepo
}

func NewSettingsService(businessRepo repositories.BusinessRepo) *SettingsService {
	return &SettingsService{businessRepo: businessRepo}
}

// GetSettings returns the default business record, provisioning one on first
// call.
func (s *SettingsService) GetSettings() (*models.Business, error) {
	return s.businessRepo.GetDefault()
}

// UpdateSettings applies a partial update to the default business.
func (s *SettingsService) UpdateSettings(update SettingsUpdate) (*models.Business, error) {
	business, err := s.businessRepo.GetDefault()
	if err != nil {
		return nil, err
	}

	if update.BusinessName != nil {
		business.BusinessName = *update.BusinessName
	}
	if update.AutoReplyThreshold != nil {
		threshold := *update.AutoReplyThreshold
		if threshold < 1 || threshold > 5 {
			return nil, fmt.Errorf("auto-reply threshold must be between 1 and 5, got %d", threshold)
		}
		business.AutoReplyThreshold = threshold
	}
	if update.AITone != nil {
		business.AITone = *update.AITone
	}
	if update.BusinessContext != nil {
		business.BusinessContext = *update.BusinessContext
	}
	if update.KnowledgeBase != nil {
		raw, err := json.Marshal(update.KnowledgeBase)
		if err != nil {
			return nil, fmt.Errorf("failed to encode knowledge base: %w", err)
		}
		business.KnowledgeBase = datatypes.JSON(raw)
	}
	if update.BrandVoice != nil {
		raw, err := json.Marshal(update.BrandVoice)
		if err != nil {
			return nil, fmt.Errorf("failed to encode brand voice: %w", err)
		}
		business.BrandVoice = datatypes.JSON(raw)
	}
	if update.SafetySettings != nil {
		raw, err := json.Marshal(update.SafetySettings)
		if err != nil {
			return nil, fmt.Errorf("failed to encode safety settings: %w", err)
		}
		business.SafetySettings = datatypes.JSON(raw)
	}

	if err := s.businessRepo.Save(business); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	log.Info().Str("business_id", business.ID.String()).Msg("settings updated")
	return business, nil
}

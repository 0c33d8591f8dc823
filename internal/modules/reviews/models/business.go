package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/reviewpilot/review-pilot-be/internal/core/knowledge"
	"github.com/reviewpilot/review-pilot-be/internal/core/safety"
	"github.com/reviewpilot/review-pilot-be/internal/core/voice"
)

// Business is the operator-edited settings record: identity, auto-reply
// threshold and the three JSONB configuration blobs read at generation time.
type Business struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessName       string    `gorm:"type:text;not null" json:"business_name"`
	AutoReplyThreshold int       `gorm:"not null;default:4" json:"auto_reply_threshold"`
	AITone             string    `gorm:"type:text" json:"ai_tone"`
	BusinessContext    string    `gorm:"type:text" json:"business_context"` // legacy freeform knowledge

	KnowledgeBase  datatypes.JSON `gorm:"type:jsonb" json:"knowledge_base"`
	BrandVoice     datatypes.JSON `gorm:"type:jsonb" json:"brand_voice"`
	SafetySettings datatypes.JSON `gorm:"type:jsonb" json:"safety_settings"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Business) TableName() string {
	return "businesses"
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ParseKnowledgeBase decodes the JSONB column into the typed knowledge base.
// A missing or empty column yields an empty knowledge base, not an error.
func (b *Business) ParseKnowledgeBase() (*knowledge.KnowledgeBase, error) {
	kb := &knowledge.KnowledgeBase{}
	if len(b.KnowledgeBase) == 0 {
		return kb, nil
	}
	if err := json.Unmarshal(b.KnowledgeBase, kb); err != nil {
		return nil, err
	}
	return kb, nil
}

// ParseBrandVoice decodes the JSONB column; nil when unset.
func (b *Business) ParseBrandVoice() (*voice.BrandVoice, error) {
	if len(b.BrandVoice) == 0 {
		return nil, nil
	}
	v := &voice.BrandVoice{}
	if err := json.Unmarshal(b.BrandVoice, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseSafetySettings decodes the JSONB column; empty settings when unset.
func (b *Business) ParseSafetySettings() (safety.Settings, error) {
	var s safety.Settings
	if len(b.SafetySettings) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(b.SafetySettings, &s); err != nil {
		return s, err
	}
	return s, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ReviewStatus string

const (
	StatusPending ReviewStatus = "pending"
	StatusDraft   ReviewStatus = "draft"
	StatusReplied ReviewStatus = "replied"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Review is an ingested (or mocked) Google review. Content, star rating and
// posted time never change after creation; the engine only ever mutates the
// reply fields and status.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`

	ReviewerName string    `gorm:"type:text;not null" json:"reviewer_name"`
	StarRating   int       `gorm:"not null" json:"star_rating"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	PostedAt     time.Time `gorm:"not null;index" json:"posted_at"`

	Status       ReviewStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	ReplyContent string       `gorm:"type:text" json:"reply_content,omitempty"`
	IsFallback   bool         `gorm:"default:false" json:"is_fallback"`

	Sentiment Sentiment      `gorm:"type:text" json:"sentiment,omitempty"`
	Topics    pq.StringArray `gorm:"type:text[]" json:"topics,omitempty"`
	Entities  pq.StringArray `gorm:"type:text[]" json:"entities,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationship
	Business Business `gorm:"foreignKey:BusinessID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/reviewpilot/review-pilot-be/internal/core/knowledge"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
	"github.com/reviewpilot/review-pilot-be/internal/shared/utils"
)

// KnowledgeService runs the smart-ingest path: free text in, typed fact
// appended to the business knowledge base.
type KnowledgeService struct {
	businessRepo repositories.BusinessRepo
	extractor    *knowledge.Extractor
}

func NewKnowledgeService(businessRepo repositories.BusinessRepo, extractor *knowledge.Extractor) *KnowledgeService {
	return &KnowledgeService{
		businessRepo: businessRepo,
		extractor:    extractor,
	}
}

// GetKnowledgeBase returns the decoded knowledge base for a business.
func (s *KnowledgeService) GetKnowledgeBase(businessID uuid.UUID) (*knowledge.KnowledgeBase, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	return business.ParseKnowledgeBase()
}

// Ingest classifies free text and appends the resulting fact to the stored
// knowledge base. Extraction itself never fails; only storage errors surface.
func (s *KnowledgeService) Ingest(ctx context.Context, businessID uuid.UUID, text string) (knowledge.Fact, error) {
	fact := s.extractor.Extract(ctx, text)

	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return fact, fmt.Errorf("business not found: %w", err)
	}

	kb, err := business.ParseKnowledgeBase()
	if err != nil {
		return fact, fmt.Errorf("invalid knowledge base: %w", err)
	}

	appendFact(kb, fact)

	raw, err := json.Marshal(kb)
	if err != nil {
		return fact, fmt.Errorf("failed to encode knowledge base: %w", err)
	}
	business.KnowledgeBase = raw

	if err := s.businessRepo.Save(business); err != nil {
		return fact, fmt.Errorf("failed to save knowledge base: %w", err)
	}

	utils.LogInfo("knowledge fact ingested", map[string]interface{}{
		"business_id": businessID.String(),
		"type":        fact.Type,
		"title":       fact.Title,
	})

	return fact, nil
}

// appendFact maps an extracted fact onto the typed knowledge-base entry for
// its type. Insertion order is preserved; the compiler renders arrays as-is.
func appendFact(kb *knowledge.KnowledgeBase, fact knowledge.Fact) {
	switch fact.Type {
	case "team":
		kb.Team = append(kb.Team, knowledge.TeamMember{
			ID:       uuid.NewString(),
			Name:     fact.Title,
			Role:     fact.Subtitle,
			Context:  fact.ExtractedContext,
			IsPublic: true,
		})
	case "geo":
		priority := fact.Subtitle
		switch priority {
		case "high", "medium", "low":
		default:
			priority = "medium"
		}
		kb.GeoKeywords = append(kb.GeoKeywords, knowledge.GeoKeyword{
			ID:       uuid.NewString(),
			Keyword:  fact.Title,
			Priority: priority,
		})
	default: // policy
		if kb.General == nil {
			kb.General = &knowledge.General{}
		}
		kb.General.Policies = append(kb.General.Policies, fact.ExtractedContext)
	}
}

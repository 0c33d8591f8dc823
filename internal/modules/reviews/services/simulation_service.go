package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/reviewpilot/review-pilot-be/internal/core/knowledge"
	"github.com/reviewpilot/review-pilot-be/internal/core/reply"
	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/repositories"
)

const simulationFallback = "Thanks for your question! We'd love to help you. Please feel free to visit us or reach out directly. — The Team"

// SimulationResult is the preview payload for the knowledge-base playground.
type SimulationResult struct {
	Response     string   `json:"response"`
	EntitiesUsed []string `json:"entitiesUsed"`
	IsFallback   bool     `json:"isFallback"`
}

// SimulationService answers a hypothetical customer question using only the
// stored knowledge base, so operators can see which facts the model picks up.
type SimulationService struct {
	businessRepo repositories.BusinessRepo
	model        reply.Generator
}

func NewSimulationService(businessRepo repositories.BusinessRepo, model reply.Generator) *SimulationService {
	return &SimulationService{businessRepo: businessRepo, model: model}
}

// Simulate runs a single model call against the compiled knowledge base. No
// retries here; a failed call returns the canned fallback instead.
func (s *SimulationService) Simulate(ctx context.Context, businessID uuid.UUID, customerQuery string) (*SimulationResult, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("business not found: %w", err)
	}

	kb, err := business.ParseKnowledgeBase()
	if err != nil {
		return nil, fmt.Errorf("invalid knowledge base: %w", err)
	}

	compiled := knowledge.Compile(kb, business.BusinessContext)

	var sb strings.Builder
	sb.WriteString("A potential customer asks: ")
	sb.WriteString(strconv.Quote(customerQuery))
	sb.WriteString("\n\n")
	if compiled.FactsText != "" {
		sb.WriteString("BUSINESS KNOWLEDGE:\n")
		sb.WriteString(compiled.FactsText)
		sb.WriteString("\n\n")
	}
	if compiled.GeoInstructionsText != "" {
		sb.WriteString(compiled.GeoInstructionsText)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Answer the customer in 2-3 friendly sentences, using the business knowledge above where relevant. Sign off as \"— The Team\".\n\nResponse:")

	systemPrompt := fmt.Sprintf("You are the owner of %s answering a question from a potential customer.", business.BusinessName)

	text, err := s.model.GenerateResponse(ctx, systemPrompt, sb.String())
	if err != nil {
		log.Warn().Err(err).Msg("simulation model call failed, serving fallback")
		return &SimulationResult{
			Response:     simulationFallback,
			EntitiesUsed: []string{},
			IsFallback:   true,
		}, nil
	}

	response := strings.TrimSpace(text)
	return &SimulationResult{
		Response:     response,
		EntitiesUsed: detectEntities(response, kb),
		IsFallback:   false,
	}, nil
}

// detectEntities lists the knowledge-base entries that actually surfaced in
// the generated text: public team member names and geo keywords.
func detectEntities(response string, kb *knowledge.KnowledgeBase) []string {
	lower := strings.ToLower(response)
	used := []string{}
	for _, member := range kb.Team {
		if !member.IsPublic || member.Name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(member.Name)) {
			used = append(used, member.Name)
		}
	}
	for _, kw := range kb.GeoKeywords {
		if kw.Keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw.Keyword)) {
			used = append(used, kw.Keyword)
		}
	}
	return used
}

package analysis

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Analysis is the per-review enrichment: overall sentiment plus the topics
// and named entities surfaced in the text.
type Analysis struct {
	Sentiment string   `json:"sentiment"` // positive | neutral | negative
	Topics    []string `json:"topics"`
	Entities  []string `json:"entities"`
}

// Generator is the slice of the LLM service the analyzer needs.
type Generator interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Analyzer classifies review text, asking the model first and falling back to
// local heuristics when the call or the JSON parse fails. Analyze never
// returns an error to its caller.
type Analyzer struct {
	llm Generator
}

func NewAnalyzer(llm Generator) *Analyzer {
	return &Analyzer{llm: llm}
}

const analyzerSystemPrompt = `You analyze one customer review of a local business.

Extract:
- "sentiment": the overall sentiment, exactly one of "positive", "neutral" or "negative".
- "topics": 1 to 3 short topic labels the review touches on (e.g. "Food", "Service", "Price", "Ambiance", "Cleanliness", "Staff", "Speed", "Parking").
- "entities": proper nouns mentioned in the review (people, dishes, places), empty array if none.

Respond with valid JSON matching this schema:
{"sentiment":"positive|neutral|negative","topics":["string"],"entities":["string"]}

Return ONLY the JSON object, no markdown fences or other text.`

// Analyze enriches one review. Worst case it returns the rating-derived
// sentiment with keyword-scanned topics.
func (a *Analyzer) Analyze(ctx context.Context, content string, starRating int) Analysis {
	raw, err := a.llm.GenerateResponse(ctx, analyzerSystemPrompt, content)
	if err != nil {
		log.Warn().Err(err).Msg("review analysis model call failed, using heuristic fallback")
		return heuristicAnalyze(content, starRating)
	}

	var result Analysis
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &result); err != nil {
		log.Warn().Err(err).Msg("review analysis returned unparseable JSON, using heuristic fallback")
		return heuristicAnalyze(content, starRating)
	}

	switch result.Sentiment {
	case "positive", "neutral", "negative":
	default:
		return heuristicAnalyze(content, starRating)
	}

	if result.Topics == nil {
		result.Topics = []string{}
	}
	if result.Entities == nil {
		result.Entities = []string{}
	}
	return result
}

// stripCodeFences removes markdown fences the model sometimes wraps JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

var topicKeywords = map[string][]string{
	"Food":        {"food", "pasta", "pizza", "menu", "dish", "dessert", "fries", "appetizer", "flavor", "tasteless"},
	"Service":     {"service", "staff", "server", "waiter", "waitress", "welcome", "rude", "attentive"},
	"Price":       {"price", "pricey", "expensive", "cheap", "portion"},
	"Ambiance":    {"vibe", "atmosphere", "music", "decor", "lighting", "cozy"},
	"Cleanliness": {"clean", "dirty", "sticky"},
	"Speed":       {"slow", "quick", "wait", "waited", "minutes"},
	"Parking":     {"parking"},
}

// heuristicAnalyze is the local fallback: sentiment comes from the star
// rating, topics from a keyword scan over the review text.
func heuristicAnalyze(content string, starRating int) Analysis {
	sentiment := "neutral"
	switch {
	case starRating >= 4:
		sentiment = "positive"
	case starRating <= 2:
		sentiment = "negative"
	}

	lower := strings.ToLower(content)
	topics := []string{}
	for topic, words := range topicKeywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				topics = append(topics, topic)
				break
			}
		}
	}
	sort.Strings(topics)

	return Analysis{
		Sentiment: sentiment,
		Topics:    topics,
		Entities:  []string{},
	}
}

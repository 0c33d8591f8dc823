package knowledge

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

// Fact is a typed knowledge-base fact extracted from free-text operator input.
type Fact struct {
	Type             string `json:"type"` // team | geo | policy
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	ExtractedContext string `json:"extractedContext"`
}

// Generator is the slice of the LLM service the extractor needs.
type Generator interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Extractor classifies free-text operator input into a typed fact, asking the
// model first and falling back to local heuristics when the call or the JSON
// parse fails. Extract never returns an error to its caller.
type Extractor struct {
	llm Generator
}

func NewExtractor(llm Generator) *Extractor {
	return &Extractor{llm: llm}
}

const extractorSystemPrompt = `You classify a note about a local business into exactly one knowledge type and extract its fields.

Types:
- "team": a note about a staff member. title = the person's name (infer from honorifics like "Chef Marco"), subtitle = their role.
- "geo": a local search phrase or neighborhood claim. title = a short keyword phrase, subtitle = priority ("high", "medium" or "low").
- "policy": any operational rule or core info. title = a short topic, subtitle = a one-line summary.

Respond with valid JSON matching this schema:
{"type":"team|geo|policy","title":"string","subtitle":"string","extractedContext":"string"}

Return ONLY the JSON object, no markdown fences or other text.`

// Extract turns free text into a typed fact. Worst case it returns a generic
// policy record carrying the raw text.
func (x *Extractor) Extract(ctx context.Context, freeText string) Fact {
	raw, err := x.llm.GenerateResponse(ctx, extractorSystemPrompt, freeText)
	if err != nil {
		log.Warn().Err(err).Msg("knowledge extraction model call failed, using heuristic fallback")
		return heuristicExtract(freeText)
	}

	var fact Fact
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &fact); err != nil {
		log.Warn().Err(err).Msg("knowledge extraction returned unparseable JSON, using heuristic fallback")
		return heuristicExtract(freeText)
	}

	switch fact.Type {
	case "team", "geo", "policy":
	default:
		return heuristicExtract(freeText)
	}

	if fact.ExtractedContext == "" {
		fact.ExtractedContext = freeText
	}
	return fact
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

var roleWords = []string{
	"chef", "barista", "manager", "owner", "stylist", "barber",
	"waiter", "waitress", "bartender", "sommelier", "trainer", "instructor",
}

var geoWords = []string{"best", "near", "in", "local", "neighborhood"}

// heuristicExtract is the regex-free local triage used when the model is
// unavailable: role words mean a team member, locative words mean a geo
// keyword, everything else is filed as a policy.
func heuristicExtract(freeText string) Fact {
	tokens := strings.Fields(freeText)

	for i, tok := range tokens {
		lower := strings.ToLower(strings.Trim(tok, ".,!?:;\"'"))
		for _, role := range roleWords {
			if lower != role {
				continue
			}
			name := "Team Member"
			if i+1 < len(tokens) {
				name = strings.Trim(tokens[i+1], ".,!?:;\"'")
			}
			return Fact{
				Type:             "team",
				Title:            name,
				Subtitle:         strings.ToUpper(role[:1]) + role[1:],
				ExtractedContext: freeText,
			}
		}
	}

	for _, tok := range tokens {
		lower := strings.ToLower(strings.Trim(tok, ".,!?:;\"'"))
		for _, geo := range geoWords {
			if lower == geo {
				return Fact{
					Type:             "geo",
					Title:            truncate(freeText, 50),
					Subtitle:         "medium",
					ExtractedContext: freeText,
				}
			}
		}
	}

	return Fact{
		Type:             "policy",
		Title:            "New Info",
		Subtitle:         truncate(freeText, 50),
		ExtractedContext: freeText,
	}
}

// truncate cuts on rune boundaries so multi-byte text stays valid UTF-8.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

package reply

import (
	"fmt"
	"strings"

	"github.com/reviewpilot/review-pilot-be/internal/core/knowledge"
	"github.com/reviewpilot/review-pilot-be/internal/core/voice"
)

const systemRole = `ROLE: You are an expert customer service manager for a local business.
GOAL: Draft a distinct, brand-safe reply to the Google review below.`

// buildPrompt assembles the final prompt. Order matters: role framing, review
// facts, business knowledge, GEO instructions, tone, hard constraints, then
// the fixed formatting rules.
func buildPrompt(req Request) (systemPrompt, userMessage string) {
	kb := knowledge.Compile(req.KB, req.LegacyContext)
	tone := voice.Compile(req.Voice, req.ToneOverride, req.StarRating)

	var sb strings.Builder

	fmt.Fprintf(&sb, "Reviewer: %s\n", req.ReviewerName)
	fmt.Fprintf(&sb, "Rating: %d/5 Stars\n", req.StarRating)
	fmt.Fprintf(&sb, "Review: %q\n", req.Content)

	if kb.FactsText != "" {
		sb.WriteString("\nBUSINESS KNOWLEDGE:\n")
		sb.WriteString(kb.FactsText)
		sb.WriteString("\n")
	}

	if kb.GeoInstructionsText != "" {
		sb.WriteString("\n")
		sb.WriteString(kb.GeoInstructionsText)
		sb.WriteString("\n")
	}

	sb.WriteString("\nTONE & STYLE:\n")
	sb.WriteString(tone.ToneDirectives)
	sb.WriteString("\n")

	if len(tone.HardConstraints) > 0 {
		sb.WriteString("\nHARD CONSTRAINTS:\n")
		for _, c := range tone.HardConstraints {
			sb.WriteString("- " + c + "\n")
		}
	}

	sb.WriteString(`
FORMATTING:
- Keep it concise: 50-60 words maximum.
- Address the specific points raised in the review.
- Do not use placeholders like "[Business Name]".
- Sign off as "— The Team".
- Never mention keywords, SEO, GEO, playbooks or any other internal strategy in the visible reply.

Response:`)

	return systemRole, sb.String()
}

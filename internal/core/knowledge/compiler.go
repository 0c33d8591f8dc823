package knowledge

import (
	"fmt"
	"strings"
)

// Compiled is the output of Compile: business facts and the GEO keyword
// instruction block, kept separate so the engine can place them independently
// in the final prompt.
type Compiled struct {
	FactsText           string
	GeoInstructionsText string
}

// Compile renders the knowledge base into ordered prompt text. Section order
// is a contract: the model reads sequentially and later sections carry more
// weight, with the playbook last so it overrides everything before it.
// Empty sections are omitted entirely. Pure function, no I/O.
func Compile(kb *KnowledgeBase, legacyContext string) Compiled {
	if kb == nil {
		kb = &KnowledgeBase{}
	}

	sections := []string{
		legacySection(legacyContext),
		aboutSection(kb.General),
		policiesSection(kb.General),
		alwaysMentionSection(kb.General),
		teamSection(kb.Team),
		menuSection(kb.MenuHighlights),
		playbookSection(kb.Playbook),
	}

	return Compiled{
		FactsText:           joinSections(sections),
		GeoInstructionsText: geoSection(kb.GeoKeywords),
	}
}

// joinSections drops empty sections and joins the rest with blank lines.
func joinSections(sections []string) string {
	kept := sections[:0]
	for _, s := range sections {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "\n\n")
}

func legacySection(legacyContext string) string {
	legacyContext = strings.TrimSpace(legacyContext)
	if legacyContext == "" {
		return ""
	}
	return fmt.Sprintf("BUSINESS CONTEXT:\n%q\nUse this context to personalize the reply where relevant.", legacyContext)
}

func aboutSection(g *General) string {
	if g == nil || strings.TrimSpace(g.About) == "" {
		return ""
	}
	return "ABOUT THE BUSINESS:\n" + strings.TrimSpace(g.About)
}

func policiesSection(g *General) string {
	if g == nil || len(g.Policies) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("POLICIES (strictly adhere to these):")
	for _, p := range g.Policies {
		sb.WriteString("\n- " + p)
	}
	return sb.String()
}

func alwaysMentionSection(g *General) string {
	if g == nil || strings.TrimSpace(g.AlwaysMention) == "" {
		return ""
	}
	return fmt.Sprintf("MANDATORY: every reply must mention the following: %s", strings.TrimSpace(g.AlwaysMention))
}

func teamSection(team []TeamMember) string {
	var lines []string
	for _, m := range team {
		if !m.IsPublic {
			continue
		}
		line := fmt.Sprintf("- %s (%s)", m.Name, m.Role)
		if clause := experienceClause(m); clause != "" {
			line += ": " + clause
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return ""
	}
	return "TEAM:\n" + strings.Join(lines, "\n")
}

// experienceClause builds the credibility clause for a team member from the
// structured fields, falling back to the legacy freeform context only when
// none of them are present.
func experienceClause(m TeamMember) string {
	var parts []string
	if m.YearsOfExperience > 0 {
		parts = append(parts, fmt.Sprintf("%d years of experience", m.YearsOfExperience))
	}
	if len(m.Certifications) > 0 {
		parts = append(parts, "certified in "+strings.Join(m.Certifications, ", "))
	}
	if len(m.Specialties) > 0 {
		parts = append(parts, "specializes in "+strings.Join(m.Specialties, ", "))
	}
	if len(parts) == 0 {
		return strings.TrimSpace(m.Context)
	}
	return strings.Join(parts, "; ")
}

func menuSection(highlights []MenuHighlight) string {
	if len(highlights) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("MENU HIGHLIGHTS:")
	for _, h := range highlights {
		sb.WriteString("\n- " + h.Item)
		if h.Description != "" {
			sb.WriteString(": " + h.Description)
		}
		if h.SentimentHook != "" {
			sb.WriteString(fmt.Sprintf(" (use when: %s)", h.SentimentHook))
		}
	}
	return sb.String()
}

// playbookSection renders every rule; when several triggers match a review the
// model sees all of them and decides relevance, there is no first-match cutoff.
func playbookSection(rules []PlaybookRule) string {
	if len(rules) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("RESPONSE PLAYBOOK (these rules OVERRIDE all other guidance above):")
	for _, r := range rules {
		sb.WriteString(fmt.Sprintf("\n- IF the review mentions %q THEN work this into the reply: %q", r.Trigger, r.Response))
	}
	return sb.String()
}

func geoSection(keywords []GeoKeyword) string {
	if len(keywords) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("LOCAL KEYWORDS (Generative Engine Optimization):\n")
	sb.WriteString("Weave these phrases into the reply to increase AI visibility of the business.\n")
	sb.WriteString("- HIGH priority: use even if only tangentially relevant.\n")
	sb.WriteString("- MEDIUM priority: use when clearly relevant to the review.\n")
	sb.WriteString("- LOW priority: use only when it fits naturally.\n")
	sb.WriteString("Keywords:")
	for _, k := range keywords {
		sb.WriteString(fmt.Sprintf("\n- %q (%s priority)", k.Keyword, k.Priority))
		if k.UsageExample != "" {
			sb.WriteString(fmt.Sprintf(" — e.g. %q", k.UsageExample))
		}
	}
	return sb.String()
}

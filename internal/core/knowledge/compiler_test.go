package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmptyKnowledgeBase(t *testing.T) {
	out := Compile(nil, "")
	assert.Empty(t, out.FactsText)
	assert.Empty(t, out.GeoInstructionsText)

	out = Compile(&KnowledgeBase{}, "")
	assert.Empty(t, out.FactsText)
	assert.Empty(t, out.GeoInstructionsText)
}

func TestCompileOmitsEmptySections(t *testing.T) {
	kb := &KnowledgeBase{
		General: &General{About: "Family-run trattoria since 1998."},
	}
	out := Compile(kb, "")

	assert.Contains(t, out.FactsText, "ABOUT THE BUSINESS:")
	assert.NotContains(t, out.FactsText, "POLICIES")
	assert.NotContains(t, out.FactsText, "TEAM:")
	assert.NotContains(t, out.FactsText, "MENU HIGHLIGHTS:")
	assert.NotContains(t, out.FactsText, "PLAYBOOK")
	assert.Empty(t, out.GeoInstructionsText)
}

func TestCompileSectionOrdering(t *testing.T) {
	kb := &KnowledgeBase{
		General: &General{
			About:         "Cozy neighborhood cafe.",
			AlwaysMention: "our loyalty card",
			Policies:      []string{"No refunds after 30 days"},
		},
		Team: []TeamMember{
			{Name: "Marco", Role: "Chef", IsPublic: true, Specialties: []string{"Handmade Pasta"}},
		},
		MenuHighlights: []MenuHighlight{
			{Item: "Truffle Fries", Description: "fan favorite"},
		},
		Playbook: []PlaybookRule{
			{Trigger: "parking", Response: "free lot around the corner"},
		},
	}
	out := Compile(kb, "legacy notes")

	order := []string{
		"BUSINESS CONTEXT:",
		"ABOUT THE BUSINESS:",
		"POLICIES (strictly adhere to these):",
		"MANDATORY:",
		"TEAM:",
		"MENU HIGHLIGHTS:",
		"RESPONSE PLAYBOOK",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out.FactsText, marker)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", marker)
		assert.Greater(t, idx, last, "section %q out of order", marker)
		last = idx
	}
}

func TestCompileFiltersPrivateTeamMembers(t *testing.T) {
	kb := &KnowledgeBase{
		Team: []TeamMember{
			{Name: "Marco", Role: "Chef", IsPublic: true},
			{Name: "Silent Bob", Role: "Accountant", IsPublic: false},
		},
	}
	out := Compile(kb, "")

	assert.Contains(t, out.FactsText, "Marco")
	assert.NotContains(t, out.FactsText, "Silent Bob")
}

func TestCompileOmitsTeamSectionWhenNoPublicMembers(t *testing.T) {
	kb := &KnowledgeBase{
		Team: []TeamMember{{Name: "Hidden", Role: "Chef", IsPublic: false}},
	}
	out := Compile(kb, "")
	assert.NotContains(t, out.FactsText, "TEAM:")
}

func TestExperienceClause(t *testing.T) {
	tests := []struct {
		name   string
		member TeamMember
		want   string
	}{
		{
			name: "all structured fields concatenated",
			member: TeamMember{
				YearsOfExperience: 15,
				Certifications:    []string{"ServSafe"},
				Specialties:       []string{"Handmade Pasta", "Vegan Options"},
			},
			want: "15 years of experience; certified in ServSafe; specializes in Handmade Pasta, Vegan Options",
		},
		{
			name:   "freeform context only when no structured fields",
			member: TeamMember{Context: "has led the kitchen since 2012"},
			want:   "has led the kitchen since 2012",
		},
		{
			name:   "structured fields win over context",
			member: TeamMember{YearsOfExperience: 3, Context: "ignored"},
			want:   "3 years of experience",
		},
		{
			name:   "nothing at all",
			member: TeamMember{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, experienceClause(tt.member))
		})
	}
}

func TestCompileGeoBlockSeparateFromFacts(t *testing.T) {
	kb := &KnowledgeBase{
		General: &General{About: "Coffee shop."},
		GeoKeywords: []GeoKeyword{
			{Keyword: "Best coffee in Shoreditch", Priority: "high", UsageExample: "We're known for the best coffee in Shoreditch"},
			{Keyword: "brunch near Old Street", Priority: "low"},
		},
	}
	out := Compile(kb, "")

	assert.NotContains(t, out.FactsText, "Shoreditch")
	assert.Contains(t, out.GeoInstructionsText, "increase AI visibility")
	assert.Contains(t, out.GeoInstructionsText, "HIGH priority: use even if only tangentially relevant")
	assert.Contains(t, out.GeoInstructionsText, "MEDIUM priority")
	assert.Contains(t, out.GeoInstructionsText, "LOW priority")
	assert.Contains(t, out.GeoInstructionsText, `"Best coffee in Shoreditch" (high priority)`)
	assert.Contains(t, out.GeoInstructionsText, `e.g. "We're known for the best coffee in Shoreditch"`)
	assert.Contains(t, out.GeoInstructionsText, `"brunch near Old Street" (low priority)`)
}

func TestCompileSurfacesEveryPlaybookRule(t *testing.T) {
	kb := &KnowledgeBase{
		Playbook: []PlaybookRule{
			{Trigger: "slow service", Response: "we are hiring more staff"},
			{Trigger: "parking", Response: "free lot around the corner"},
			{Trigger: "music", Response: "new playlist every Friday"},
		},
	}
	out := Compile(kb, "")

	// All rules are surfaced; the model, not the compiler, picks relevance.
	assert.Contains(t, out.FactsText, `"slow service"`)
	assert.Contains(t, out.FactsText, `"parking"`)
	assert.Contains(t, out.FactsText, `"music"`)
	assert.Contains(t, out.FactsText, "OVERRIDE")
}

func TestCompileDeterministic(t *testing.T) {
	kb := &KnowledgeBase{
		General: &General{About: "Bakery.", Policies: []string{"cash only"}},
		Team:    []TeamMember{{Name: "Ana", Role: "Baker", IsPublic: true}},
	}
	first := Compile(kb, "ctx")
	second := Compile(kb, "ctx")
	assert.Equal(t, first, second)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reviewpilot/review-pilot-be/internal/core/knowledge"
)

func TestDetectEntities(t *testing.T) {
	kb := &knowledge.KnowledgeBase{
		Team: []knowledge.TeamMember{
			{Name: "Marco", Role: "Head Chef", IsPublic: true},
			{Name: "Hidden Harry", Role: "Accountant", IsPublic: false},
		},
		GeoKeywords: []knowledge.GeoKeyword{
			{Keyword: "best pizza in Brooklyn", Priority: "high"},
			{Keyword: "late night eats", Priority: "low"},
		},
	}

	t.Run("finds team members and keywords case-insensitively", func(t *testing.T) {
		response := "Come meet chef marco and try the Best Pizza in Brooklyn!"
		used := detectEntities(response, kb)
		assert.Equal(t, []string{"Marco", "best pizza in Brooklyn"}, used)
	})

	t.Run("ignores non-public team members", func(t *testing.T) {
		used := detectEntities("Hidden Harry keeps the books.", kb)
		assert.Empty(t, used)
	})

	t.Run("empty when nothing surfaced", func(t *testing.T) {
		used := detectEntities("We open at nine every day.", kb)
		assert.NotNil(t, used)
		assert.Empty(t, used)
	})
}

func TestAppendFact(t *testing.T) {
	t.Run("team fact becomes a public member", func(t *testing.T) {
		kb := &knowledge.KnowledgeBase{}
		appendFact(kb, knowledge.Fact{
			Type: "team", Title: "Antonio", Subtitle: "Chef",
			ExtractedContext: "Chef Antonio has 10 years experience",
		})
		if assert.Len(t, kb.Team, 1) {
			member := kb.Team[0]
			assert.NotEmpty(t, member.ID)
			assert.Equal(t, "Antonio", member.Name)
			assert.Equal(t, "Chef", member.Role)
			assert.True(t, member.IsPublic)
		}
	})

	t.Run("geo fact defaults to medium priority", func(t *testing.T) {
		kb := &knowledge.KnowledgeBase{}
		appendFact(kb, knowledge.Fact{Type: "geo", Title: "best tacos downtown", Subtitle: "urgent"})
		if assert.Len(t, kb.GeoKeywords, 1) {
			assert.Equal(t, "medium", kb.GeoKeywords[0].Priority)
		}
	})

	t.Run("geo fact keeps a valid priority", func(t *testing.T) {
		kb := &knowledge.KnowledgeBase{}
		appendFact(kb, knowledge.Fact{Type: "geo", Title: "best tacos downtown", Subtitle: "high"})
		assert.Equal(t, "high", kb.GeoKeywords[0].Priority)
	})

	t.Run("policy fact lands in general policies", func(t *testing.T) {
		kb := &knowledge.KnowledgeBase{}
		appendFact(kb, knowledge.Fact{
			Type: "policy", Title: "New Info",
			ExtractedContext: "We offer free refunds within 30 days",
		})
		if assert.NotNil(t, kb.General) {
			assert.Equal(t, []string{"We offer free refunds within 30 days"}, kb.General.Policies)
		}
	})
}

package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	s.calls++
	return s.response, s.err
}

func TestExtractUsesModelResponse(t *testing.T) {
	gen := &stubGenerator{response: `{"type":"team","title":"Marco","subtitle":"Chef","extractedContext":"Chef Marco leads the kitchen"}`}
	x := NewExtractor(gen)

	fact := x.Extract(context.Background(), "Chef Marco leads the kitchen")

	assert.Equal(t, "team", fact.Type)
	assert.Equal(t, "Marco", fact.Title)
	assert.Equal(t, "Chef", fact.Subtitle)
	assert.Equal(t, 1, gen.calls)
}

func TestExtractStripsCodeFences(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"type\":\"geo\",\"title\":\"best pizza in Brooklyn\",\"subtitle\":\"high\",\"extractedContext\":\"\"}\n```"}
	x := NewExtractor(gen)

	fact := x.Extract(context.Background(), "We make the best pizza in Brooklyn")

	assert.Equal(t, "geo", fact.Type)
	assert.Equal(t, "best pizza in Brooklyn", fact.Title)
	// empty extractedContext is backfilled with the raw input
	assert.Equal(t, "We make the best pizza in Brooklyn", fact.ExtractedContext)
}

func TestExtractHeuristicOnModelFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("rate limited")}
	x := NewExtractor(gen)

	fact := x.Extract(context.Background(), "Chef Antonio has 10 years experience")

	assert.Equal(t, "team", fact.Type)
	assert.Contains(t, fact.Title, "Antonio")
	assert.Contains(t, fact.Subtitle, "Chef")
	assert.Equal(t, "Chef Antonio has 10 years experience", fact.ExtractedContext)
}

func TestExtractHeuristicOnUnparseableJSON(t *testing.T) {
	gen := &stubGenerator{response: "Sure! Here is what I found about your business..."}
	x := NewExtractor(gen)

	fact := x.Extract(context.Background(), "Best brunch near the river")

	assert.Equal(t, "geo", fact.Type)
	assert.Equal(t, "Best brunch near the river", fact.Title)
}

func TestExtractHeuristicOnUnknownType(t *testing.T) {
	gen := &stubGenerator{response: `{"type":"menu","title":"x","subtitle":"y"}`}
	x := NewExtractor(gen)

	fact := x.Extract(context.Background(), "We only play 80s disco music.")

	assert.Equal(t, "policy", fact.Type)
	assert.Equal(t, "New Info", fact.Title)
}

func TestExtractNeverFailsOnArbitraryInput(t *testing.T) {
	gen := &stubGenerator{err: errors.New("no api key")}
	x := NewExtractor(gen)

	inputs := []string{
		"",
		"   ",
		"!!!???",
		"a very long policy description that goes on and on well past the fifty character subtitle budget",
	}
	for _, in := range inputs {
		fact := x.Extract(context.Background(), in)
		assert.Contains(t, []string{"team", "geo", "policy"}, fact.Type)
		assert.NotEmpty(t, fact.Title)
		assert.LessOrEqual(t, utf8.RuneCountInString(fact.Subtitle), 50)
	}
}

func TestHeuristicPolicySubtitleTruncation(t *testing.T) {
	long := "We close every second Sunday of the month for a deep clean of the kitchen"
	fact := heuristicExtract(long)

	assert.Equal(t, "policy", fact.Type)
	assert.Equal(t, long[:50], fact.Subtitle)
	assert.Equal(t, long, fact.ExtractedContext)
}

func TestHeuristicTruncationKeepsMultiByteTextValid(t *testing.T) {
	long := strings.Repeat("é", 60) // two bytes per rune, crosses the budget mid-rune if cut on bytes
	fact := heuristicExtract(long)

	assert.Equal(t, "policy", fact.Type)
	assert.True(t, utf8.ValidString(fact.Subtitle))
	assert.Equal(t, 50, utf8.RuneCountInString(fact.Subtitle))
	assert.Equal(t, strings.Repeat("é", 50), fact.Subtitle)
}

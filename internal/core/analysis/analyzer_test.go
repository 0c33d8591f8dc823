package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return s.response, s.err
}

func TestAnalyzeUsesModelResponse(t *testing.T) {
	gen := &stubGenerator{response: `{"sentiment":"negative","topics":["Service","Speed"],"entities":["Marco"]}`}
	a := NewAnalyzer(gen)

	result := a.Analyze(context.Background(), "Marco kept us waiting forever.", 2)

	assert.Equal(t, "negative", result.Sentiment)
	assert.Equal(t, []string{"Service", "Speed"}, result.Topics)
	assert.Equal(t, []string{"Marco"}, result.Entities)
}

func TestAnalyzeStripsCodeFences(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"sentiment\":\"positive\",\"topics\":[\"Food\"],\"entities\":[]}\n```"}
	a := NewAnalyzer(gen)

	result := a.Analyze(context.Background(), "The pasta was divine!", 5)

	assert.Equal(t, "positive", result.Sentiment)
	assert.Equal(t, []string{"Food"}, result.Topics)
}

func TestAnalyzeHeuristicOnModelFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("no api key")}
	a := NewAnalyzer(gen)

	result := a.Analyze(context.Background(), "Waited 45 minutes and the tables were sticky.", 1)

	assert.Equal(t, "negative", result.Sentiment)
	assert.Equal(t, []string{"Cleanliness", "Speed"}, result.Topics)
	assert.Empty(t, result.Entities)
}

func TestAnalyzeHeuristicOnUnknownSentiment(t *testing.T) {
	gen := &stubGenerator{response: `{"sentiment":"ecstatic","topics":[],"entities":[]}`}
	a := NewAnalyzer(gen)

	result := a.Analyze(context.Background(), "Best pizza in town.", 5)

	assert.Equal(t, "positive", result.Sentiment)
	assert.Contains(t, result.Topics, "Food")
}

func TestAnalyzeNormalizesNilSlices(t *testing.T) {
	gen := &stubGenerator{response: `{"sentiment":"neutral"}`}
	a := NewAnalyzer(gen)

	result := a.Analyze(context.Background(), "It was fine.", 3)

	assert.NotNil(t, result.Topics)
	assert.NotNil(t, result.Entities)
}

func TestHeuristicSentimentFollowsRating(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{5, "positive"},
		{4, "positive"},
		{3, "neutral"},
		{2, "negative"},
		{1, "negative"},
	}
	for _, tc := range cases {
		result := heuristicAnalyze("nothing notable", tc.rating)
		assert.Equal(t, tc.want, result.Sentiment, "rating %d", tc.rating)
	}
}

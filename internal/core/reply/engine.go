package reply

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reviewpilot/review-pilot-be/internal/core/knowledge"
	"github.com/reviewpilot/review-pilot-be/internal/core/safety"
	"github.com/reviewpilot/review-pilot-be/internal/core/voice"
	"github.com/reviewpilot/review-pilot-be/internal/shared/utils"
)

// Generator is the slice of the LLM service the engine needs.
type Generator interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Backoff is the retry policy for model calls, injectable so tests run
// without real sleeps.
type Backoff struct {
	Attempts int
	Delay    func(attempt int) time.Duration
	Sleep    func(time.Duration)
}

// DefaultBackoff retries 3 times with linear backoff (attempt × 1s).
func DefaultBackoff() Backoff {
	return Backoff{
		Attempts: 3,
		Delay: func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		},
		Sleep: time.Sleep,
	}
}

// Request carries everything the engine needs to draft one reply. The
// knowledge base, voice and safety settings are read-only inputs fetched by
// the caller.
type Request struct {
	ReviewerName string
	StarRating   int
	Content      string

	KB            *knowledge.KnowledgeBase
	LegacyContext string
	Voice         *voice.BrandVoice
	ToneOverride  string

	CrisisKeywords []string
}

// Result is the sole output contract of the engine.
type Result struct {
	Reply      string `json:"reply"`
	IsFallback bool   `json:"isFallback"`
}

// BlockedError is the one error-shaped outcome: the crisis gate tripped and a
// human has to take over. No model call is made.
type BlockedError struct {
	Code                string `json:"error"`
	Message             string `json:"message"`
	Keyword             string `json:"-"`
	RequiresHumanReview bool   `json:"requiresHumanReview"`
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Engine orchestrates the reply pipeline: crisis gate → prompt assembly →
// model call with retries → deterministic fallback on exhaustion.
type Engine struct {
	llm     Generator
	backoff Backoff
}

func NewEngine(llm Generator) *Engine {
	return &Engine{llm: llm, backoff: DefaultBackoff()}
}

// NewEngineWithBackoff creates an engine with a custom retry policy (for testing)
func NewEngineWithBackoff(llm Generator, backoff Backoff) *Engine {
	return &Engine{llm: llm, backoff: backoff}
}

// GenerateReply runs the pipeline for one review. The only error it ever
// returns is *BlockedError; every model-side failure is downgraded to a
// deterministic fallback reply.
func (e *Engine) GenerateReply(ctx context.Context, req Request) (*Result, error) {
	// The gate runs before any other work, always.
	if gate := safety.Check(req.Content, req.CrisisKeywords); gate.Blocked {
		utils.LogWarn("🚨 crisis keyword detected, blocking AI reply", map[string]interface{}{
			"keyword":  gate.MatchedKeyword,
			"reviewer": req.ReviewerName,
		})
		return nil, &BlockedError{
			Code:                gate.Reason,
			Message:             gate.Message,
			Keyword:             gate.MatchedKeyword,
			RequiresHumanReview: true,
		}
	}

	systemPrompt, userMessage := buildPrompt(req)

	var lastErr error
	for attempt := 1; attempt <= e.backoff.Attempts; attempt++ {
		out, err := e.llm.GenerateResponse(ctx, systemPrompt, userMessage)
		if err == nil {
			return &Result{Reply: strings.TrimSpace(out), IsFallback: false}, nil
		}

		lastErr = err
		utils.LogWarn("model call failed", map[string]interface{}{
			"error":        err.Error(),
			"attempt":      attempt,
			"max_attempts": e.backoff.Attempts,
		})

		if attempt < e.backoff.Attempts {
			e.backoff.Sleep(e.backoff.Delay(attempt))
		}
	}

	utils.LogError("model unavailable after retries, using fallback reply", lastErr, map[string]interface{}{
		"reviewer": req.ReviewerName,
	})

	return &Result{Reply: SelectFallback(req.ReviewerName), IsFallback: true}, nil
}

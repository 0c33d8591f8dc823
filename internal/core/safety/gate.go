package safety

import (
	"fmt"
	"strings"
)

// ReasonCrisisDetected is the fixed reason code surfaced to callers when a
// review trips the crisis gate.
const ReasonCrisisDetected = "CRISIS_DETECTED"

// Settings is the per-business safety configuration, stored as JSONB on the
// business record.
type Settings struct {
	CrisisKeywords []string `json:"crisis_keywords"`
}

// Result is the outcome of a gate check.
type Result struct {
	Blocked        bool
	Reason         string
	Message        string
	MatchedKeyword string
}

// Check scans review content against the configured crisis keywords.
// Matching is case-insensitive plain substring: no stemming, no word
// boundaries. A keyword fragment inside a longer word still matches; this
// strictness is deliberate, crisis handling errs on the side of a human.
// An empty keyword list always clears.
func Check(reviewContent string, crisisKeywords []string) Result {
	if len(crisisKeywords) == 0 {
		return Result{}
	}

	content := strings.ToLower(reviewContent)
	for _, kw := range crisisKeywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(content, strings.ToLower(kw)) {
			return Result{
				Blocked:        true,
				Reason:         ReasonCrisisDetected,
				Message:        fmt.Sprintf("review mentions %q and requires human review before any reply is drafted", kw),
				MatchedKeyword: kw,
			}
		}
	}

	return Result{}
}

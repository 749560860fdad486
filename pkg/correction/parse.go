package correction

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/agentfoundry/maestro/pkg/models"
)

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseFeedback extracts a QAFeedback verdict from raw evaluator output.
// Three-step fallback: direct JSON parse, then a regex-extracted object (for
// markdown-fenced or chatty outputs), then a keyword heuristic. The returned
// bool reports whether structured parsing succeeded.
func ParseFeedback(raw string) (*models.QAFeedback, bool) {
	trimmed := strings.TrimSpace(raw)

	var feedback models.QAFeedback
	if err := json.Unmarshal([]byte(trimmed), &feedback); err == nil {
		return &feedback, true
	}

	if match := jsonObjectPattern.FindString(trimmed); match != "" {
		if err := json.Unmarshal([]byte(match), &feedback); err == nil {
			return &feedback, true
		}
	}

	return heuristicFeedback(trimmed), false
}

// heuristicFeedback validates by keyword scan: a response is valid iff it
// contains none of the failure markers.
func heuristicFeedback(raw string) *models.QAFeedback {
	lowered := strings.ToLower(raw)

	valid := true
	for _, marker := range []string{"invalid", "error", "fail"} {
		if strings.Contains(lowered, marker) {
			valid = false
			break
		}
	}

	feedback := &models.QAFeedback{
		Valid:      valid,
		Confidence: 0.3,
	}
	if !valid {
		feedback.Issues = []models.QAIssue{{
			Category:    models.QAQuality,
			Severity:    "medium",
			Description: "evaluator output could not be parsed; heuristic scan found failure markers",
		}}
	}
	return feedback
}

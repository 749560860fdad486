package evolution

import "strings"

// ImprovementType labels what kind of change an attempt proposes.
type ImprovementType string

const (
	ImprovementBugFix        ImprovementType = "bug_fix"
	ImprovementOptimization  ImprovementType = "optimization"
	ImprovementNewFeature    ImprovementType = "new_feature"
	ImprovementRefactor      ImprovementType = "refactor"
	ImprovementErrorHandling ImprovementType = "error_handling"
)

var errorHandlingMarkers = []string{
	"unhandled", "exception", "error handling", "panic", "crash", "timeout", "retry",
}

var bugFixMarkers = []string{
	"bug", "incorrect", "wrong", "broken", "fails", "failure", "fix",
}

var optimizationMarkers = []string{
	"slow", "performance", "optimiz", "latency", "memory usage", "too many calls", "cost",
}

var refactorMarkers = []string{
	"refactor", "duplicate", "duplication", "restructure", "cleanup", "complexity",
}

// classifyImprovement maps a diagnosis text to an improvement type.
// error_handling wins over bug_fix when both match; unmatched text is a
// new_feature.
func classifyImprovement(diagnosis string) ImprovementType {
	text := strings.ToLower(diagnosis)

	if containsAny(text, errorHandlingMarkers) {
		return ImprovementErrorHandling
	}
	if containsAny(text, bugFixMarkers) {
		return ImprovementBugFix
	}
	if containsAny(text, optimizationMarkers) {
		return ImprovementOptimization
	}
	if containsAny(text, refactorMarkers) {
		return ImprovementRefactor
	}
	return ImprovementNewFeature
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

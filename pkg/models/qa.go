package models

// QACategory identifies a validation dimension checked by the QA evaluator.
type QACategory string

const (
	QACorrectness  QACategory = "correctness"
	QACompleteness QACategory = "completeness"
	QAQuality      QACategory = "quality"
	QASafety       QACategory = "safety"
)

// QAIssue is one problem found by the QA evaluator.
type QAIssue struct {
	Category    QACategory `json:"category"`
	Severity    string     `json:"severity"`
	Description string     `json:"description"`
	Line        int        `json:"line,omitempty"`
	Suggestion  string     `json:"suggestion,omitempty"`
}

// QAFeedback is the structured validation verdict for one attempt.
type QAFeedback struct {
	Valid             bool         `json:"valid"`
	Issues            []QAIssue    `json:"issues,omitempty"`
	Suggestions       []string     `json:"suggestions,omitempty"`
	Confidence        float64      `json:"confidence"`
	CategoriesChecked []QACategory `json:"categories_checked,omitempty"`
}

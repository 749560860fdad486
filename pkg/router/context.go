package router

import "strings"

// stripFraction runs the context-quality linter over a message list and
// returns the fraction of tokens the linter would strip. Stripped messages
// are exact duplicates of an earlier message and messages with no
// alphanumeric content.
func stripFraction(messages []string) float64 {
	total := 0
	stripped := 0
	seen := make(map[string]bool, len(messages))

	for _, msg := range messages {
		tokens := len(strings.Fields(msg))
		total += tokens

		normalized := strings.TrimSpace(strings.ToLower(msg))
		if seen[normalized] || !hasAlnum(normalized) {
			stripped += tokens
			continue
		}
		seen[normalized] = true
	}

	if total == 0 {
		return 0
	}
	return float64(stripped) / float64(total)
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}

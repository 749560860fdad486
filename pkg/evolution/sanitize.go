package evolution

import (
	"fmt"
	"strings"
)

// sanitizeComponent maps an arbitrary identifier to a safe filesystem path
// component: characters outside [A-Za-z0-9_-] become underscores. Rejects
// names that would be empty or reduce to traversal sequences.
func sanitizeComponent(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty path component")
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	if strings.Trim(out, "_-") == "" {
		return "", fmt.Errorf("path component %q has no usable characters", name)
	}
	return out, nil
}

package masking

import (
	"encoding/json"
	"strings"
)

// sensitiveKeys are JSON field names whose values are always replaced,
// regardless of the value's shape. Matching is case-insensitive on the
// normalized key (underscores and dashes stripped).
var sensitiveKeys = map[string]bool{
	"apikey":        true,
	"password":      true,
	"passphrase":    true,
	"token":         true,
	"accesstoken":   true,
	"refreshtoken":  true,
	"secret":        true,
	"secretkey":     true,
	"privatekey":    true,
	"walletkey":     true,
	"signerkey":     true,
	"authorization": true,
	"cardnumber":    true,
	"cvv":           true,
}

// JSONCredentialMasker masks values of credential-named fields in JSON
// documents. Unlike regex patterns it walks the parsed structure, so it
// catches short secrets and nested objects that pattern matching misses.
type JSONCredentialMasker struct{}

func (m *JSONCredentialMasker) Name() string { return "json_credentials" }

func (m *JSONCredentialMasker) AppliesTo(data string) bool {
	trimmed := strings.TrimSpace(data)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

func (m *JSONCredentialMasker) Mask(data string) string {
	var doc interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return data
	}

	masked := maskValue(doc)

	out, err := json.Marshal(masked)
	if err != nil {
		return data
	}
	return string(out)
}

func maskValue(v interface{}) interface{} {
	switch typed := v.(type) {
	case map[string]interface{}:
		for k, val := range typed {
			if isSensitiveKey(k) {
				typed[k] = "__MASKED__"
				continue
			}
			typed[k] = maskValue(val)
		}
		return typed
	case []interface{}:
		for i, item := range typed {
			typed[i] = maskValue(item)
		}
		return typed
	default:
		return v
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(key)
	normalized = strings.ReplaceAll(normalized, "_", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	return sensitiveKeys[normalized]
}

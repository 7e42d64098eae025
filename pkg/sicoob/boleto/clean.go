package boleto

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// CleanPayload drops nil values, blank strings and containers left empty after cleaning.
// It recurses into nested objects and arrays. Zero numbers and false are kept.
func CleanPayload(payload map[string]any) map[string]any {
	cleaned := make(map[string]any, len(payload))
	for key, value := range payload {
		if v, ok := cleanValue(value); ok {
			cleaned[key] = v
		}
	}
	return cleaned
}

func cleanValue(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, false
		}
		return v, true
	case map[string]any:
		cleaned := CleanPayload(v)
		if len(cleaned) == 0 {
			return nil, false
		}
		return cleaned, true
	case []any:
		cleaned := make([]any, 0, len(v))
		for _, item := range v {
			if c, ok := cleanValue(item); ok {
				cleaned = append(cleaned, c)
			}
		}
		if len(cleaned) == 0 {
			return nil, false
		}
		return cleaned, true
	default:
		return v, true
	}
}

// toPayload converts a typed request into a generic JSON object. Numbers keep their
// textual form so monetary amounts are not rounded through float64.
func toPayload(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode boleto payload: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	payload := map[string]any{}
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode boleto payload: %w", err)
	}
	return payload, nil
}

func withoutFields(payload map[string]any, fields []string) map[string]any {
	stripped := make(map[string]any, len(payload))
	for key, value := range payload {
		stripped[key] = value
	}
	for _, field := range fields {
		delete(stripped, field)
	}
	return stripped
}

package util

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
)

// JSONDocument re-encodes v as a generic JSON object, the shape stored in jsonb columns.
// It returns nil when v does not encode to an object.
func JSONDocument(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc
}

func StructToJSONReader(data any) io.Reader {
	return bytes.NewReader([]byte(StructToJSON(data)))
}

func StructToJSON(data any) string {
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(raw)
}

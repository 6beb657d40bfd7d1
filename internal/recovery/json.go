package recovery

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-bluebook/models"
)

// PlainJSON is the hypothesis name reported for bodies that needed no
// recovery because they already were JSON.
const PlainJSON = "plain-json"

// AsPlainJSON reports whether text is already a JSON object or array and, if
// so, returns it as structured plaintext.
func AsPlainJSON(text string) (models.RecoveredPlaintext, bool) {
	structured := parseStructured(text)
	if structured == nil {
		return models.RecoveredPlaintext{}, false
	}
	return models.RecoveredPlaintext{
		Hypothesis: PlainJSON,
		Text:       string(structured),
		Structured: structured,
	}, true
}

// parseStructured returns text compacted as JSON when it is a JSON object or
// array, nil otherwise. Bare JSON scalars stay plain text.
func parseStructured(text string) json.RawMessage {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(trimmed)); err != nil {
		return nil
	}
	return buf.Bytes()
}

package models

import "encoding/json"

// ResourceDescriptor is one exam entry of the resource listing.
type ResourceDescriptor struct {
	Module1 string `json:"module1"`
	Module2 string `json:"module2"`

	// Value is the human-readable test name, used as the derivation label.
	Value string `json:"value"`
	Date  string `json:"date"`
	VIP   int    `json:"vip"`
}

// ModuleIDs returns the non-empty module identifiers of d in order.
func (d ResourceDescriptor) ModuleIDs() []string {
	ids := make([]string, 0, 2)
	for _, id := range []string{d.Module1, d.Module2} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ResourceIndex maps a category name ("Math", "English", ...) to its exams.
type ResourceIndex map[string][]ResourceDescriptor

// RecoveredPlaintext is the result of a successful recovery.
type RecoveredPlaintext struct {
	// Hypothesis names the transform that produced Text.
	Hypothesis string `json:"hypothesis"`

	Text string `json:"text"`

	// Structured is set when Text is a JSON object or array.
	Structured json.RawMessage `json:"structured,omitempty"`
}

// IsStructured reports whether the plaintext parsed as JSON.
func (p RecoveredPlaintext) IsStructured() bool {
	return len(p.Structured) > 0
}

// FetchResult is the outcome of fetching one exam.
type FetchResult struct {
	ResourceID string `json:"resource_id"`
	Label      string `json:"label"`

	// FellBack is true when the Value header carried the fallback token.
	FellBack bool `json:"fell_back,omitempty"`

	// Raw is the body exactly as the upstream returned it.
	Raw json.RawMessage `json:"raw,omitempty"`

	// Plaintext is nil when nothing could be recovered from Raw.
	Plaintext *RecoveredPlaintext `json:"plaintext,omitempty"`
}

// ExamFetch is one entry produced by the bulk exam fetcher.
type ExamFetch struct {
	Category string       `json:"category"`
	Index    int          `json:"index"`
	Module   string       `json:"module"`
	Result   *FetchResult `json:"result,omitempty"`
	Err      string       `json:"error,omitempty"`
}

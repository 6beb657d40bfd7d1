package models

import "encoding/json"

// ProxyRequest is the envelope accepted by the proxy collaborator: which
// upstream endpoint to call, with which method, body and extra headers.
type ProxyRequest struct {
	// Endpoint is the path on the upstream API, e.g. "/getexam/42". Required.
	Endpoint string `json:"endpoint"`

	// Method defaults to GET when empty.
	Method string `json:"method,omitempty"`

	// Data is sent as a JSON body for every method except GET.
	Data any `json:"data,omitempty"`

	// Headers are merged over the default browser header profile.
	Headers map[string]string `json:"headers,omitempty"`
}

// ProxyResponse is what the proxy collaborator returns for one upstream call.
//
// Data is the upstream body: the parsed JSON value when the body was JSON,
// otherwise the raw body encoded as a JSON string. Error is set only when the
// upstream answered with a non-2xx status or could not be reached.
type ProxyResponse struct {
	Error      string            `json:"error,omitempty"`
	Data       json.RawMessage   `json:"data,omitempty"`
	Status     int               `json:"status"`
	StatusText string            `json:"statusText,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// IsSuccess reports whether Status is 2xx.
func (r ProxyResponse) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// DataString returns Data as text: the decoded string when Data is a JSON
// string, otherwise the raw JSON.
func (r ProxyResponse) DataString() string {
	if len(r.Data) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(r.Data, &s); err == nil {
		return s
	}
	return string(r.Data)
}

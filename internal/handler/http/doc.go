// Package http implements the HTTP surface of the go-bluebook proxy.
//
// It exposes the proxy collaborator route (POST /api/bluebook) that forwards
// an envelope to the Bluebook API with the browser header profile, and the
// tool routes backing the value generator and decrypt pages. Request tracing
// and access logging run as middleware before the service layer.
package http

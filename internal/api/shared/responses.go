// Package shared contains response envelopes, request decoding and context
// helpers used by every API handler.
package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Envelope statuses carried by every response body.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Envelope is the uniform success wrapper: the payload's fields merged with
// a status marker into one flat JSON object.
type Envelope struct {
	Payload any
	Status  string
}

// OK wraps a payload in a success envelope.
func OK(payload any) Envelope {
	return Envelope{Payload: payload, Status: StatusOK}
}

// MarshalJSON serializes the payload's fields and the status marker as a
// single flat JSON object.
func (e Envelope) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}

	if e.Payload != nil {
		raw, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("envelope payload must serialize to a JSON object: %w", err)
		}
	}

	status, err := json.Marshal(e.Status)
	if err != nil {
		return nil, err
	}
	fields["status"] = status

	return json.Marshal(fields)
}

// ErrorResponse is the uniform error envelope. Message is a string for most
// errors and a per-field list for validation failures.
type ErrorResponse struct {
	Message any    `json:"message"`
	Status  string `json:"status"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondOK writes the payload wrapped in the success envelope with HTTP 200.
func RespondOK(w http.ResponseWriter, r *http.Request, payload any) {
	RespondWithJSON(w, r, http.StatusOK, OK(payload))
}

// RespondWithError writes the uniform error envelope with the given HTTP
// status code. Message may be a string or a per-field error list.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message any) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Message: message,
		Status:  StatusError,
	})
}

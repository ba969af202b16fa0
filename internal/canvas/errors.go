package canvas

import (
	"encoding/json"
	"fmt"
)

// APIError is the single structured error the client produces. It is
// constructed only at the transport boundary and carries the upstream
// HTTP status code (500 when no response was received at all) and the
// best message the response body offered.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("canvas API error (%d): %s", e.StatusCode, e.Message)
}

// messageExtractor inspects a decoded error body and reports a message
// if the body matches the shape it knows about.
type messageExtractor func(body map[string]any) (string, bool)

// Extraction strategies in priority order: Canvas responds with several
// error shapes depending on the endpoint and failure mode.
var messageExtractors = []messageExtractor{
	errorsObjectMessage,
	errorsFirstElement,
	topLevelMessage,
}

// extractErrorMessage derives a human-readable message from an error
// response body, falling back to the transport-level description when
// the body is absent, unparseable, or matches no known shape.
func extractErrorMessage(raw []byte, fallback string) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	for _, extract := range messageExtractors {
		if msg, ok := extract(body); ok {
			return msg
		}
	}
	return fallback
}

// errorsObjectMessage handles {"errors": {"message": "..."}}.
func errorsObjectMessage(body map[string]any) (string, bool) {
	obj, ok := body["errors"].(map[string]any)
	if !ok {
		return "", false
	}
	msg, ok := obj["message"].(string)
	return msg, ok
}

// errorsFirstElement handles {"errors": ["...", ...]}.
func errorsFirstElement(body map[string]any) (string, bool) {
	list, ok := body["errors"].([]any)
	if !ok || len(list) == 0 {
		return "", false
	}
	if s, ok := list[0].(string); ok {
		return s, true
	}
	return fmt.Sprintf("%v", list[0]), true
}

// topLevelMessage handles {"message": "..."}.
func topLevelMessage(body map[string]any) (string, bool) {
	msg, ok := body["message"].(string)
	return msg, ok
}

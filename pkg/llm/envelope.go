package llm

import (
	"encoding/json"
	"strings"
)

// Envelope is the structured JSON the dialogue model is prompted to return.
// Malformed JSON is tolerated: the raw text becomes the assistant message
// and the gathered context is left unchanged.
type Envelope struct {
	Message      string         `json:"message"`
	Gathered     map[string]any `json:"gathered"`
	Progress     int            `json:"progress"`
	ReadyForSpec bool           `json:"ready_for_spec"`
	NextCategory string         `json:"next_category"`
}

// ParseEnvelope extracts an Envelope from model output. Returns ok=false
// when the output is not a usable JSON envelope; callers fall back to the
// raw text.
func ParseEnvelope(raw string) (Envelope, bool) {
	text := strings.TrimSpace(raw)

	// Models wrap JSON in markdown fences often enough to strip them here.
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if !strings.HasPrefix(text, "{") {
		return Envelope{}, false
	}

	var env Envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return Envelope{}, false
	}
	if env.Message == "" {
		return Envelope{}, false
	}
	return env, true
}

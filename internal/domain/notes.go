package domain

import "encoding/json"

// notesEnvelope is the canonical persisted shape for quote notes.
type notesEnvelope struct {
	Text string `json:"text"`
}

// DecodeNotes reads a stored notes value that may be either a plain string
// or a JSON envelope {"text": ...}. Older rows used the plain form, so the
// read path stays permissive indefinitely: a JSON object with a text field
// yields that text, a JSON value without one yields empty, and anything that
// fails to parse is taken verbatim.
func DecodeNotes(stored string) string {
	if stored == "" {
		return ""
	}

	var v any
	if err := json.Unmarshal([]byte(stored), &v); err != nil {
		return stored
	}

	if obj, ok := v.(map[string]any); ok {
		if text, ok := obj["text"].(string); ok {
			return text
		}
	}

	return ""
}

// EncodeNotes writes notes in the canonical envelope shape.
func EncodeNotes(text string) string {
	b, err := json.Marshal(notesEnvelope{Text: text})
	if err != nil {
		return text
	}

	return string(b)
}

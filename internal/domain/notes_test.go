package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeNotes(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{
			name:   "envelope shape",
			stored: `{"text":"Hello"}`,
			want:   "Hello",
		},
		{
			name:   "plain string",
			stored: "Hello",
			want:   "Hello",
		},
		{
			name:   "empty",
			stored: "",
			want:   "",
		},
		{
			name:   "valid JSON without text field",
			stored: `{"body":"x"}`,
			want:   "",
		},
		{
			name:   "plain text that resembles JSON",
			stored: `{"text": broken`,
			want:   `{"text": broken`,
		},
		{
			name:   "multiline plain text",
			stored: "line one\nline two",
			want:   "line one\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeNotes(tt.stored))
		})
	}
}

func TestEncodeNotes_RoundTrip(t *testing.T) {
	for _, text := range []string{"Hello", "", "line one\nline two", `with "quotes"`} {
		assert.Equal(t, text, DecodeNotes(EncodeNotes(text)))
	}
}

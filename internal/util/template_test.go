package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		state    map[string]any
		expected string
	}{
		{
			name:     "no markers fast path",
			text:     "plain text",
			state:    map[string]any{"unused": 1},
			expected: "plain text",
		},
		{
			name:     "simple substitution",
			text:     "Hello {{.name}}",
			state:    map[string]any{"name": "World"},
			expected: "Hello World",
		},
		{
			name:     "upper helper",
			text:     "{{upper .name}}",
			state:    map[string]any{"name": "go"},
			expected: "GO",
		},
		{
			name:     "join helper",
			text:     `{{join ", " .items}}`,
			state:    map[string]any{"items": []any{1, 2, 3}},
			expected: "1, 2, 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderTemplate(tt.text, tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderTemplate_ParseError(t *testing.T) {
	_, err := RenderTemplate("{{.broken", nil)
	assert.Error(t, err)
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

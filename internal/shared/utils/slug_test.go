package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already lowercase", "news", "news"},
		{"punctuation collapsed", "Hello, World!", "hello-world"},
		{"multiple spaces", "a   b", "a-b"},
		{"leading and trailing junk", "  --Breaking News-- ", "breaking-news"},
		{"numbers kept", "Top 5 Posts of 2024", "top-5-posts-of-2024"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

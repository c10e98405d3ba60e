package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_Render(t *testing.T) {
	m := NewMarkdown()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"paragraph", "<p>Hi</p>", "Hi"},
		{"bold", "<p><strong>bold</strong> text</p>", "**bold** text"},
		{"link", `<p><a href="https://example.com">site</a></p>`, "[site](https://example.com)"},
		{"heading", "<h1>Title</h1>", "# Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Render(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(got))
		})
	}
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=abc123&t=30s", "abc123"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://m.youtube.com/watch?v=xyz789", "xyz789"},
		{"https://vimeo.com/12345", ""},
		{"not a url", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractYouTubeID(tc.url), "url: %s", tc.url)
	}
}

package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectImageFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, "jpg"},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, "png"},
		{"gif87a", []byte("GIF87a trailing"), "gif"},
		{"gif89a", []byte("GIF89a trailing"), "gif"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), "webp"},
		{"svg is rejected", []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>"), ""},
		{"plain text", []byte("hello"), ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, detectImageFormat(tt.data))
		})
	}
}

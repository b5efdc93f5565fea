package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"time"

	"github.com/rs/zerolog"

	"brandhub/api/internal/config"
	"brandhub/api/internal/ids"
	"brandhub/api/internal/storage"
)

var (
	ErrLogoTooLarge    = errors.New("logo file too large")
	ErrUnsupportedLogo = errors.New("unsupported logo format")
)

const maxLogoSize = 10 << 20 // 10MB

var logoContentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

type LogoService struct {
	store *storage.ObjectStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewLogoService(store *storage.ObjectStore, cfg *config.AppConfig, log zerolog.Logger) *LogoService {
	return &LogoService{
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

// Upload stores a brand logo image and returns its public URL, for use as
// the logo field of an image-typed entry. The format is decided by the file's
// magic bytes, not its declared name.
func (s *LogoService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	if header == nil || file == nil {
		return "", errors.New("invalid file payload")
	}
	if header.Size > maxLogoSize {
		return "", ErrLogoTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, maxLogoSize+1))
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if len(data) > maxLogoSize {
		return "", ErrLogoTooLarge
	}

	format := detectImageFormat(data)
	if format == "" {
		return "", ErrUnsupportedLogo
	}

	objectKey := path.Join("logos",
		time.Now().UTC().Format("2006/01"),
		fmt.Sprintf("%s.%s", ids.New(), format))

	if err := s.store.Put(ctx, objectKey, bytes.NewReader(data), int64(len(data)), logoContentTypes[format]); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	url := s.store.PublicURL(objectKey)
	s.log.Debug().Str("object_key", objectKey).Str("format", format).Msg("logo uploaded")
	return url, nil
}

func detectImageFormat(data []byte) string {
	switch {
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xFF, 0xD8, 0xFF}):
		return "jpg"
	case len(data) >= 8 && bytes.Equal(data[:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return "png"
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return "gif"
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp"
	default:
		return ""
	}
}

package capture

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
)

const (
	JPEGQuality   = 80
	jpegURIPrefix = "data:image/jpeg;base64,"
	MaxImageBytes = 8 << 20
	// MaxImagePixels caps width*height so a small upload cannot declare a huge frame.
	MaxImagePixels = 40_000_000
)

// EncodeDataURI renders img as a base64 JPEG data URI at JPEGQuality.
func EncodeDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return jpegURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURI accepts a base64 JPEG or PNG data URI.
func DecodeDataURI(uri string) (image.Image, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("%w: not a base64 image data URI", appErrors.ErrInvalidImage)
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes {
		return nil, fmt.Errorf("%w: image larger than %d bytes", appErrors.ErrInvalidImage, MaxImageBytes)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInvalidImage, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", appErrors.ErrInvalidImage, cfg.Width, cfg.Height, MaxImagePixels)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInvalidImage, err)
	}
	return img, nil
}

// StillDevice is a camera that always shows the same picture. The server uses
// it to push uploaded frames through the same widget flow as a live camera.
type StillDevice struct {
	Image image.Image
}

func (d StillDevice) Open(ctx context.Context, facing Facing) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.Image == nil {
		return nil, fmt.Errorf("no frame for %s camera", facing)
	}
	return &stillStream{img: d.Image}, nil
}

type stillStream struct {
	img     image.Image
	stopped bool
}

func (s *stillStream) Frame() (image.Image, error) {
	if s.stopped {
		return nil, fmt.Errorf("stream stopped")
	}
	return s.img, nil
}

func (s *stillStream) Stop() { s.stopped = true }

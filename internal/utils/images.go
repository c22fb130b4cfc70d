package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxImageWidth   = 1200
	jpegQuality     = 80
	mimeJPEG        = "image/jpeg"
	mimePNG         = "image/png"
	mimeWebP        = "image/webp"
	ProcessedExt    = "jpeg"
	ProcessedMime   = "image/jpeg"
)

var allowedImageMimes = map[string]struct{}{
	mimeJPEG: {},
	mimePNG:  {},
	mimeWebP: {},
}

// SniffImageMime detects the real content type of an upload (the client's
// declared Content-Type is not trusted) and rejects non-image formats.
func SniffImageMime(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if _, ok := allowedImageMimes[mt.String()]; !ok {
		return "", fmt.Errorf("unsupported image format %q (only JPEG, PNG and WebP)", mt.String())
	}
	return mt.String(), nil
}

// ProcessImage decodes an uploaded image, downscales it to at most
// maxImageWidth pixels wide (never enlarging) and re-encodes it as JPEG.
func ProcessImage(data []byte) ([]byte, error) {
	if _, err := SniffImageMime(data); err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxImageWidth {
		ratio := float64(maxImageWidth) / float64(bounds.Dx())
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, int(float64(bounds.Dy())*ratio)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return out.Bytes(), nil
}

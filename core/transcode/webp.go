// Package transcode implements the Transcoder interface.
// It decodes a source image, resizes it into the requested box and
// re-encodes it as WebP at a fixed quality.
package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gaurav-prasanna/webpify/core"
)

// MaxDimension is the largest width or height a WebP image can have.
const MaxDimension = 16383

var (
	// ErrInvalidWidth is returned for a box width that is not a positive integer.
	ErrInvalidWidth = errors.New("expected positive integer for width")

	// ErrTooLarge is returned when the resized image would exceed MaxDimension.
	ErrTooLarge = errors.New("processed image is too large for the WebP format")

	// ErrUnsupportedFit is returned for a fit policy other than FitInside.
	ErrUnsupportedFit = errors.New("unsupported fit policy")
)

// WebPTranscoder resizes images and encodes them as WebP.
type WebPTranscoder struct {
	Quality float32
}

// New creates a WebPTranscoder using the fixed output quality.
func New() *WebPTranscoder {
	return &WebPTranscoder{Quality: core.Quality}
}

// Transcode reads src, fits it inside the box described by opts and
// returns the WebP encoding.
func (t *WebPTranscoder) Transcode(ctx context.Context, src string, opts core.ResizeOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, opts.Width)
	}
	if opts.Width > MaxDimension {
		return nil, fmt.Errorf("%w: width %d exceeds %d", ErrTooLarge, opts.Width, MaxDimension)
	}

	img, err := imaging.Open(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", src, err)
	}

	resized, err := Resize(img, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: t.Quality}); err != nil {
		return nil, fmt.Errorf("encoding webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Resize applies the fit policy of opts to img. The target size is
// validated before any pixel buffer is allocated.
func Resize(img image.Image, opts core.ResizeOptions) (image.Image, error) {
	w, h, err := TargetSize(img.Bounds(), opts)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}

// TargetSize returns the output dimensions for an image with the given
// bounds. For FitInside only the box width is constrained: the result is
// exactly opts.Width wide and the height follows the aspect ratio, so
// smaller images are enlarged.
func TargetSize(bounds image.Rectangle, opts core.ResizeOptions) (int, int, error) {
	if opts.Fit != core.FitInside {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnsupportedFit, opts.Fit)
	}

	if opts.Width <= 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidWidth, opts.Width)
	}
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, fmt.Errorf("empty source image %dx%d", srcW, srcH)
	}

	// Same rounding as imaging.Resize with a zero height.
	h := int(float64(opts.Width)*float64(srcH)/float64(srcW) + 0.5)
	if h < 1 {
		h = 1
	}
	if opts.Width > MaxDimension || h > MaxDimension {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %d", ErrTooLarge, opts.Width, h, MaxDimension)
	}
	return opts.Width, h, nil
}

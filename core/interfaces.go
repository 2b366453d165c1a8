// Package core defines the pipeline interfaces for webpify.
// Each stage of the pipeline is a clean, testable interface:
// scan → transcode → write.
package core

import "context"

const (
	// InputMarker selects input files. It is matched anywhere in the
	// name, not only as a suffix.
	InputMarker = ".jpg"

	// OutputExtension is appended to every generated file name.
	OutputExtension = ".webp"

	// MobileTag and DesktopTag distinguish the two renditions of an image.
	MobileTag  = "-m"
	DesktopTag = ""

	// Quality is the fixed WebP encoding quality.
	Quality = 70
)

// Fit is a resize constraint policy.
type Fit string

// FitInside scales the image so it fits entirely within the box,
// preserving aspect ratio, without cropping.
const FitInside Fit = "inside"

// ResizeOptions describes the bounding box requested from the codec.
type ResizeOptions struct {
	Width int
	Fit   Fit
}

// Result is the outcome of a single (image, variant) attempt.
type Result struct {
	Image    string
	Tag      string
	Output   string
	BoxWidth int
	Err      error
}

// OK reports whether the attempt succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Scanner lists the input images of a directory.
type Scanner interface {
	Scan(dir string) ([]string, error)
}

// Transcoder reads an image, resizes it and returns the encoded output.
type Transcoder interface {
	Transcode(ctx context.Context, src string, opts ResizeOptions) ([]byte, error)
}

// Writer persists an encoded rendition next to its source.
type Writer interface {
	// Path returns where the rendition of image with the given tag is written.
	Path(image, tag string) string
	Write(image, tag string, data []byte) (string, error)
}

// Package output handles file naming and writing for webpify outputs.
// A rendition is named after the text before the first dot of its source,
// followed by the variant tag (e.g., photo.jpg → photo-m.webp, photo.webp).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/webpify/core"
)

// Writer writes encoded renditions to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Path returns the output path for the rendition of image with tag.
func (w *Writer) Path(image, tag string) string {
	return filepath.Join(w.OutputDir, FormatName(image, tag))
}

// Write creates or overwrites the rendition file and returns its path.
// Two sources sharing a prefix before their first dot overwrite each other.
func (w *Writer) Write(image, tag string, data []byte) (string, error) {
	path := w.Path(image, tag)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// FormatName derives a rendition file name: the text before the first
// dot of image, then tag, then the output extension. A name without a
// dot is used whole.
func FormatName(image, tag string) string {
	parts := strings.Split(image, ".")
	return parts[0] + tag + core.OutputExtension
}

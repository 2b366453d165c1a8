// Package scan implements the Scanner interface.
// It lists a single directory (non-recursive) and keeps the entries whose
// name contains the input marker.
package scan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gaurav-prasanna/webpify/core"
)

// ErrDirNotFound is returned when the directory to scan does not exist.
var ErrDirNotFound = errors.New("directory does not exist")

// DirScanner filters directory entries by a name marker.
type DirScanner struct {
	Marker string
}

// New creates a DirScanner matching the default input marker.
func New() *DirScanner {
	return &DirScanner{Marker: core.InputMarker}
}

// Scan returns the names of the entries in dir that contain s.Marker,
// in directory listing order.
func (s *DirScanner) Scan(dir string) ([]string, error) {
	if err := CheckDir(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return Filter(names, s.Marker), nil
}

// Filter keeps the names containing marker anywhere, preserving order.
// "a.jpg.bak" matches ".jpg" as well as "a.jpg" does.
func Filter(names []string, marker string) []string {
	var out []string
	for _, name := range names {
		if strings.Contains(name, marker) {
			out = append(out, name)
		}
	}
	return out
}

// CheckDir fails with ErrDirNotFound unless dir exists and is a directory.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return fmt.Errorf("accessing directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, dir)
	}
	return nil
}

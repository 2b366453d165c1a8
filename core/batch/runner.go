// Package batch orchestrates the pipeline over a whole directory:
// scan → (transcode → write) for every image and variant.
//
// Images and their variants are processed strictly one after the other.
// A failed variant is logged and skipped; it never stops the batch.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gaurav-prasanna/webpify/core"
	"github.com/gaurav-prasanna/webpify/core/scan"
	"github.com/gaurav-prasanna/webpify/core/transcode"
	"github.com/rs/zerolog"
)

// Fatal startup errors. Nothing has been written when Run returns one.
var (
	ErrDirNotFound = scan.ErrDirNotFound
	ErrNoImages    = errors.New("no images found in the directory")
)

// Runner wires the pipeline stages together.
type Runner struct {
	Scanner    core.Scanner
	Transcoder core.Transcoder
	Writer     core.Writer
	Log        zerolog.Logger
}

// Summary reports what a run attempted.
type Summary struct {
	Images    int
	Attempted int
	Failed    int
	Results   []core.Result
}

// Run converts every image found in cfg.Dir. It only returns an error for
// the fatal startup conditions; per-variant failures are logged and
// recorded in the summary.
func (r *Runner) Run(ctx context.Context, cfg core.Config) (Summary, error) {
	if err := scan.CheckDir(cfg.Dir); err != nil {
		return Summary{}, err
	}

	images, err := r.Scanner.Scan(cfg.Dir)
	if err != nil {
		return Summary{}, fmt.Errorf("scanning %s: %w", cfg.Dir, err)
	}
	if len(images) == 0 {
		return Summary{}, ErrNoImages
	}

	variants := cfg.Variants()
	summary := Summary{
		Images:  len(images),
		Results: make([]core.Result, 0, len(images)*len(variants)),
	}

	for _, image := range images {
		for _, v := range variants {
			res := r.processVariant(ctx, cfg.Dir, image, v)
			summary.Attempted++
			summary.Results = append(summary.Results, res)

			if !res.OK() {
				summary.Failed++
				r.Log.Error().Err(res.Err).Str("image", image).Str("variant", v.Tag).
					Msgf("Error processing %s", image)
				continue
			}
			r.Log.Info().Str("image", image).Str("variant", v.Tag).
				Str("output", res.Output).Int("width", res.BoxWidth).
				Msgf("Optimized %s to %s", image, filepath.Base(res.Output))
		}
	}

	if summary.Failed > 0 {
		r.Log.Warn().Msgf("%d/%d variants failed", summary.Failed, summary.Attempted)
	}
	return summary, nil
}

// processVariant runs one image through transcode and write.
func (r *Runner) processVariant(ctx context.Context, dir, image string, v core.Variant) core.Result {
	res := core.Result{Image: image, Tag: v.Tag, Output: r.Writer.Path(image, v.Tag)}

	// 1. Resize box
	width, err := transcode.BoxWidth(v.Width)
	if err != nil {
		res.Err = fmt.Errorf("width: %w", err)
		return res
	}
	res.BoxWidth = width

	// 2. Decode, resize, encode
	data, err := r.Transcoder.Transcode(ctx, filepath.Join(dir, image), core.ResizeOptions{
		Width: width,
		Fit:   core.FitInside,
	})
	if err != nil {
		res.Err = fmt.Errorf("transcode: %w", err)
		return res
	}

	// 3. Write
	path, err := r.Writer.Write(image, v.Tag, data)
	if err != nil {
		res.Err = fmt.Errorf("write: %w", err)
		return res
	}
	res.Output = path
	return res
}

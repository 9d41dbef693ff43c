// Package batch segments many sprite sheets concurrently. Each sheet is an
// independent CPU-bound job; a bounded worker pool keeps memory use in check
// while saturating the cores.
package batch

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/vmaltsev/spritescene/internal/config"
	"github.com/vmaltsev/spritescene/internal/segment"
	"github.com/vmaltsev/spritescene/internal/system"
)

// Job is one sprite sheet to segment.
type Job struct {
	Name    string
	Image   image.Image
	Rows    int
	Columns int
}

// Result holds the segmented frames of one job.
type Result struct {
	Name        string
	Frames      []*image.RGBA
	FrameWidth  int
	FrameHeight int
}

// Processor runs segmentation jobs on a worker pool.
type Processor struct {
	segmenter *segment.Segmenter
	workers   int
}

// NewProcessor creates a processor. A non-positive Workers setting in cfg
// auto-sizes the pool from the host.
func NewProcessor(cfg *config.Config) *Processor {
	workers := cfg.Workers
	if workers < 1 {
		workers = system.Workers()
	}

	return &Processor{
		segmenter: segment.NewSegmenter(cfg),
		workers:   workers,
	}
}

// Run segments all jobs and returns results in job order. The first failing
// job cancels the remaining ones and its error is returned.
func (p *Processor) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			frames, width, height, err := p.segmenter.Segment(job.Image, job.Rows, job.Columns)
			if err != nil {
				return fmt.Errorf("segmenting %q: %w", job.Name, err)
			}

			results[i] = Result{
				Name:        job.Name,
				Frames:      frames,
				FrameWidth:  width,
				FrameHeight: height,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

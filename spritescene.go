// Package spritescene turns AI-generated sprite sheets and background
// analysis into the building blocks of a playable 2D platformer: cleaned
// sprites, segmented animation frames, rebuilt sheets, and a validated scene
// description.
package spritescene

import (
	"context"
	"image"
	"sync"

	"github.com/vmaltsev/spritescene/internal/batch"
	"github.com/vmaltsev/spritescene/internal/config"
	"github.com/vmaltsev/spritescene/internal/scene"
	"github.com/vmaltsev/spritescene/internal/segment"
	"github.com/vmaltsev/spritescene/internal/sprite"
	"github.com/vmaltsev/spritescene/internal/system"
)

// Config holds the pipeline tuning parameters.
type Config = config.Config

// DefaultConfig returns the production pipeline configuration.
func DefaultConfig() *Config { return config.Default() }

// Scene description types, serialized as YAML by WriteScene.
type (
	Scene      = scene.Scene
	Platform   = scene.Platform
	Gap        = scene.Gap
	SpawnPoint = scene.SpawnPoint
	Analysis   = scene.Analysis
	Character  = scene.Character
	Player     = scene.Player
)

// Sheet assembly metadata.
type (
	SheetMeta     = sprite.SheetMeta
	FramePosition = sprite.FramePosition
)

// Batch job types.
type (
	Job    = batch.Job
	Result = batch.Result
)

// WriteScene serializes a scene description to a YAML file.
func WriteScene(s *Scene, path string) error { return scene.Write(s, path) }

// ReadScene loads a scene description from a YAML file.
func ReadScene(path string) (*Scene, error) { return scene.Read(path) }

// Frames is the result of segmenting one sprite sheet: equal-sized RGBA
// frames in animation playback order.
type Frames struct {
	Images      []*image.RGBA
	FrameWidth  int
	FrameHeight int
}

// Pipeline wires the processing stages together. Construct one per
// configuration and share it freely: every call owns its own working data.
type Pipeline struct {
	segmenter *segment.Segmenter
	remover   *sprite.Remover
	sheets    *sprite.SheetBuilder
	scenes    *scene.Builder
	processor *batch.Processor
}

// Raised once per process: batch runs open many sheets at a time.
var initLimits sync.Once

// New creates a pipeline. A nil cfg selects the defaults.
func New(cfg *Config) *Pipeline {
	initLimits.Do(system.InitResourceLimits)
	if cfg == nil {
		cfg = config.Default()
	}
	return &Pipeline{
		segmenter: segment.NewSegmenter(cfg),
		remover:   sprite.NewRemover(cfg),
		sheets:    &sprite.SheetBuilder{},
		scenes:    scene.NewBuilder(cfg),
		processor: batch.NewProcessor(cfg),
	}
}

// CleanSprite removes a flat white background from a generated sprite image
// and crops away the dead space around the content.
func (p *Pipeline) CleanSprite(img image.Image) *image.RGBA {
	return p.remover.Process(img, 0, 0)
}

// Segment partitions a cleaned sprite sheet laid out as rows×columns into
// individual animation frames. See the segment package for the extraction
// strategy and its fallbacks.
func (p *Pipeline) Segment(img image.Image, rows, columns int) (*Frames, error) {
	images, width, height, err := p.segmenter.Segment(img, rows, columns)
	if err != nil {
		return nil, err
	}
	return &Frames{Images: images, FrameWidth: width, FrameHeight: height}, nil
}

// SegmentAll runs Segment over many sheets on a bounded worker pool,
// returning results in job order.
func (p *Pipeline) SegmentAll(ctx context.Context, jobs []Job) ([]Result, error) {
	return p.processor.Run(ctx, jobs)
}

// RearrangeHorizontal segments a rows×columns sheet and reassembles the
// frames into a single-row sheet, the layout game engines index most easily.
// Returns the new sheet together with its frame metadata.
func (p *Pipeline) RearrangeHorizontal(img image.Image, rows, columns int) (*image.RGBA, *SheetMeta, error) {
	frames, err := p.Segment(img, rows, columns)
	if err != nil {
		return nil, nil, err
	}
	return p.sheets.Horizontal(frames.Images, 0)
}

// BuildScene assembles the final scene description from the analyzer's
// output and the segmented character. The analyzer's spawn point is repaired
// when it does not sit on a platform. A nil player selects default movement
// tuning.
func (p *Pipeline) BuildScene(name, backgroundPath string, analysis Analysis, character Character, player *Player) (*Scene, error) {
	return p.scenes.Build(name, backgroundPath, analysis, character, player)
}

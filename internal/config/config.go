package config

// Config holds the tuning parameters of the sprite pipeline. A single instance
// is built once and passed explicitly to whichever component needs it.
type Config struct {
	// AlphaThreshold is the alpha value above which a pixel counts as content.
	// Pixels at or below it are treated as empty background.
	AlphaThreshold uint8

	// NoiseRatio drops detected components whose bounding area is below this
	// fraction of the largest component's area.
	NoiseRatio float64

	// CropPadding is the transparent border kept around auto-cropped sprites.
	CropPadding int

	// WhiteThreshold marks pixels as background when all RGB channels are at
	// or above it (auto white background detection).
	WhiteThreshold uint8

	// ColorTolerance is the per-channel distance allowed when removing an
	// explicit background color.
	ColorTolerance int

	// SpawnTolerance is how far above a platform surface a spawn point may sit
	// and still count as standing on it, in pixels.
	SpawnTolerance int

	// SpawnClearance is the vertical gap left between a repaired spawn point
	// and the platform surface below it.
	SpawnClearance int

	// Workers bounds batch processing concurrency. Zero means auto-size from
	// the host.
	Workers int
}

// Default returns the pipeline configuration used in production.
func Default() *Config {
	return &Config{
		AlphaThreshold: 10,
		NoiseRatio:     0.01,
		CropPadding:    5,
		WhiteThreshold: 240,
		ColorTolerance: 30,
		SpawnTolerance: 100,
		SpawnClearance: 60,
	}
}

// Package scene models the playable scene description emitted by the
// pipeline: platform colliders, spawn point, character animation parameters
// and physics defaults, serialized as YAML for downstream game exporters.
package scene

// Platform is a thin walkable surface in background pixel coordinates, (X, Y)
// at its top-left corner. Platforms are supplied by an external scene
// analyzer; the pipeline only validates against them.
type Platform struct {
	Name     string `yaml:"name"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Walkable bool   `yaml:"walkable"`
}

// Gap describes a jump-requiring break between two platforms.
type Gap struct {
	Description  string `yaml:"description"`
	FromPlatform string `yaml:"from_platform"`
	ToPlatform   string `yaml:"to_platform"`
	Width        int    `yaml:"width"`
}

// SpawnPoint is where the player character is placed, in background pixel
// coordinates.
type SpawnPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Analysis is the scene analyzer's view of a background image.
type Analysis struct {
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	Platforms []Platform `yaml:"platforms"`
	Gaps      []Gap      `yaml:"gaps,omitempty"`
	Spawn     SpawnPoint `yaml:"spawn"`
	Notes     []string   `yaml:"notes,omitempty"`
}

// Background references the scene's backdrop image.
type Background struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Character holds the segmented sprite sheet parameters and spawn position.
type Character struct {
	SpritePath  string `yaml:"sprite_path"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	NumFrames   int    `yaml:"num_frames"`
	SpawnX      int    `yaml:"spawn_x"`
	SpawnY      int    `yaml:"spawn_y"`
}

// Bounds is the playable world rectangle.
type Bounds struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics groups gravity, colliders and world bounds.
type Physics struct {
	Gravity   int        `yaml:"gravity"`
	Platforms []Platform `yaml:"platforms"`
	Bounds    Bounds     `yaml:"bounds"`
}

// Player holds movement tuning consumed by the game exporter.
type Player struct {
	WalkSpeed    int `yaml:"walk_speed"`
	JumpVelocity int `yaml:"jump_velocity"`
	MaxJumps     int `yaml:"max_jumps"`
}

// Scene is the complete runnable scene description.
type Scene struct {
	Version    string     `yaml:"version"`
	Name       string     `yaml:"name"`
	Background Background `yaml:"background"`
	Character  Character  `yaml:"character"`
	Physics    Physics    `yaml:"physics"`
	Player     Player     `yaml:"player"`
	Analysis   Analysis   `yaml:"analysis"`
}

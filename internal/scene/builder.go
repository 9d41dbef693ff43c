package scene

import (
	"fmt"

	"github.com/vmaltsev/spritescene/internal/config"
)

// Default physics and movement tuning for generated platformers.
const (
	defaultGravity      = 600
	defaultWalkSpeed    = 180
	defaultJumpVelocity = -380
	defaultMaxJumps     = 2
)

// Builder assembles a complete scene description from the analyzer's output
// and the segmented character sprite.
type Builder struct {
	validator *SpawnValidator
}

// NewBuilder creates a scene builder from the pipeline configuration.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{validator: NewSpawnValidator(cfg)}
}

// Build produces a runnable scene. The analyzer's spawn point is validated
// against its platforms and repaired when it does not sit on one. Player
// tuning may be nil, in which case defaults apply.
func (b *Builder) Build(name string, backgroundPath string, analysis Analysis, character Character, player *Player) (*Scene, error) {
	if analysis.Width <= 0 || analysis.Height <= 0 {
		return nil, fmt.Errorf("analysis has invalid background dimensions %dx%d", analysis.Width, analysis.Height)
	}

	spawn := b.validator.Validate(analysis.Platforms, analysis.Spawn)
	analysis.Spawn = spawn
	character.SpawnX = spawn.X
	character.SpawnY = spawn.Y

	if player == nil {
		player = &Player{
			WalkSpeed:    defaultWalkSpeed,
			JumpVelocity: defaultJumpVelocity,
			MaxJumps:     defaultMaxJumps,
		}
	}

	return &Scene{
		Version: "1.0",
		Name:    name,
		Background: Background{
			Path:   backgroundPath,
			Width:  analysis.Width,
			Height: analysis.Height,
		},
		Character: character,
		Physics: Physics{
			Gravity:   defaultGravity,
			Platforms: analysis.Platforms,
			Bounds: Bounds{
				Width:  analysis.Width,
				Height: analysis.Height,
			},
		},
		Player:   *player,
		Analysis: analysis,
	}, nil
}

package scene

import (
	"log"
	"sort"

	"github.com/vmaltsev/spritescene/internal/config"
)

// SpawnValidator repairs spawn points that do not sit on a platform. Scene
// analyzers occasionally place the spawn over a gap or inside decoration; a
// character spawned there falls straight out of the level.
type SpawnValidator struct {
	// Tolerance is how far above a platform surface the spawn may sit and
	// still count as standing on it.
	Tolerance int
	// Clearance is the vertical gap left above the surface when relocating.
	Clearance int
}

// NewSpawnValidator creates a validator from the pipeline configuration.
func NewSpawnValidator(cfg *config.Config) *SpawnValidator {
	return &SpawnValidator{
		Tolerance: cfg.SpawnTolerance,
		Clearance: cfg.SpawnClearance,
	}
}

// Validate returns spawn unchanged when some platform already holds it:
// horizontally within the platform's span and vertically within Tolerance
// above its surface, never below. Otherwise the spawn moves onto the best
// available platform. With no platforms to work from the input comes back
// as-is; a degraded spawn beats a failed pipeline.
//
// Re-running Validate on an already valid spawn is a no-op.
func (v *SpawnValidator) Validate(platforms []Platform, spawn SpawnPoint) SpawnPoint {
	for _, p := range platforms {
		if p.X <= spawn.X && spawn.X <= p.X+p.Width &&
			p.Y-v.Tolerance <= spawn.Y && spawn.Y <= p.Y {
			return spawn
		}
	}

	if len(platforms) == 0 {
		log.Printf("[!] No platforms supplied, spawn point (%d,%d) left as given", spawn.X, spawn.Y)
		return spawn
	}

	best := bestPlatform(platforms)
	log.Printf("[!] Spawn point (%d,%d) is not on a platform, relocating to %q", spawn.X, spawn.Y, best.Name)

	return SpawnPoint{
		// Off-center toward the left third: exact-center placement tends to
		// land on decorative elements.
		X: best.X + best.Width/3,
		Y: best.Y - v.Clearance,
	}
}

// bestPlatform prefers the lowest platform (y grows downward) and, among
// ties, the widest: solid ground over floating platforms.
func bestPlatform(platforms []Platform) Platform {
	sorted := make([]Platform, len(platforms))
	copy(sorted, platforms)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].Width > sorted[j].Width
	})

	return sorted[0]
}

package scene

import (
	"path/filepath"
	"testing"

	"github.com/vmaltsev/spritescene/internal/config"
)

func testAnalysis() Analysis {
	return Analysis{
		Width:  1024,
		Height: 768,
		Platforms: []Platform{
			{Name: "Ground", X: 0, Y: 740, Width: 1024, Height: 28, Walkable: true},
		},
		Spawn: SpawnPoint{X: 512, Y: 700},
	}
}

func TestBuildScene(t *testing.T) {
	b := NewBuilder(config.Default())

	s, err := b.Build("TestGame", "assets/background.png", testAnalysis(), Character{
		SpritePath:  "assets/character.png",
		FrameWidth:  64,
		FrameHeight: 96,
		NumFrames:   8,
	}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if s.Name != "TestGame" {
		t.Errorf("Expected name TestGame, got %s", s.Name)
	}
	if s.Background.Width != 1024 || s.Background.Height != 768 {
		t.Errorf("Unexpected background size: %dx%d", s.Background.Width, s.Background.Height)
	}
	if s.Character.SpawnX != 512 || s.Character.SpawnY != 700 {
		t.Errorf("Valid spawn should carry over unchanged, got (%d,%d)", s.Character.SpawnX, s.Character.SpawnY)
	}
	if s.Physics.Gravity != 600 {
		t.Errorf("Expected default gravity 600, got %d", s.Physics.Gravity)
	}
	if s.Player.MaxJumps != 2 {
		t.Errorf("Expected default double jump, got max_jumps=%d", s.Player.MaxJumps)
	}
	if len(s.Physics.Platforms) != 1 {
		t.Errorf("Expected 1 platform collider, got %d", len(s.Physics.Platforms))
	}
}

func TestBuildSceneRepairsSpawn(t *testing.T) {
	b := NewBuilder(config.Default())

	analysis := testAnalysis()
	analysis.Spawn = SpawnPoint{X: 5000, Y: 0} // off every platform

	s, err := b.Build("TestGame", "bg.png", analysis, Character{NumFrames: 4}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if s.Character.SpawnX != 341 || s.Character.SpawnY != 680 {
		t.Errorf("Expected repaired spawn (341,680), got (%d,%d)", s.Character.SpawnX, s.Character.SpawnY)
	}
	if s.Analysis.Spawn != (SpawnPoint{X: 341, Y: 680}) {
		t.Errorf("Analysis spawn should match the repaired point, got %+v", s.Analysis.Spawn)
	}
}

func TestBuildSceneInvalidDimensions(t *testing.T) {
	b := NewBuilder(config.Default())

	if _, err := b.Build("Bad", "bg.png", Analysis{}, Character{}, nil); err == nil {
		t.Error("Expected error for zero-size background")
	}
}

func TestSceneWriteRead(t *testing.T) {
	b := NewBuilder(config.Default())
	s, err := b.Build("RoundTrip", "bg.png", testAnalysis(), Character{NumFrames: 8}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := Write(s, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if loaded.Name != s.Name {
		t.Errorf("Name mismatch: expected %s, got %s", s.Name, loaded.Name)
	}
	if len(loaded.Physics.Platforms) != len(s.Physics.Platforms) {
		t.Errorf("Platform count mismatch: expected %d, got %d", len(s.Physics.Platforms), len(loaded.Physics.Platforms))
	}
	if loaded.Character.SpawnX != s.Character.SpawnX || loaded.Character.SpawnY != s.Character.SpawnY {
		t.Errorf("Spawn mismatch after round trip: (%d,%d)", loaded.Character.SpawnX, loaded.Character.SpawnY)
	}
}

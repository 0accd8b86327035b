package systems

import (
	"math"
	"testing"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
)

func TestTileSpringsBackAfterShortDrag(t *testing.T) {
	em, s, _ := newTestTileScene(t)
	motion := NewTileMotionSystem(em, config.DefaultRevealConfig().Tiles)

	s.HandleDragStart(15)
	s.HandleDragMove(15, 30, -40)
	motion.Update(1.0 / 60.0)

	tile, _ := s.Tile(15)
	if tile.DisplayX != 30 || tile.DisplayY != -40 {
		t.Fatalf("Dragged tile should follow the pointer, got (%v, %v)", tile.DisplayX, tile.DisplayY)
	}

	s.HandleDragEnd(15, 30, -40)
	advance(motion, 1.5)
	if math.Abs(tile.DisplayX) > 0.5 || math.Abs(tile.DisplayY) > 0.5 {
		t.Errorf("Tile should spring back to the origin, got (%v, %v)", tile.DisplayX, tile.DisplayY)
	}
}

func TestRevealedTileExitsAndIsDestroyed(t *testing.T) {
	em, s, _ := newTestTileScene(t)
	motion := NewTileMotionSystem(em, config.DefaultRevealConfig().Tiles)

	swipe(s, 15, 0, -150)
	if _, ok := s.Tile(15); !ok {
		t.Fatal("Revealed tile should exist during its exit animation")
	}

	advance(motion, 0.3)
	tile, _ := s.Tile(15)
	if tile.DisplayY == -150 && tile.DisplayX == 0 {
		t.Error("Exit animation should move the tile")
	}

	advance(motion, 0.4)
	em.RemoveMarkedEntities()
	if _, ok := s.Tile(15); ok {
		t.Error("Tile should be destroyed after the exit animation")
	}
	if n := len(ecs.GetEntitiesWith1[*components.TileComponent](em)); n != 15 {
		t.Errorf("Remaining tiles: got %d, want 15", n)
	}
}

func TestTileExitProgress(t *testing.T) {
	exit := &components.TileExitComponent{Duration: 0.6}
	if TileExitProgress(exit) != 0 {
		t.Error("Exit progress should start at 0")
	}
	exit.Elapsed = 0.6
	if TileExitProgress(exit) != 1 {
		t.Error("Exit progress should end at 1")
	}
	exit.Elapsed = 0.3
	if p := TileExitProgress(exit); p <= 0.5 {
		t.Errorf("Ease-out should be past halfway at half time, got %v", p)
	}
}

func TestTileAgeAdvances(t *testing.T) {
	em, s, _ := newTestTileScene(t)
	motion := NewTileMotionSystem(em, config.DefaultRevealConfig().Tiles)

	motion.Update(0.25)
	tile, _ := s.Tile(config.TerminalTileID)
	if tile.Age != 0.25 {
		t.Errorf("Tile age: got %v, want 0.25", tile.Age)
	}
}

package scenes

import (
	"testing"

	"github.com/decker502/lovenote/pkg/config"
)

// swipeUp 在屏幕中心按下并向上拖动 dy 像素后释放
func swipeUp(s updater, in *scriptedInput, dy int) {
	frame(s, in, false, 400, 300, frameDT)
	frame(s, in, true, 400, 300, frameDT)
	frame(s, in, true, 400, 300-dy/2, frameDT)
	frame(s, in, true, 400, 300-dy, frameDT)
	frame(s, in, false, 400, 300-dy, frameDT)
}

func TestTilesSceneSwipeRevealsTopTile(t *testing.T) {
	deps, in := newTestDeps(t)
	s := NewTilesScene(deps, nil)
	board := s.Reveal().Board()

	swipeUp(s, in, 150)
	if board.RevealedCount != 1 {
		t.Fatalf("RevealedCount after one swipe: got %d, want 1", board.RevealedCount)
	}
	top, _ := s.Reveal().Tile(15)
	if !top.IsRevealed {
		t.Error("The top tile should be the one revealed")
	}
}

func TestTilesSceneShortDragSnapsBack(t *testing.T) {
	deps, in := newTestDeps(t)
	s := NewTilesScene(deps, nil)
	board := s.Reveal().Board()

	swipeUp(s, in, 40)
	if board.RevealedCount != 0 {
		t.Errorf("Drag below the threshold must not reveal, got %d", board.RevealedCount)
	}
	if board.DraggingTile != config.NoTile {
		t.Error("Drag should end on release")
	}
}

func TestTilesSceneFullFlow(t *testing.T) {
	deps, in := newTestDeps(t)
	completions := 0
	s := NewTilesScene(deps, func() { completions++ })
	board := s.Reveal().Board()

	for i := 0; i < 15; i++ {
		swipeUp(s, in, 150)
	}
	if board.RevealedCount != 15 || !board.FinalTileVisible {
		t.Fatalf("All covers should be revealed: count=%d visible=%v", board.RevealedCount, board.FinalTileVisible)
	}

	// 延迟结束前点击爱心无效
	click(s, in, 400, 300)
	if completions != 0 {
		t.Fatal("Heart click before the final animation must be ignored")
	}

	idle(s, in, 0.5)
	if !board.AnimateFinalTile {
		t.Fatal("Final animation should have started")
	}
	if s.Confetti().ActiveBursts() != 1 {
		t.Errorf("Final animation should fire one confetti burst, got %d", s.Confetti().ActiveBursts())
	}

	click(s, in, 400, 300)
	if completions != 1 {
		t.Fatalf("Heart click should complete the scene, got %d", completions)
	}
	click(s, in, 400, 300)
	if completions != 1 {
		t.Errorf("Completion must fire once, got %d", completions)
	}
}

func TestTilesSceneInputDisabled(t *testing.T) {
	deps, in := newTestDeps(t)
	s := NewTilesScene(deps, nil)
	board := s.Reveal().Board()

	s.SetInputEnabled(false)
	swipeUp(s, in, 150)
	if board.RevealedCount != 0 {
		t.Error("Swipes must be ignored while input is disabled")
	}

	s.SetInputEnabled(true)
	swipeUp(s, in, 150)
	if board.RevealedCount != 1 {
		t.Errorf("Swipe after re-enabling input: got %d reveals, want 1", board.RevealedCount)
	}
}

func TestTilesSceneCancelDragOnDisable(t *testing.T) {
	deps, in := newTestDeps(t)
	s := NewTilesScene(deps, nil)
	board := s.Reveal().Board()

	frame(s, in, true, 400, 300, frameDT)
	frame(s, in, true, 400, 200, frameDT)
	if board.DraggingTile == config.NoTile {
		t.Fatal("Drag should have started")
	}

	s.SetInputEnabled(false)
	if board.DraggingTile != config.NoTile {
		t.Error("Disabling input should end the drag")
	}
	if board.RevealedCount != 0 {
		t.Error("A cancelled drag must not reveal the tile")
	}
}

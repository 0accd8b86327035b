package systems

import (
	"math"
	"testing"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/ecs"
)

func TestSwipeHandPose(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    float64
		wantOffset float64
		wantAlpha  float64
	}{
		{"周期开始", 0, -0.5, 0},
		{"滑入到位", 0.75, 0, 1},
		{"滑到最左", 1.75, -1, 1},
		{"周期结束", 2.5, -0.5, 0},
		{"停顿中", 2.8, -0.5, 0},
		{"第二个周期", 3.75, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, alpha := SwipeHandPose(tt.elapsed)
			if math.Abs(offset-tt.wantOffset) > 1e-6 || math.Abs(alpha-tt.wantAlpha) > 1e-6 {
				t.Errorf("SwipeHandPose(%v) = (%v, %v), want (%v, %v)",
					tt.elapsed, offset, alpha, tt.wantOffset, tt.wantAlpha)
			}
		})
	}
}

func TestSwipeHintFollowsBoard(t *testing.T) {
	em := ecs.NewEntityManager()
	boardEntity := em.CreateEntity()
	board := &components.TileBoardComponent{}
	em.AddComponent(boardEntity, board)

	s := NewSwipeHintSystem(em)
	s.Update(1.0 / 60.0)
	if s.Hint().Visible {
		t.Fatal("Hint should stay hidden while the board hides it")
	}

	board.HintVisible = true
	s.Update(1.0 / 60.0)
	hint := s.Hint()
	if !hint.Visible || hint.Elapsed != 0 {
		t.Fatalf("Hint should restart its animation when shown, got %+v", hint)
	}
	if hint.Alpha != 0 {
		t.Errorf("Hint alpha should wait for the appear delay, got %v", hint.Alpha)
	}

	s.Update(1.0)
	if hint.Alpha != 1 {
		t.Errorf("Hint alpha after 1s: got %v, want 1", hint.Alpha)
	}

	board.HintVisible = false
	s.Update(1.0 / 60.0)
	if hint.Visible || hint.Alpha != 0 {
		t.Errorf("Hint should reset when hidden, got %+v", hint)
	}
}

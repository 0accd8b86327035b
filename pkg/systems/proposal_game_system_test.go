package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
)

type proposalRecorder struct {
	toasts  []string
	accepts int
}

func newTestProposal(t *testing.T, cfg config.GameConfig) (*ProposalGameSystem, *proposalRecorder) {
	t.Helper()
	rec := &proposalRecorder{}
	msgs := config.DefaultMessagesConfig()
	s := NewProposalGameSystem(ecs.NewEntityManager(), cfg, msgs, rand.New(rand.NewPCG(7, 11)), ProposalCallbacks{
		OnToast:  func(title, message string) { rec.toasts = append(rec.toasts, message) },
		OnAccept: func() { rec.accepts++ },
	})
	return s, rec
}

func assertDeclineInBounds(t *testing.T, s *ProposalGameSystem) {
	t.Helper()
	btn := s.Decline()
	minX, maxX, minY, maxY := s.DeclineBounds(btn.Scale)
	if btn.X < minX || btn.X > maxX || btn.Y < minY || btn.Y > maxY {
		t.Fatalf("Decline position (%.2f, %.2f) outside [%.2f,%.2f]x[%.2f,%.2f] at scale %.3f",
			btn.X, btn.Y, minX, maxX, minY, maxY, btn.Scale)
	}
}

func TestProposalInitialLayout(t *testing.T) {
	s, _ := newTestProposal(t, config.DefaultRevealConfig().Game)

	btn := s.Decline()
	cx := btn.X + btn.Width/2
	cy := btn.Y + btn.Height/2
	if math.Abs(cx-384*0.7) > 1e-9 || math.Abs(cy-256*0.5) > 1e-9 {
		t.Errorf("Decline center: got (%v, %v), want (%v, %v)", cx, cy, 384*0.7, 128.0)
	}
	if btn.IsMoving {
		t.Error("Decline button should not move before the pointer enters")
	}
	if btn.Scale != 1 {
		t.Errorf("Initial scale: got %v, want 1", btn.Scale)
	}

	accept := s.AcceptRect()
	ax, ay := accept.Center()
	if math.Abs(ax-384*0.3) > 1e-9 || ay != 128 {
		t.Errorf("Accept center: got (%v, %v)", ax, ay)
	}
}

func TestPointerMoveBeforeEnterIgnored(t *testing.T) {
	s, _ := newTestProposal(t, config.DefaultRevealConfig().Game)
	btn := s.Decline()
	x, y := btn.X, btn.Y

	s.HandlePointerMove(x+btn.Width/2, y+btn.Height/2)
	if btn.X != x || btn.Y != y {
		t.Error("Button must not move before activation")
	}
}

func TestPointerProximityRelocates(t *testing.T) {
	s, _ := newTestProposal(t, config.DefaultRevealConfig().Game)
	btn := s.Decline()
	s.HandlePointerEnter()
	if !btn.IsMoving {
		t.Fatal("Pointer enter should activate movement")
	}

	// 远离按钮时不移动
	x, y := btn.X, btn.Y
	s.HandlePointerMove(0, 0)
	if btn.X != x || btn.Y != y {
		t.Error("Button moved although the pointer is far away")
	}

	// 靠近按钮中心时逃开
	for i := 0; i < 50; i++ {
		cx := btn.X + btn.Width*btn.Scale/2
		cy := btn.Y + btn.Height*btn.Scale/2
		s.HandlePointerMove(cx+10, cy)
		assertDeclineInBounds(t, s)
	}
	if btn.MoveElapsed != 0 {
		t.Error("Relocation should restart the move animation")
	}
}

func TestPointerMoveNaNDropped(t *testing.T) {
	s, _ := newTestProposal(t, config.DefaultRevealConfig().Game)
	btn := s.Decline()
	s.HandlePointerEnter()
	x, y := btn.X, btn.Y

	s.HandlePointerMove(math.NaN(), 10)
	s.HandlePointerMove(10, math.Inf(1))
	if btn.X != x || btn.Y != y {
		t.Error("Invalid pointer positions must be dropped")
	}
}

func TestDeclineScaleFloor(t *testing.T) {
	s, rec := newTestProposal(t, config.DefaultRevealConfig().Game)
	btn := s.Decline()

	prev := btn.Scale
	for i := 0; i < 60; i++ {
		s.HandleDeclineClick()
		if btn.Scale > prev {
			t.Fatalf("Click %d: scale increased from %v to %v", i, prev, btn.Scale)
		}
		if btn.Scale < 0.2 {
			t.Fatalf("Click %d: scale %v below the floor", i, btn.Scale)
		}
		assertDeclineInBounds(t, s)
		prev = btn.Scale
	}

	if btn.Scale != 0.2 {
		t.Errorf("Scale should settle at 0.2, got %v", btn.Scale)
	}
	if len(rec.toasts) != 60 {
		t.Errorf("Expected one toast per click, got %d", len(rec.toasts))
	}
	if !btn.IsMoving {
		t.Error("Decline click should activate movement")
	}
	if s.Game().DeclineCount != 60 {
		t.Errorf("DeclineCount: got %d, want 60", s.Game().DeclineCount)
	}
}

func TestDeclineFirstClickScale(t *testing.T) {
	s, rec := newTestProposal(t, config.DefaultRevealConfig().Game)
	s.HandleDeclineClick()

	if got := s.Decline().Scale; math.Abs(got-0.95) > 1e-12 {
		t.Errorf("Scale after one click: got %v, want 0.95", got)
	}

	msgs := config.DefaultMessagesConfig().CuteMessages
	found := false
	for _, m := range msgs {
		if len(rec.toasts) == 1 && rec.toasts[0] == m {
			found = true
		}
	}
	if !found {
		t.Errorf("Toast should come from the message pool, got %v", rec.toasts)
	}
}

func TestRelocationInTinyArea(t *testing.T) {
	cfg := config.DefaultRevealConfig().Game
	cfg.AreaWidth = 50
	cfg.AreaHeight = 30
	s, _ := newTestProposal(t, cfg)

	s.HandleDeclineClick()
	btn := s.Decline()
	if btn.X != cfg.Padding || btn.Y != cfg.Padding {
		t.Errorf("Too-small area should collapse to padding, got (%v, %v)", btn.X, btn.Y)
	}
}

func TestAcceptAndDialog(t *testing.T) {
	s, rec := newTestProposal(t, config.DefaultRevealConfig().Game)

	if !s.HandleAcceptClick() {
		t.Fatal("Accept should open the dialog")
	}
	if !s.DialogOpen() || rec.accepts != 1 {
		t.Fatalf("Dialog open=%v accepts=%d", s.DialogOpen(), rec.accepts)
	}
	dialog := s.Dialog()
	if dialog.Title != "Yesss!" || dialog.Message != "Love You Pookie" || dialog.ButtonLabel != "Close" {
		t.Errorf("Dialog content: %+v", dialog)
	}

	// 对话框打开时忽略区域输入
	if s.HandleAcceptClick() {
		t.Error("Accept while the dialog is open must be ignored")
	}
	s.HandleDeclineClick()
	if s.Decline().Scale != 1 || len(rec.toasts) != 0 {
		t.Error("Decline while the dialog is open must be ignored")
	}
	s.HandlePointerEnter()
	if s.Decline().IsMoving {
		t.Error("Pointer enter while the dialog is open must be ignored")
	}

	s.HandleDialogClose()
	if s.DialogOpen() {
		t.Fatal("Dialog should close")
	}
	if rec.accepts != 1 {
		t.Error("Closing the dialog must not trigger another accept")
	}

	// 再次点击"Yes"重新打开
	if !s.HandleAcceptClick() || rec.accepts != 2 {
		t.Errorf("Accept after close should reopen, accepts=%d", rec.accepts)
	}
	if s.Game().AcceptCount != 2 {
		t.Errorf("AcceptCount: got %d, want 2", s.Game().AcceptCount)
	}
}

func TestDeclineDisplayEasesToTarget(t *testing.T) {
	s, _ := newTestProposal(t, config.DefaultRevealConfig().Game)
	s.HandleDeclineClick()
	btn := s.Decline()

	if btn.DisplayX != btn.FromX {
		t.Fatal("Display position should start at the previous position")
	}

	advance(s, 0.5)
	if math.Abs(btn.DisplayX-btn.X) > 1e-9 || math.Abs(btn.DisplayY-btn.Y) > 1e-9 {
		t.Errorf("Display should reach the target: (%v, %v) vs (%v, %v)", btn.DisplayX, btn.DisplayY, btn.X, btn.Y)
	}
	if math.Abs(btn.DisplayScale-btn.Scale) > 1e-9 {
		t.Errorf("Display scale should reach the target: %v vs %v", btn.DisplayScale, btn.Scale)
	}

	rect := s.DeclineRect()
	if math.Abs(rect.W-100*0.95) > 1e-9 {
		t.Errorf("DeclineRect width: got %v", rect.W)
	}
}

func TestProposalEnterProgress(t *testing.T) {
	s, _ := newTestProposal(t, config.DefaultRevealConfig().Game)
	if s.EnterProgress() != 0 {
		t.Error("Enter progress should start at 0")
	}
	advance(s, 1)
	if s.EnterProgress() != 1 {
		t.Errorf("Enter progress after 1s: got %v", s.EnterProgress())
	}
}

package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
)

func newTestConfetti(t *testing.T) (*ConfettiSystem, *ecs.EntityManager) {
	t.Helper()
	em := ecs.NewEntityManager()
	return NewConfettiSystem(em, rand.New(rand.NewPCG(3, 5)), 800, 600), em
}

func smallConfetti() config.ConfettiConfig {
	cfg := config.DefaultRevealConfig().Confetti.Tiles
	cfg.Pieces = 50
	return cfg
}

func TestConfettiEmitsOverTween(t *testing.T) {
	s, em := newTestConfetti(t)
	cfg := smallConfetti()
	id := s.Fire(cfg, nil)
	burst, _ := ecs.GetComponent[*components.ConfettiBurstComponent](em, id)

	s.Update(1.0 / 60.0)
	if burst.Emitted == 0 || burst.Emitted > 2 {
		t.Errorf("First frame should emit about one piece, got %d", burst.Emitted)
	}

	advance(s, cfg.TweenDuration/2)
	if burst.Emitted < 23 || burst.Emitted > 27 {
		t.Errorf("Half way through the tween: got %d pieces, want about 25", burst.Emitted)
	}

	advance(s, cfg.TweenDuration)
	if burst.Emitted != cfg.Pieces {
		t.Errorf("After the tween all pieces should be emitted, got %d", burst.Emitted)
	}
}

func TestConfettiSpawnRanges(t *testing.T) {
	s, em := newTestConfetti(t)
	cfg := smallConfetti()
	cfg.TweenDuration = 0
	s.Fire(cfg, nil)

	// 零时长时第一帧全部发射
	s.Update(0)
	if s.ParticleCount() != cfg.Pieces {
		t.Fatalf("Zero tween should emit every piece at once, got %d", s.ParticleCount())
	}

	palette := cfg.Palette()
	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiParticleComponent](em) {
		p, _ := ecs.GetComponent[*components.ConfettiParticleComponent](em, id)
		if p.X < 0 || p.X > 800 || p.Y != 0 {
			t.Errorf("Piece %d spawned off the top edge at (%v, %v)", id, p.X, p.Y)
		}
		if p.VY > 0 || p.VY < -cfg.InitialVelocityY {
			t.Errorf("Piece %d VY %v outside [-%v, 0]", id, p.VY, cfg.InitialVelocityY)
		}
		if math.Abs(p.VX) > cfg.InitialVelocityX {
			t.Errorf("Piece %d VX %v outside ±%v", id, p.VX, cfg.InitialVelocityX)
		}
		if p.Width < 5 || p.Width > 20 || p.Height < 5 || p.Height > 20 {
			t.Errorf("Piece %d size %vx%v outside [5, 20]", id, p.Width, p.Height)
		}
		found := false
		for _, c := range palette {
			if c == p.Color {
				found = true
			}
		}
		if !found {
			t.Errorf("Piece %d color %v not in the palette", id, p.Color)
		}
	}
}

func TestConfettiPhysicsStep(t *testing.T) {
	s, em := newTestConfetti(t)
	cfg := smallConfetti()
	burstID := s.Fire(cfg, nil)

	id := em.CreateEntity()
	em.AddComponent(id, &components.ConfettiParticleComponent{X: 400, Y: 300, VX: 2, VY: 1, Burst: burstID})
	burst, _ := ecs.GetComponent[*components.ConfettiBurstComponent](em, burstID)
	burst.Emitted = cfg.Pieces
	burst.Alive = 1

	s.Update(1.0 / 60.0)
	p, ok := ecs.GetComponent[*components.ConfettiParticleComponent](em, id)
	if !ok {
		t.Fatal("Piece inside the canvas must survive")
	}
	if math.Abs(p.X-402) > 1e-9 || math.Abs(p.Y-301) > 1e-9 {
		t.Errorf("Position after one frame: (%v, %v), want (402, 301)", p.X, p.Y)
	}
	if want := (1 + cfg.Gravity) * 0.99; math.Abs(p.VY-want) > 1e-9 {
		t.Errorf("VY after one frame: got %v, want %v", p.VY, want)
	}
	if math.Abs(p.VX-2*0.99) > 1e-9 {
		t.Errorf("VX after one frame: got %v, want %v", p.VX, 2*0.99)
	}
}

func TestConfettiRemovesOffscreen(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"below", 400, 601},
		{"above", 400, -101},
		{"left", -101, 300},
		{"right", 901, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, em := newTestConfetti(t)
			burstID := s.Fire(smallConfetti(), nil)
			burst, _ := ecs.GetComponent[*components.ConfettiBurstComponent](em, burstID)
			burst.Emitted = burst.Config.Pieces
			burst.Alive = 1

			id := em.CreateEntity()
			em.AddComponent(id, &components.ConfettiParticleComponent{X: tt.x, Y: tt.y, Burst: burstID})

			s.Update(0)
			if _, ok := ecs.GetComponent[*components.ConfettiParticleComponent](em, id); ok {
				t.Errorf("Piece at (%v, %v) should be removed", tt.x, tt.y)
			}
			if burst.Alive != 0 {
				t.Errorf("Alive count: got %d, want 0", burst.Alive)
			}
		})
	}
}

func TestConfettiCompletesOnce(t *testing.T) {
	s, em := newTestConfetti(t)
	completions := 0
	s.Fire(smallConfetti(), func() { completions++ })

	if s.ActiveBursts() != 1 {
		t.Fatalf("ActiveBursts: got %d, want 1", s.ActiveBursts())
	}

	advance(s, 30)
	em.RemoveMarkedEntities()

	if completions != 1 {
		t.Errorf("Completion: got %d calls, want 1", completions)
	}
	if s.ParticleCount() != 0 {
		t.Errorf("All pieces should be gone, got %d", s.ParticleCount())
	}
	if s.ActiveBursts() != 0 {
		t.Errorf("Burst should be destroyed, got %d", s.ActiveBursts())
	}

	advance(s, 1)
	if completions != 1 {
		t.Errorf("Completion fired again: %d calls", completions)
	}
}

func TestConfettiIndependentBursts(t *testing.T) {
	s, _ := newTestConfetti(t)
	var order []string
	s.Fire(smallConfetti(), func() { order = append(order, "first") })
	s.Fire(smallConfetti(), func() { order = append(order, "second") })

	if s.ActiveBursts() != 2 {
		t.Fatalf("ActiveBursts: got %d, want 2", s.ActiveBursts())
	}
	advance(s, 30)
	if len(order) != 2 {
		t.Errorf("Both bursts should complete, got %v", order)
	}
}

func TestConfettiEmptyPaletteFallback(t *testing.T) {
	s, em := newTestConfetti(t)
	cfg := smallConfetti()
	cfg.Colors = nil
	id := s.Fire(cfg, nil)

	burst, _ := ecs.GetComponent[*components.ConfettiBurstComponent](em, id)
	if len(burst.Palette) != 1 {
		t.Errorf("Empty palette should fall back to one color, got %d", len(burst.Palette))
	}
}

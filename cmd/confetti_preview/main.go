// Package main provides a confetti viewer tool for tuning the confetti presets.
//
// Usage:
//
//	go run ./cmd/confetti_preview [flags]
//
// Flags:
//
//	--preset <name>   Start with a preset (tiles or proposal)
//	--seed <n>        Random seed (0 = current time)
//	--auto-play       Fire a burst every 3 seconds
//	--root <dir>      Directory containing data/ (default ".")
//
// Controls:
//
//	Mouse Click / Space  - Fire the selected preset
//	Left/Right Arrow     - Switch preset
//	R                    - Clear all bursts
//	P                    - Toggle pause
//	Q/Escape             - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/embedded"
	"github.com/decker502/lovenote/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	presetFlag   = flag.String("preset", "tiles", "Initial preset: tiles or proposal")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0 = current time)")
	autoPlayFlag = flag.Bool("auto-play", false, "Fire a burst every 3 seconds")
	rootFlag     = flag.String("root", ".", "Directory containing data/")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit requested")

const autoPlayInterval = 3.0

type preset struct {
	name   string
	config config.ConfettiConfig
}

// ConfettiViewerGame implements ebiten.Game interface for the confetti viewer
type ConfettiViewerGame struct {
	entityManager *ecs.EntityManager
	confetti      *systems.ConfettiSystem
	renderSystem  *systems.RenderSystem
	rng           *rand.Rand

	width, height int
	presets       []preset
	currentIndex  int

	autoPlay      bool
	sinceLastFire float64
	paused        bool
	fired         int
}

// NewConfettiViewerGame creates a new confetti viewer instance
func NewConfettiViewerGame(cfg *config.RevealConfig, rng *rand.Rand) *ConfettiViewerGame {
	em := ecs.NewEntityManager()
	w, h := cfg.Window.Width, cfg.Window.Height

	g := &ConfettiViewerGame{
		entityManager: em,
		confetti:      systems.NewConfettiSystem(em, rng, float64(w), float64(h)),
		renderSystem:  systems.NewRenderSystem(em),
		rng:           rng,
		width:         w,
		height:        h,
		presets: []preset{
			{name: "tiles", config: cfg.Confetti.Tiles},
			{name: "proposal", config: cfg.Confetti.Proposal},
		},
		autoPlay: *autoPlayFlag,
	}
	for i, p := range g.presets {
		if p.name == *presetFlag {
			g.currentIndex = i
		}
	}

	// 启动时先发射一次，避免空白屏幕
	g.fire()
	return g
}

func (g *ConfettiViewerGame) fire() {
	p := g.presets[g.currentIndex]
	g.confetti.Fire(p.config, func() {
		log.Printf("Burst of %s finished", p.name)
	})
	g.fired++
	g.sinceLastFire = 0
}

// Update updates the viewer state
func (g *ConfettiViewerGame) Update() error {
	dt := 1.0 / 60.0

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.currentIndex = (g.currentIndex + 1) % len(g.presets)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.currentIndex = (g.currentIndex + len(g.presets) - 1) % len(g.presets)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.entityManager = ecs.NewEntityManager()
		g.confetti = systems.NewConfettiSystem(g.entityManager, g.rng, float64(g.width), float64(g.height))
		g.renderSystem = systems.NewRenderSystem(g.entityManager)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.fire()
	}

	if g.paused {
		return nil
	}

	g.sinceLastFire += dt
	if g.autoPlay && g.sinceLastFire >= autoPlayInterval {
		g.fire()
	}

	g.confetti.Update(dt)
	g.entityManager.RemoveMarkedEntities()
	return nil
}

// Draw renders the confetti and the status overlay
func (g *ConfettiViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(systems.ColorBackground)
	g.renderSystem.DrawConfetti(screen)

	p := g.presets[g.currentIndex]
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Preset: %s (%d/%d)", p.name, g.currentIndex+1, len(g.presets)), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Pieces %d  Gravity %.2f  Velocity (%.1f, %.1f)  Tween %.1fs",
		p.config.Pieces, p.config.Gravity, p.config.InitialVelocityX, p.config.InitialVelocityY, p.config.TweenDuration), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Active bursts: %d  Particles: %d  Fired: %d",
		g.confetti.ActiveBursts(), g.confetti.ParticleCount(), g.fired), 10, 50)

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (press P to resume)", g.width-200, 10)
	} else if g.autoPlay {
		ebitenutil.DebugPrintAt(screen, "AUTO-PLAY MODE", g.width-120, 10)
	}

	ebitenutil.DebugPrintAt(screen, "Click/Space: fire  Left/Right: preset  R: clear  P: pause  Q: quit", 10, g.height-20)
}

// Layout returns the logical screen size
func (g *ConfettiViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	flag.Parse()

	log.Println("=== Confetti Viewer ===")
	log.Printf("Preset: %q, auto-play: %v", *presetFlag, *autoPlayFlag)

	embedded.Init(os.DirFS(*rootFlag))
	cfg, err := config.LoadRevealConfig("data/reveal.yaml")
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
		cfg = config.DefaultRevealConfig()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	game := NewConfettiViewerGame(cfg, rand.New(rand.NewPCG(seed, seed>>1)))

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Confetti Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

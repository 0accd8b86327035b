package scenes

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/game"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const frameDT = 1.0 / 60.0

// scriptedInput 由测试逐帧设置的输入
type scriptedInput struct {
	sample  utils.PointerSample
	wheel   float64
	pressed map[ebiten.Key]bool
}

func (in *scriptedInput) Pointer() utils.PointerSample { return in.sample }
func (in *scriptedInput) Wheel() float64 { return in.wheel }
func (in *scriptedInput) KeyJustPressed(key ebiten.Key) bool {
	return in.pressed[key]
}

// newTestDeps 创建不依赖音频设备的场景依赖
func newTestDeps(t *testing.T) (Deps, *scriptedInput) {
	t.Helper()
	in := &scriptedInput{}
	return Deps{
		Config:    config.DefaultRevealConfig(),
		Messages:  config.DefaultMessagesConfig(),
		Resources: game.NewResourceManager(nil),
		Rand:      rand.New(rand.NewPCG(7, 11)),
		Input:     in,
	}, in
}

type updater interface {
	Update(deltaTime float64)
}

// frame 设置一帧鼠标采样并推进场景
func frame(s updater, in *scriptedInput, pressed bool, x, y int, dt float64) {
	in.sample = utils.PointerSample{Pressed: pressed, X: x, Y: y, Valid: true}
	s.Update(dt)
	in.wheel = 0
	in.pressed = nil
}

// idle 鼠标停在原处推进若干秒
func idle(s updater, in *scriptedInput, seconds float64) {
	x, y := in.sample.X, in.sample.Y
	for elapsed := 0.0; elapsed < seconds; elapsed += frameDT {
		frame(s, in, false, x, y, frameDT)
	}
}

// click 在 (x, y) 按下并释放
func click(s updater, in *scriptedInput, x, y int) {
	frame(s, in, false, x, y, frameDT)
	frame(s, in, true, x, y, frameDT)
	frame(s, in, false, x, y, frameDT)
}

func TestNewSceneDispatch(t *testing.T) {
	deps, _ := newTestDeps(t)

	if _, ok := NewScene(game.SceneTiles, deps, nil).(*TilesScene); !ok {
		t.Error("SceneTiles should create a TilesScene")
	}
	if _, ok := NewScene(game.SceneLetter, deps, nil).(*LetterScene); !ok {
		t.Error("SceneLetter should create a LetterScene")
	}
	if _, ok := NewScene(game.SceneGame, deps, nil).(*ProposalScene); !ok {
		t.Error("SceneGame should create a ProposalScene")
	}
	if NewScene(game.SceneKind("credits"), deps, nil) != nil {
		t.Error("Unknown scene kind should return nil")
	}
}

func TestScenesImplementInputBlocker(t *testing.T) {
	deps, _ := newTestDeps(t)
	for _, kind := range []game.SceneKind{game.SceneTiles, game.SceneLetter, game.SceneGame} {
		if _, ok := NewScene(kind, deps, nil).(game.InputBlocker); !ok {
			t.Errorf("Scene %s should implement InputBlocker", kind)
		}
	}
}

func TestScenesDraw(t *testing.T) {
	deps, in := newTestDeps(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	for _, kind := range []game.SceneKind{game.SceneTiles, game.SceneLetter, game.SceneGame} {
		s := NewScene(kind, deps, nil)
		idle(s, in, 2)
		s.Draw(screen)
	}
}

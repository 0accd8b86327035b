package scenes

import (
	"math/rand/v2"

	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/game"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// InputSource 每帧的输入来源
// 运行时使用 EbitenInput，测试中替换为脚本化输入
type InputSource interface {
	// Pointer 当前帧的指针采样
	Pointer() utils.PointerSample
	// Wheel 当前帧的垂直滚轮增量（向上为正）
	Wheel() float64
	// KeyJustPressed 按键是否在本帧按下
	KeyJustPressed(key ebiten.Key) bool
}

// EbitenInput 从 ebiten 读取输入
type EbitenInput struct{}

// Pointer 实现 InputSource
func (EbitenInput) Pointer() utils.PointerSample { return utils.SamplePointer() }

// Wheel 实现 InputSource
func (EbitenInput) Wheel() float64 { return utils.WheelDelta() }

// KeyJustPressed 实现 InputSource
func (EbitenInput) KeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Deps 场景共享的依赖
type Deps struct {
	Config    *config.RevealConfig
	Messages  *config.MessagesConfig
	Resources *game.ResourceManager
	Audio     *game.AudioManager // 可为 nil
	Rand      *rand.Rand
	Input     InputSource // 为 nil 时使用 EbitenInput
}

// input 返回输入来源
func (d Deps) input() InputSource {
	if d.Input == nil {
		return EbitenInput{}
	}
	return d.Input
}

// playSound 播放音效（没有 AudioManager 时忽略）
func (d Deps) playSound(id string) {
	if d.Audio != nil {
		d.Audio.PlaySound(id)
	}
}

// font 加载字体（没有 ResourceManager 时返回 nil，绘制时跳过文字）
func (d Deps) font(name string, size float64) *text.GoTextFace {
	if d.Resources == nil {
		return nil
	}
	return d.Resources.MustFont(name, size)
}

// screenSize 逻辑屏幕尺寸
func (d Deps) screenSize() (float64, float64) {
	return float64(d.Config.Window.Width), float64(d.Config.Window.Height)
}

// 字号
const (
	fontSizeBody    = 18
	fontSizeCaption = 20
	fontSizeTitle   = 30
	fontSizeButton  = 20
	fontSizeLetter  = 17
)

// NewScene 按类型创建场景，供 SceneManager 的工厂函数使用
func NewScene(kind game.SceneKind, deps Deps, onComplete func()) Scene {
	switch kind {
	case game.SceneTiles:
		return NewTilesScene(deps, onComplete)
	case game.SceneLetter:
		return NewLetterScene(deps, onComplete)
	case game.SceneGame:
		return NewProposalScene(deps, onComplete)
	}
	return nil
}

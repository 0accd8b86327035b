package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneKind 场景类型
type SceneKind string

// SceneKind 常量（按流程顺序）
const (
	SceneTiles  SceneKind = "tiles"
	SceneLetter SceneKind = "letter"
	SceneGame   SceneKind = "game"
)

// sceneOrder 场景只能按此顺序前进
var sceneOrder = []SceneKind{SceneTiles, SceneLetter, SceneGame}

// NextSceneKind 返回下一个场景
//
// 返回：
//   - 下一个场景类型
//   - false: 已经是最后一个场景或类型未知
func NextSceneKind(kind SceneKind) (SceneKind, bool) {
	for i, k := range sceneOrder {
		if k == kind && i+1 < len(sceneOrder) {
			return sceneOrder[i+1], true
		}
	}
	return kind, false
}

// SceneFactory 场景工厂函数类型
// onComplete 由场景在完成时调用一次，用于通知 SceneManager 前进
type SceneFactory func(kind SceneKind, onComplete func()) Scene

// fadeState 场景切换过渡状态
type fadeState int

const (
	fadeNone fadeState = iota
	fadeOut
	fadeIn
)

// SceneManager 视图控制器
//
// 持有当前场景，只能按 tiles → letter → game 单向前进。
// 切换时旧场景淡出、新场景淡入；来自非当前场景或发生在过渡中的完成通知被忽略。
type SceneManager struct {
	currentScene Scene
	currentKind  SceneKind
	sceneFactory SceneFactory

	// generation 每创建一个场景加一，用于识别过期的完成通知
	generation int

	fade         fadeState
	fadeElapsed  float64
	fadeDuration float64
	fadeColor    color.RGBA
	pendingKind  SceneKind
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Start to create the first scene.
//
// 参数：
//   - fadeDuration: 淡出和淡入各自的时长（秒）
func NewSceneManager(fadeDuration float64) *SceneManager {
	return &SceneManager{
		fadeDuration: fadeDuration,
		fadeColor:    color.RGBA{R: 0xff, G: 0xf0, B: 0xf5, A: 0xff},
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetFadeColor 设置过渡遮罩颜色
func (sm *SceneManager) SetFadeColor(c color.RGBA) {
	sm.fadeColor = c
}

// Start 创建并进入指定场景（无过渡）
func (sm *SceneManager) Start(kind SceneKind) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}
	sm.enter(kind)
	sm.fade = fadeNone
	sm.setInputEnabled(true)
}

// enter 通过工厂创建场景，完成回调绑定当前 generation
func (sm *SceneManager) enter(kind SceneKind) {
	sm.generation++
	gen := sm.generation
	scene := sm.sceneFactory(kind, func() { sm.complete(gen) })
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", kind)
		return
	}
	sm.currentScene = scene
	sm.currentKind = kind
	log.Printf("[SceneManager] 进入场景: %s", kind)
}

// complete 场景完成通知
func (sm *SceneManager) complete(gen int) {
	if gen != sm.generation {
		log.Printf("[SceneManager] 忽略过期场景的完成通知")
		return
	}
	if sm.fade != fadeNone {
		log.Printf("[SceneManager] 过渡中，忽略完成通知")
		return
	}

	next, ok := NextSceneKind(sm.currentKind)
	if !ok {
		log.Printf("[SceneManager] %s 已是最后一个场景", sm.currentKind)
		return
	}

	sm.pendingKind = next
	sm.fade = fadeOut
	sm.fadeElapsed = 0
	sm.setInputEnabled(false)
	log.Printf("[SceneManager] %s 完成，准备切换到 %s", sm.currentKind, next)
}

// SwitchTo changes the active scene to the provided scene immediately.
// 不改变 CurrentKind，主要用于工具和测试
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.generation++
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentKind 返回当前场景类型
func (sm *SceneManager) CurrentKind() SceneKind {
	return sm.currentKind
}

// IsTransitioning 是否处于场景切换过渡中
func (sm *SceneManager) IsTransitioning() bool {
	return sm.fade != fadeNone
}

// FadeAlpha 当前过渡遮罩的透明度（0~1）
func (sm *SceneManager) FadeAlpha() float64 {
	if sm.fadeDuration <= 0 {
		return 0
	}
	p := sm.fadeElapsed / sm.fadeDuration
	if p > 1 {
		p = 1
	}
	switch sm.fade {
	case fadeOut:
		return p
	case fadeIn:
		return 1 - p
	}
	return 0
}

// Update updates the currently active scene and advances the transition.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}

	switch sm.fade {
	case fadeOut:
		sm.fadeElapsed += deltaTime
		if sm.fadeElapsed >= sm.fadeDuration {
			sm.enter(sm.pendingKind)
			sm.fade = fadeIn
			sm.fadeElapsed = 0
			sm.setInputEnabled(false)
		}
	case fadeIn:
		sm.fadeElapsed += deltaTime
		if sm.fadeElapsed >= sm.fadeDuration {
			sm.fade = fadeNone
			sm.fadeElapsed = 0
			sm.setInputEnabled(true)
			log.Printf("[SceneManager] 过渡完成: %s", sm.currentKind)
		}
	}
}

// setInputEnabled 通知当前场景输入是否可用
func (sm *SceneManager) setInputEnabled(enabled bool) {
	if blocker, ok := sm.currentScene.(InputBlocker); ok {
		blocker.SetInputEnabled(enabled)
	}
}

// Draw renders the currently active scene and the transition overlay.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}

	if alpha := sm.FadeAlpha(); alpha > 0 {
		c := sm.fadeColor
		c.R = uint8(float64(c.R) * alpha)
		c.G = uint8(float64(c.G) * alpha)
		c.B = uint8(float64(c.B) * alpha)
		c.A = uint8(float64(c.A) * alpha)
		b := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
	}
}

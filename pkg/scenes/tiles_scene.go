package scenes

import (
	"log"

	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/game"
	"github.com/decker502/lovenote/pkg/systems"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TilesScene 卡片揭示场景
//
// 把指针事件翻译为 TileRevealSystem 的 Handle* 调用：
//   - 按下时记录最上层卡片，移动超过阈值后开始拖拽
//   - 所有封面移开后爱心卡片放大脉动，同时喷发彩纸并播放音效
//   - 点击爱心卡片后通知 SceneManager 前进
type TilesScene struct {
	deps          Deps
	entityManager *ecs.EntityManager

	reveal   *systems.TileRevealSystem
	motion   *systems.TileMotionSystem
	hint     *systems.SwipeHintSystem
	confetti *systems.ConfettiSystem

	render     *systems.RenderSystem
	tileRender *systems.TileRenderSystem

	tracker      *utils.PointerTracker
	pressedTile  int
	inputEnabled bool
}

// NewTilesScene 创建卡片揭示场景
// onComplete 在爱心卡片被点击后调用一次
func NewTilesScene(deps Deps, onComplete func()) *TilesScene {
	em := ecs.NewEntityManager()
	w, h := deps.screenSize()

	s := &TilesScene{
		deps:          deps,
		entityManager: em,
		tracker:       utils.NewPointerTracker(deps.Config.Tiles.DragSlop),
		pressedTile:   config.NoTile,
		inputEnabled:  true,
	}

	s.reveal = systems.NewTileRevealSystem(em, deps.Config, deps.Rand, onComplete)
	s.motion = systems.NewTileMotionSystem(em, deps.Config.Tiles)
	s.hint = systems.NewSwipeHintSystem(em)
	s.confetti = systems.NewConfettiSystem(em, deps.Rand, w, h)
	s.render = systems.NewRenderSystem(em)
	s.tileRender = systems.NewTileRenderSystem(em, s.reveal, s.hint, deps.Config.Tiles, deps.font(game.FontItalic, fontSizeCaption))

	s.reveal.SetTileRevealedCallback(func(int) {
		deps.playSound(game.SoundPop)
	})
	s.reveal.SetFinalAnimationCallback(func() {
		s.confetti.Fire(deps.Config.Confetti.Tiles, nil)
		deps.playSound(game.SoundChime)
	})

	log.Printf("[TilesScene] Created")
	return s
}

// SetInputEnabled 实现 game.InputBlocker
func (s *TilesScene) SetInputEnabled(enabled bool) {
	s.inputEnabled = enabled
	if !enabled {
		s.cancelPointer()
	}
}

// Reveal 返回卡片揭示系统
func (s *TilesScene) Reveal() *systems.TileRevealSystem {
	return s.reveal
}

// Confetti 返回彩纸系统
func (s *TilesScene) Confetti() *systems.ConfettiSystem {
	return s.confetti
}

// Update 处理输入并推进所有系统
func (s *TilesScene) Update(deltaTime float64) {
	if s.inputEnabled {
		for _, ev := range s.tracker.Feed(s.deps.input().Pointer()) {
			s.handlePointer(ev)
		}
	}

	s.reveal.Update(deltaTime)
	s.motion.Update(deltaTime)
	s.hint.Update(deltaTime)
	s.confetti.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// handlePointer 把指针事件分发给卡片揭示系统
func (s *TilesScene) handlePointer(ev utils.PointerEvent) {
	switch ev.Kind {
	case utils.PointerMove:
		if !s.tracker.IsDragging() {
			s.reveal.HandleActivity()
		}

	case utils.PointerPress:
		s.reveal.HandleActivity()
		s.pressedTile = s.reveal.TopTileAt(ev.X, ev.Y)

	case utils.PointerDragStart:
		if s.pressedTile != config.NoTile {
			s.reveal.HandleDragStart(s.pressedTile)
			s.reveal.HandleDragMove(s.pressedTile, ev.DX, ev.DY)
		}

	case utils.PointerDragMove:
		if s.pressedTile != config.NoTile {
			s.reveal.HandleDragMove(s.pressedTile, ev.DX, ev.DY)
		}

	case utils.PointerDragEnd:
		if s.pressedTile != config.NoTile {
			s.reveal.HandleDragEnd(s.pressedTile, ev.DX, ev.DY)
		}
		s.pressedTile = config.NoTile

	case utils.PointerClick:
		if s.pressedTile == config.TerminalTileID {
			s.reveal.HandleTerminalClick()
		}
		s.pressedTile = config.NoTile
	}
}

// cancelPointer 放弃当前拖拽，卡片弹回原位
func (s *TilesScene) cancelPointer() {
	if s.pressedTile != config.NoTile && s.tracker.IsDragging() {
		s.reveal.HandleDragEnd(s.pressedTile, 0, 0)
	}
	s.pressedTile = config.NoTile
	s.tracker.Reset()
}

// Draw 绘制卡片、提示、说明文字和彩纸
func (s *TilesScene) Draw(screen *ebiten.Image) {
	screen.Fill(systems.ColorBackground)
	s.tileRender.Draw(screen)
	s.tileRender.DrawCaption(screen, s.deps.Messages.Tiles.FinalCaption)
	s.tileRender.DrawSwipeHint(screen, s.deps.Messages.Tiles.SwipeHint)
	s.render.DrawConfetti(screen)
}

package scenes

import (
	"log"

	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/game"
	"github.com/decker502/lovenote/pkg/systems"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 布局
const (
	proposalAreaOffsetY = 30.0 // 游戏区域相对屏幕中心下移
	proposalQuestionGap = 36.0 // 问题文字距区域顶部
	proposalEnterSlide  = 24.0 // 入场时按钮上移的距离
)

// ProposalScene 求婚小游戏场景
//
// 游戏区域居中显示，"No"按钮在指针进入区域后开始躲避；
// 点击"Yes"喷发彩纸并弹出对话框。这是最后一个场景，不会触发完成回调。
type ProposalScene struct {
	deps          Deps
	entityManager *ecs.EntityManager

	game     *systems.ProposalGameSystem
	toasts   *systems.ToastSystem
	confetti *systems.ConfettiSystem

	render      *systems.RenderSystem
	buttons     *systems.ButtonRenderSystem
	dialog      *systems.DialogRenderSystem
	toastRender *systems.ToastRenderSystem

	questionFont *text.GoTextFace

	area         utils.Rect // 游戏区域（屏幕坐标）
	tracker      *utils.PointerTracker
	pointerX     float64
	pointerY     float64
	pointerIn    bool
	inputEnabled bool
}

// NewProposalScene 创建小游戏场景
func NewProposalScene(deps Deps, onComplete func()) *ProposalScene {
	em := ecs.NewEntityManager()
	w, h := deps.screenSize()
	cfg := deps.Config.Game

	s := &ProposalScene{
		deps:          deps,
		entityManager: em,
		area:          utils.CenteredRect(w/2, h/2+proposalAreaOffsetY, cfg.AreaWidth, cfg.AreaHeight),
		tracker:       utils.NewPointerTracker(deps.Config.Tiles.DragSlop),
		pointerX:      -1,
		pointerY:      -1,
		inputEnabled:  true,
		questionFont:  deps.font(game.FontBold, fontSizeTitle),
	}

	s.toasts = systems.NewToastSystem(em, cfg.ToastDuration)
	s.confetti = systems.NewConfettiSystem(em, deps.Rand, w, h)
	s.game = systems.NewProposalGameSystem(em, cfg, deps.Messages, deps.Rand, systems.ProposalCallbacks{
		OnToast: func(title, message string) {
			s.toasts.Show(title, message)
			deps.playSound(game.SoundPop)
		},
		OnAccept: func() {
			s.confetti.Fire(deps.Config.Confetti.Proposal, nil)
			deps.playSound(game.SoundChime)
		},
	})

	s.render = systems.NewRenderSystem(em)
	s.buttons = systems.NewButtonRenderSystem(deps.font(game.FontBold, fontSizeButton))
	s.dialog = systems.NewDialogRenderSystem(em, w, h,
		deps.font(game.FontBold, fontSizeTitle), deps.font(game.FontRegular, fontSizeBody), s.buttons)
	s.toastRender = systems.NewToastRenderSystem(em, w, h,
		deps.font(game.FontBold, fontSizeBody), deps.font(game.FontRegular, fontSizeBody))

	log.Printf("[ProposalScene] Created, area at (%.0f, %.0f)", s.area.X, s.area.Y)
	return s
}

// SetInputEnabled 实现 game.InputBlocker
func (s *ProposalScene) SetInputEnabled(enabled bool) {
	s.inputEnabled = enabled
	if !enabled {
		s.tracker.Reset()
	}
}

// Game 返回小游戏系统
func (s *ProposalScene) Game() *systems.ProposalGameSystem {
	return s.game
}

// Toasts 返回提示消息系统
func (s *ProposalScene) Toasts() *systems.ToastSystem {
	return s.toasts
}

// Confetti 返回彩纸系统
func (s *ProposalScene) Confetti() *systems.ConfettiSystem {
	return s.confetti
}

// Area 游戏区域（屏幕坐标）
func (s *ProposalScene) Area() utils.Rect {
	return s.area
}

// toLocal 屏幕坐标转游戏区域坐标
func (s *ProposalScene) toLocal(x, y float64) (float64, float64) {
	return x - s.area.X, y - s.area.Y
}

// Update 处理输入并推进所有系统
func (s *ProposalScene) Update(deltaTime float64) {
	if s.inputEnabled {
		input := s.deps.input()
		for _, ev := range s.tracker.Feed(input.Pointer()) {
			s.handlePointer(ev)
		}
		if input.KeyJustPressed(ebiten.KeyEscape) {
			s.game.HandleDialogClose()
		}
	}

	s.game.Update(deltaTime)
	s.toasts.Update(deltaTime)
	s.confetti.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

func (s *ProposalScene) handlePointer(ev utils.PointerEvent) {
	switch ev.Kind {
	case utils.PointerMove, utils.PointerDragMove:
		s.pointerX, s.pointerY = ev.X, ev.Y
		inside := s.area.Contains(ev.X, ev.Y)
		if inside && !s.pointerIn {
			s.game.HandlePointerEnter()
		}
		s.pointerIn = inside
		if inside {
			s.game.HandlePointerMove(s.toLocal(ev.X, ev.Y))
		}

	case utils.PointerClick:
		s.handleClick(ev.X, ev.Y)
	}
}

// handleClick 对话框打开时只响应关闭按钮和对话框外部
func (s *ProposalScene) handleClick(x, y float64) {
	if dialog := s.game.Dialog(); dialog != nil && dialog.IsVisible {
		if s.dialog.CloseButtonRect(dialog).Contains(x, y) || !s.dialog.DialogRect(dialog).Contains(x, y) {
			s.game.HandleDialogClose()
		}
		return
	}

	lx, ly := s.toLocal(x, y)
	switch {
	case s.game.AcceptRect().Contains(lx, ly):
		s.game.HandleAcceptClick()
	case s.game.DeclineRect().Contains(lx, ly):
		s.game.HandleDeclineClick()
	}
}

// screenRect 区域坐标矩形转屏幕坐标，并叠加入场位移
func (s *ProposalScene) screenRect(r utils.Rect, enter float64) utils.Rect {
	r.X += s.area.X
	r.Y += s.area.Y + (1-enter)*proposalEnterSlide
	return r
}

// Draw 绘制问题和按钮，其上依次是提示、对话框、彩纸
func (s *ProposalScene) Draw(screen *ebiten.Image) {
	screen.Fill(systems.ColorBackground)

	enter := s.game.EnterProgress()
	cx, _ := s.area.Center()
	utils.FillHeart(screen, cx, s.area.Y-proposalQuestionGap-60, 48, utils.WithAlpha(systems.ColorPink, enter))
	systems.DrawCenteredText(screen, s.deps.Messages.Game.Question, cx, s.area.Y-proposalQuestionGap, s.questionFont, systems.ColorInk, enter)

	dialogOpen := s.game.DialogOpen()
	hover := func(r utils.Rect) bool {
		return !dialogOpen && r.Contains(s.pointerX, s.pointerY)
	}

	accept := s.screenRect(s.game.AcceptRect(), enter)
	decline := s.screenRect(s.game.DeclineRect(), enter)
	s.buttons.DrawButton(screen, accept, s.deps.Messages.Game.AcceptLabel, systems.AcceptButtonStyle, hover(accept), enter)
	s.buttons.DrawButton(screen, decline, s.deps.Messages.Game.DeclineLabel, systems.DeclineButtonStyle, hover(decline), enter)

	s.toastRender.Draw(screen)
	s.dialog.Draw(screen, s.pointerX, s.pointerY)
	s.render.DrawConfetti(screen)
}

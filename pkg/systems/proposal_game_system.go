package systems

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
)

// 按钮初始布局（相对游戏区域的比例，按钮中心）
const (
	acceptCenterX  = 0.3
	declineCenterX = 0.7
	buttonCenterY  = 0.5
)

// ProposalCallbacks 小游戏对外通知
type ProposalCallbacks struct {
	// OnToast 点击"No"后显示一条提示
	OnToast func(title, message string)
	// OnAccept 点击"Yes"（彩纸、音效）
	OnAccept func()
}

// ProposalGameSystem 求婚小游戏
//
// 坐标均为游戏区域内的局部坐标，由场景负责与屏幕坐标换算。
// 对话框打开期间忽略区域内的所有输入。
type ProposalGameSystem struct {
	entityManager *ecs.EntityManager
	config        config.GameConfig
	messages      config.GameMessages
	cuteMessages  []string
	rng           *rand.Rand
	callbacks     ProposalCallbacks

	gameEntity ecs.EntityID
}

// NewProposalGameSystem 创建小游戏系统
//
// 参数：
//   - em: 实体管理器
//   - cfg: 小游戏配置
//   - msgs: 文案（按钮、对话框、随机提示池）
//   - rng: 随机源（按钮位置、提示选择）
//   - callbacks: 对外通知
func NewProposalGameSystem(em *ecs.EntityManager, cfg config.GameConfig, msgs *config.MessagesConfig, rng *rand.Rand, callbacks ProposalCallbacks) *ProposalGameSystem {
	s := &ProposalGameSystem{
		entityManager: em,
		config:        cfg,
		messages:      msgs.Game,
		cuteMessages:  msgs.CuteMessages,
		rng:           rng,
		callbacks:     callbacks,
	}

	w, h := cfg.DeclineButton.Width, cfg.DeclineButton.Height
	x := cfg.AreaWidth*declineCenterX - w/2
	y := cfg.AreaHeight*buttonCenterY - h/2

	s.gameEntity = em.CreateEntity()
	em.AddComponent(s.gameEntity, &components.ProposalGameComponent{})
	em.AddComponent(s.gameEntity, &components.DeclineButtonComponent{
		X:            x,
		Y:            y,
		Scale:        1,
		Width:        w,
		Height:       h,
		DisplayX:     x,
		DisplayY:     y,
		FromX:        x,
		FromY:        y,
		MoveElapsed:  cfg.MoveDuration,
		DisplayScale: 1,
		FromScale:    1,
		ScaleElapsed: cfg.ScaleDuration,
	})
	em.AddComponent(s.gameEntity, &components.DialogComponent{
		Title:       msgs.Game.DialogTitle,
		Message:     msgs.Game.DialogMessage,
		ButtonLabel: msgs.Game.CloseLabel,
		Width:       320,
		Height:      200,
	})

	log.Printf("[ProposalGameSystem] Initialized (Entity ID: %d), area %.0fx%.0f", s.gameEntity, cfg.AreaWidth, cfg.AreaHeight)
	return s
}

// Game 返回小游戏状态
func (s *ProposalGameSystem) Game() *components.ProposalGameComponent {
	game, _ := ecs.GetComponent[*components.ProposalGameComponent](s.entityManager, s.gameEntity)
	return game
}

// Decline 返回"No"按钮状态
func (s *ProposalGameSystem) Decline() *components.DeclineButtonComponent {
	btn, _ := ecs.GetComponent[*components.DeclineButtonComponent](s.entityManager, s.gameEntity)
	return btn
}

// Dialog 返回对话框状态
func (s *ProposalGameSystem) Dialog() *components.DialogComponent {
	dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, s.gameEntity)
	return dialog
}

// DialogOpen 对话框是否打开
func (s *ProposalGameSystem) DialogOpen() bool {
	dialog := s.Dialog()
	return dialog != nil && dialog.IsVisible
}

// HandlePointerEnter 指针进入游戏区域：按钮开始躲避
func (s *ProposalGameSystem) HandlePointerEnter() {
	btn := s.Decline()
	if btn == nil || s.DialogOpen() {
		return
	}
	s.activate(btn)
}

// activate 启用躲避，初始布局位置已经是像素坐标
func (s *ProposalGameSystem) activate(btn *components.DeclineButtonComponent) {
	if btn.IsMoving {
		return
	}
	btn.IsMoving = true
	log.Printf("[ProposalGameSystem] Decline button starts moving at (%.1f, %.1f)", btn.X, btn.Y)
}

// HandlePointerMove 指针在区域内移动
// 指针靠近按钮中心到 Proximity 以内时按钮逃开；非法坐标被丢弃
func (s *ProposalGameSystem) HandlePointerMove(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		log.Printf("[ProposalGameSystem] Dropping invalid pointer position (%v, %v)", x, y)
		return
	}

	btn := s.Decline()
	if btn == nil || !btn.IsMoving || s.DialogOpen() {
		return
	}

	cx := btn.X + btn.Width*btn.Scale/2
	cy := btn.Y + btn.Height*btn.Scale/2
	if utils.Distance(x, y, cx, cy) < s.config.Proximity {
		s.relocate(btn)
	}
}

// HandleDeclineClick 点击"No"
// 按钮缩小（有下限），显示一条随机提示，然后换到新位置
func (s *ProposalGameSystem) HandleDeclineClick() {
	btn := s.Decline()
	game := s.Game()
	if btn == nil || game == nil || s.DialogOpen() {
		return
	}

	game.DeclineCount++

	btn.FromScale = btn.DisplayScale
	btn.ScaleElapsed = 0
	btn.Scale = math.Max(btn.Scale*s.config.ScaleFactor, s.config.MinScale)

	if len(s.cuteMessages) > 0 && s.callbacks.OnToast != nil {
		msg := s.cuteMessages[s.rng.IntN(len(s.cuteMessages))]
		s.callbacks.OnToast(s.messages.ToastTitle, msg)
	}

	s.activate(btn)
	s.relocate(btn)
	log.Printf("[ProposalGameSystem] Decline clicked (%d), scale %.3f", game.DeclineCount, btn.Scale)
}

// HandleAcceptClick 点击"Yes"：打开对话框
//
// 返回：
//   - true: 对话框被打开
func (s *ProposalGameSystem) HandleAcceptClick() bool {
	dialog := s.Dialog()
	game := s.Game()
	if dialog == nil || game == nil || dialog.IsVisible {
		return false
	}

	game.AcceptCount++
	dialog.IsVisible = true
	dialog.Elapsed = 0
	log.Printf("[ProposalGameSystem] Accepted (%d)", game.AcceptCount)

	if s.callbacks.OnAccept != nil {
		s.callbacks.OnAccept()
	}
	return true
}

// HandleDialogClose 关闭对话框，其他状态不变
func (s *ProposalGameSystem) HandleDialogClose() {
	dialog := s.Dialog()
	if dialog == nil || !dialog.IsVisible {
		return
	}
	dialog.IsVisible = false
	log.Printf("[ProposalGameSystem] Dialog closed")
}

// DeclineBounds 给定缩放下按钮左上角的合法范围
// 区域过小时上界退化为 Padding
func (s *ProposalGameSystem) DeclineBounds(scale float64) (minX, maxX, minY, maxY float64) {
	btn := s.Decline()
	w, h := s.config.DeclineButton.Width, s.config.DeclineButton.Height
	if btn != nil {
		w, h = btn.Width, btn.Height
	}

	pad := s.config.Padding
	maxX = math.Max(pad, s.config.AreaWidth-w*scale-pad)
	maxY = math.Max(pad, s.config.AreaHeight-h*scale-pad)
	return pad, maxX, pad, maxY
}

// relocate 把按钮移到区域内的随机位置
func (s *ProposalGameSystem) relocate(btn *components.DeclineButtonComponent) {
	minX, maxX, minY, maxY := s.DeclineBounds(btn.Scale)

	btn.FromX, btn.FromY = btn.DisplayX, btn.DisplayY
	btn.MoveElapsed = 0
	btn.X = minX + s.rng.Float64()*(maxX-minX)
	btn.Y = minY + s.rng.Float64()*(maxY-minY)
}

// Update 推进按钮和对话框动画
func (s *ProposalGameSystem) Update(deltaTime float64) {
	if game := s.Game(); game != nil {
		game.Elapsed += deltaTime
	}

	if btn := s.Decline(); btn != nil {
		btn.MoveElapsed += deltaTime
		p := utils.EaseOutCubic(utils.Progress(btn.MoveElapsed, 0, s.config.MoveDuration))
		btn.DisplayX = utils.Lerp(btn.FromX, btn.X, p)
		btn.DisplayY = utils.Lerp(btn.FromY, btn.Y, p)

		btn.ScaleElapsed += deltaTime
		sp := utils.EaseOutCubic(utils.Progress(btn.ScaleElapsed, 0, s.config.ScaleDuration))
		btn.DisplayScale = utils.Lerp(btn.FromScale, btn.Scale, sp)
	}

	if dialog := s.Dialog(); dialog != nil && dialog.IsVisible {
		dialog.Elapsed += deltaTime
	}
}

// EnterProgress 入场动画进度（已缓动，0~1）
func (s *ProposalGameSystem) EnterProgress() float64 {
	game := s.Game()
	if game == nil {
		return 1
	}
	return utils.EaseOutCubic(utils.Progress(game.Elapsed, s.config.EnterDelay, s.config.EnterDuration))
}

// AcceptRect "Yes"按钮矩形（区域坐标）
func (s *ProposalGameSystem) AcceptRect() utils.Rect {
	return utils.CenteredRect(
		s.config.AreaWidth*acceptCenterX,
		s.config.AreaHeight*buttonCenterY,
		s.config.AcceptButton.Width,
		s.config.AcceptButton.Height,
	)
}

// DeclineRect "No"按钮当前渲染矩形（区域坐标）
func (s *ProposalGameSystem) DeclineRect() utils.Rect {
	btn := s.Decline()
	if btn == nil {
		return utils.Rect{}
	}
	return utils.Rect{
		X: btn.DisplayX,
		Y: btn.DisplayY,
		W: btn.Width * btn.DisplayScale,
		H: btn.Height * btn.DisplayScale,
	}
}

// AreaRect 游戏区域矩形（区域坐标）
func (s *ProposalGameSystem) AreaRect() utils.Rect {
	return utils.Rect{W: s.config.AreaWidth, H: s.config.AreaHeight}
}

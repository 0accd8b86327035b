package systems

import (
	"log"
	"math"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
)

// letterTransitions 阶段转换表
// 表中没有的 (阶段, 事件) 组合一律拒绝
var letterTransitions = map[components.LetterPhase]map[components.LetterEvent]components.LetterPhase{
	components.LetterPhaseHidden: {
		components.LetterEventEnvelopeOpened: components.LetterPhasePartial,
	},
	components.LetterPhasePartial: {
		components.LetterEventClick: components.LetterPhaseFull,
	},
	components.LetterPhaseFull: {
		components.LetterEventClick: components.LetterPhaseShrinking,
	},
	components.LetterPhaseShrinking: {
		components.LetterEventShrinkFinished: components.LetterPhaseShrinking,
	},
}

// NextLetterPhase 计算事件发生后的阶段（纯函数）
//
// 返回：
//   - 新阶段
//   - 事件是否被接受；被拒绝时返回原阶段
func NextLetterPhase(phase components.LetterPhase, event components.LetterEvent) (components.LetterPhase, bool) {
	next, ok := letterTransitions[phase][event]
	if !ok {
		return phase, false
	}
	return next, true
}

// letterPhaseOrder 阶段先后顺序，用于校验单调性
var letterPhaseOrder = map[components.LetterPhase]int{
	components.LetterPhaseHidden:    0,
	components.LetterPhasePartial:   1,
	components.LetterPhaseFull:      2,
	components.LetterPhaseShrinking: 3,
}

// LetterPhaseRank 返回阶段序号（hidden=0 ... shrinking=3）
func LetterPhaseRank(phase components.LetterPhase) int {
	return letterPhaseOrder[phase]
}

// LetterPhaseSystem 信件阶段状态机
//
// 动画时间线：
//   - 信封入场（透明度、缩放 0.8 → 1）
//   - 延迟后打开信封盖，完成时发出 EnvelopeOpened
//   - 信纸滑出到 partial；点击展开到 full；再次点击收回
//   - 收回动画完成时发出 ShrinkFinished，触发完成回调（只触发一次）
type LetterPhaseSystem struct {
	entityManager *ecs.EntityManager
	config        config.LetterConfig
	letterEntity  ecs.EntityID
}

// NewLetterPhaseSystem 创建信件阶段系统
//
// 参数：
//   - em: 实体管理器
//   - cfg: 信件场景配置
//   - onComplete: 信纸收回后的回调
func NewLetterPhaseSystem(em *ecs.EntityManager, cfg config.LetterConfig, onComplete func()) *LetterPhaseSystem {
	s := &LetterPhaseSystem{
		entityManager: em,
		config:        cfg,
	}

	s.letterEntity = em.CreateEntity()
	em.AddComponent(s.letterEntity, &components.LetterPhaseComponent{
		Phase:      components.LetterPhaseHidden,
		PrevPhase:  components.LetterPhaseHidden,
		OnComplete: onComplete,
	})

	log.Printf("[LetterPhaseSystem] Initialized (Entity ID: %d)", s.letterEntity)
	return s
}

// Letter 返回信件状态
func (s *LetterPhaseSystem) Letter() *components.LetterPhaseComponent {
	letter, _ := ecs.GetComponent[*components.LetterPhaseComponent](s.entityManager, s.letterEntity)
	return letter
}

// Dispatch 向状态机发送事件
//
// 返回：
//   - 事件是否被接受
func (s *LetterPhaseSystem) Dispatch(event components.LetterEvent) bool {
	letter := s.Letter()
	if letter == nil {
		return false
	}

	next, ok := NextLetterPhase(letter.Phase, event)
	if !ok {
		return false
	}

	if next != letter.Phase {
		log.Printf("[LetterPhaseSystem] %s --%s--> %s", letter.Phase, event, next)
		letter.PrevPhase = letter.Phase
		letter.Phase = next
		letter.PhaseElapsed = 0
		letter.ScrollOffset = 0
	}

	if event == components.LetterEventShrinkFinished && !letter.CompletionFired {
		letter.CompletionFired = true
		log.Printf("[LetterPhaseSystem] Letter sequence complete")
		if letter.OnComplete != nil {
			letter.OnComplete()
		}
	}
	return true
}

// HandleClick 点击信纸
func (s *LetterPhaseSystem) HandleClick() bool {
	return s.Dispatch(components.LetterEventClick)
}

// HandleScroll 滚动全文
//
// 参数：
//   - delta: 滚动距离（像素，正值向下）
//   - contentHeight: 全文高度
//   - viewHeight: 可见区域高度
func (s *LetterPhaseSystem) HandleScroll(delta, contentHeight, viewHeight float64) {
	letter := s.Letter()
	if letter == nil || letter.Phase != components.LetterPhaseFull {
		return
	}
	maxOffset := math.Max(0, contentHeight-viewHeight)
	letter.ScrollOffset = utils.Clamp(letter.ScrollOffset+delta, 0, maxOffset)
}

// Update 推进时间线并发出动画完成事件
func (s *LetterPhaseSystem) Update(deltaTime float64) {
	letter := s.Letter()
	if letter == nil {
		return
	}

	letter.Elapsed += deltaTime
	letter.PhaseElapsed += deltaTime

	if !letter.EnvelopeOpen && letter.Elapsed >= s.config.FlapDelay+s.config.FlapDuration {
		letter.EnvelopeOpen = true
		s.Dispatch(components.LetterEventEnvelopeOpened)
	}

	if letter.Phase == components.LetterPhaseShrinking && !letter.CompletionFired &&
		letter.PhaseElapsed >= s.config.ShrinkDuration {
		s.Dispatch(components.LetterEventShrinkFinished)
	}
}

// TransitionProgress 当前阶段过渡动画进度（已缓动，0~1）
func (s *LetterPhaseSystem) TransitionProgress() float64 {
	letter := s.Letter()
	if letter == nil {
		return 1
	}

	delay, duration := 0.0, 0.0
	switch letter.Phase {
	case components.LetterPhasePartial:
		delay, duration = s.config.PartialDelay, s.config.SlideDuration
	case components.LetterPhaseFull:
		duration = s.config.ExpandDuration
	case components.LetterPhaseShrinking:
		duration = s.config.ShrinkDuration
	}
	return utils.EaseOutCubic(utils.Progress(letter.PhaseElapsed, delay, duration))
}

// EnvelopeEnterProgress 信封入场进度（已缓动，0~1）
func (s *LetterPhaseSystem) EnvelopeEnterProgress() float64 {
	letter := s.Letter()
	if letter == nil {
		return 1
	}
	return utils.EaseOutCubic(utils.Progress(letter.Elapsed, 0, s.config.EnvelopeEnterDuration))
}

// FlapProgress 信封盖打开进度（已缓动，0~1）
func (s *LetterPhaseSystem) FlapProgress() float64 {
	letter := s.Letter()
	if letter == nil {
		return 1
	}
	return utils.EaseInOutCubic(utils.Progress(letter.Elapsed, s.config.FlapDelay, s.config.FlapDuration))
}

// EnvelopeStyle 信封的透明度和缩放
// 全文阶段信封淡出隐藏，收回阶段保持隐藏并缩小到 0.8
func (s *LetterPhaseSystem) EnvelopeStyle() (alpha, scale float64) {
	letter := s.Letter()
	if letter == nil {
		return 1, 1
	}

	enter := s.EnvelopeEnterProgress()
	alpha, scale = enter, 0.8+0.2*enter

	switch letter.Phase {
	case components.LetterPhaseFull:
		alpha *= 1 - s.TransitionProgress()
	case components.LetterPhaseShrinking:
		alpha, scale = 0, 0.8
	}
	return alpha, scale
}

// TextAlpha 信纸文字透明度
// 进入全文阶段时文字重新淡入
func (s *LetterPhaseSystem) TextAlpha() float64 {
	letter := s.Letter()
	if letter == nil || letter.Phase != components.LetterPhaseFull {
		return 1
	}
	return utils.Progress(letter.PhaseElapsed, 0, s.config.TextFadeDuration)
}

// ShowsFullText 当前阶段是否显示全文
func ShowsFullText(phase components.LetterPhase) bool {
	return phase == components.LetterPhaseFull || phase == components.LetterPhaseShrinking
}

// LetterPaperRect 计算某一阶段信纸的位置和尺寸（纯函数）
//
// 参数：
//   - phase: 信纸阶段
//   - container: 信封容器矩形
//   - viewport: 屏幕矩形
//   - inset: 全文阶段信纸距屏幕边缘的距离
//
// 规则：
//   - 非全文阶段：宽 90%、高 95%，水平居中，底部对齐容器；
//     hidden 时再下移自身高度的 60%，partial/shrinking 时下移 10%
//   - 全文阶段：占满视口，四周留 inset
func LetterPaperRect(phase components.LetterPhase, container, viewport utils.Rect, inset float64) utils.Rect {
	if phase == components.LetterPhaseFull {
		return viewport.Inset(inset)
	}

	w := container.W * 0.9
	h := container.H * 0.95
	r := utils.Rect{
		X: container.X + container.W*0.05,
		Y: container.Y + container.H - h,
		W: w,
		H: h,
	}

	if phase == components.LetterPhaseHidden {
		r.Y += h * 0.6
	} else {
		r.Y += h * 0.1
	}
	return r
}

// LetterPaperAlpha 某一阶段信纸的透明度和缩放
func LetterPaperAlpha(phase components.LetterPhase) (alpha, scale float64) {
	if phase == components.LetterPhaseHidden {
		return 0, 0.9
	}
	return 1, 1
}

// PaperRect 当前帧信纸矩形：在上一阶段和当前阶段之间插值
func (s *LetterPhaseSystem) PaperRect(container, viewport utils.Rect) utils.Rect {
	letter := s.Letter()
	if letter == nil {
		return LetterPaperRect(components.LetterPhaseHidden, container, viewport, s.config.ViewportInset)
	}

	from := LetterPaperRect(letter.PrevPhase, container, viewport, s.config.ViewportInset)
	to := LetterPaperRect(letter.Phase, container, viewport, s.config.ViewportInset)
	return utils.LerpRect(from, to, s.TransitionProgress())
}

// PaperStyle 当前帧信纸的透明度和缩放
func (s *LetterPhaseSystem) PaperStyle() (alpha, scale float64) {
	letter := s.Letter()
	if letter == nil {
		return LetterPaperAlpha(components.LetterPhaseHidden)
	}

	fromA, fromS := LetterPaperAlpha(letter.PrevPhase)
	toA, toS := LetterPaperAlpha(letter.Phase)
	p := s.TransitionProgress()
	return utils.Lerp(fromA, toA, p), utils.Lerp(fromS, toS, p)
}

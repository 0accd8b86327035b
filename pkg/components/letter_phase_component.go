package components

// LetterPhase 信纸阶段
type LetterPhase string

// LetterPhase 常量
//
// 阶段只能单向推进：hidden → partial → full → shrinking
const (
	// LetterPhaseHidden 信纸藏在信封内
	LetterPhaseHidden LetterPhase = "hidden"

	// LetterPhasePartial 信纸露出一部分，显示摘录
	LetterPhasePartial LetterPhase = "partial"

	// LetterPhaseFull 信纸展开占满视口，显示全文
	LetterPhaseFull LetterPhase = "full"

	// LetterPhaseShrinking 信纸收回，动画结束后场景完成
	LetterPhaseShrinking LetterPhase = "shrinking"
)

// LetterEvent 推动阶段变化的事件
type LetterEvent string

// LetterEvent 常量
const (
	// LetterEventEnvelopeOpened 信封盖打开动画完成
	LetterEventEnvelopeOpened LetterEvent = "envelope_opened"

	// LetterEventClick 点击信纸
	LetterEventClick LetterEvent = "click"

	// LetterEventShrinkFinished 收回动画完成
	LetterEventShrinkFinished LetterEvent = "shrink_finished"
)

// LetterPhaseComponent 信件场景状态
type LetterPhaseComponent struct {
	// Phase 当前阶段
	Phase LetterPhase

	// PrevPhase 上一阶段，渲染时在两个阶段的几何之间插值
	PrevPhase LetterPhase

	// PhaseElapsed 进入当前阶段后经过的时间（秒）
	PhaseElapsed float64

	// Elapsed 场景挂载后经过的时间（秒），驱动信封入场和开盖
	Elapsed float64

	// EnvelopeOpen 信封盖已打开
	EnvelopeOpen bool

	// CompletionFired 完成回调已触发（只触发一次）
	CompletionFired bool

	// ScrollOffset 全文阶段的垂直滚动距离（像素）
	ScrollOffset float64

	// OnComplete 收回动画结束后的回调
	OnComplete func()
}

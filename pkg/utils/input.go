// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 某一帧的指针采样（鼠标或第一个触摸点）
type PointerSample struct {
	// Pressed 鼠标左键按下或存在活动触摸
	Pressed bool
	// X, Y 指针位置（逻辑屏幕坐标）
	X, Y int
	// IsTouch 是否来自触摸输入
	IsTouch bool
	// Valid 位置是否有效（触摸抬起后没有悬停位置）
	Valid bool
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// SamplePointer 采集当前帧的指针状态
// 同时支持鼠标和触摸输入，优先检测触摸
func SamplePointer() PointerSample {
	// 首先检查活动触摸（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return PointerSample{Pressed: true, X: x, Y: y, IsTouch: true, Valid: true}
	}

	// 触摸刚刚释放：使用保存的最后触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerSample{Pressed: false, X: lastTouchX, Y: lastTouchY, IsTouch: true, Valid: true}
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
		Valid:   true,
	}
}

// WheelDelta 返回当前帧的垂直滚轮增量（向上滚动为正）
func WheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerMove 指针移动（悬停或按住时都会产生）
	PointerMove PointerEventKind = iota
	// PointerPress 按下
	PointerPress
	// PointerDragStart 按下后移动超过阈值，开始拖拽
	PointerDragStart
	// PointerDragMove 拖拽中移动
	PointerDragMove
	// PointerDragEnd 拖拽结束（释放）
	PointerDragEnd
	// PointerClick 按下后未拖拽即释放
	PointerClick
)

// PointerEvent 指针事件
type PointerEvent struct {
	Kind PointerEventKind
	// X, Y 事件发生时的指针位置
	X, Y float64
	// StartX, StartY 按下位置（拖拽与点击事件有效）
	StartX, StartY float64
	// DX, DY 相对按下位置的偏移（拖拽事件有效）
	DX, DY float64
	// IsTouch 是否来自触摸输入
	IsTouch bool
}

// PointerTracker 将逐帧采样转换为按下/拖拽/点击事件
//
// 与 ebiten 解耦：场景每帧调用 SamplePointer() 后交给 Feed()，
// 测试中可以直接构造 PointerSample 序列。
type PointerTracker struct {
	slop float64

	wasPressed bool
	dragging   bool
	hasLast    bool
	lastX      float64
	lastY      float64
	startX     float64
	startY     float64
}

// NewPointerTracker 创建指针跟踪器
// slop: 按下后移动超过该距离才视为拖拽（像素）
func NewPointerTracker(slop float64) *PointerTracker {
	return &PointerTracker{slop: slop}
}

// IsDragging 当前是否处于拖拽中
func (pt *PointerTracker) IsDragging() bool {
	return pt.dragging
}

// Reset 丢弃当前按下/拖拽状态（场景切换时调用）
func (pt *PointerTracker) Reset() {
	*pt = PointerTracker{slop: pt.slop}
}

// Feed 输入一帧采样，返回本帧产生的事件（按发生顺序）
func (pt *PointerTracker) Feed(s PointerSample) []PointerEvent {
	if !s.Valid {
		return nil
	}

	var events []PointerEvent
	x, y := float64(s.X), float64(s.Y)
	base := PointerEvent{X: x, Y: y, IsTouch: s.IsTouch}

	moved := !pt.hasLast || x != pt.lastX || y != pt.lastY

	switch {
	case s.Pressed && !pt.wasPressed:
		pt.startX, pt.startY = x, y
		pt.dragging = false
		if moved {
			events = append(events, withKind(base, PointerMove))
		}
		press := withKind(base, PointerPress)
		press.StartX, press.StartY = x, y
		events = append(events, press)

	case s.Pressed && pt.wasPressed:
		if moved {
			events = append(events, withKind(base, PointerMove))
		}
		dx, dy := x-pt.startX, y-pt.startY
		if !pt.dragging && Distance(0, 0, dx, dy) > pt.slop {
			pt.dragging = true
			events = append(events, pt.dragEvent(base, PointerDragStart))
		}
		if pt.dragging && moved {
			events = append(events, pt.dragEvent(base, PointerDragMove))
		}

	case !s.Pressed && pt.wasPressed:
		if pt.dragging {
			events = append(events, pt.dragEvent(base, PointerDragEnd))
		} else {
			click := withKind(base, PointerClick)
			click.StartX, click.StartY = pt.startX, pt.startY
			events = append(events, click)
		}
		pt.dragging = false

	default:
		// 悬停移动（仅鼠标）
		if moved && !s.IsTouch {
			events = append(events, withKind(base, PointerMove))
		}
	}

	pt.wasPressed = s.Pressed
	pt.lastX, pt.lastY = x, y
	pt.hasLast = true
	return events
}

func (pt *PointerTracker) dragEvent(base PointerEvent, kind PointerEventKind) PointerEvent {
	ev := withKind(base, kind)
	ev.StartX, ev.StartY = pt.startX, pt.startY
	ev.DX, ev.DY = base.X-pt.startX, base.Y-pt.startY
	return ev
}

func withKind(ev PointerEvent, kind PointerEventKind) PointerEvent {
	ev.Kind = kind
	return ev
}

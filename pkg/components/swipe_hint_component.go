package components

// SwipeHintComponent 滑动提示（手势图标 + 文字）
//
// 可见性由 TileBoardComponent.HintVisible 决定，
// 本组件只记录动画进度：显示时淡入，手势按固定周期左右滑动。
type SwipeHintComponent struct {
	Visible bool
	Elapsed float64 // 本次显示后经过的时间（秒）
	Alpha   float64 // 整体透明度

	// HandOffset 手势水平偏移（相对手势宽度的比例，-1 ~ 0）
	HandOffset float64
	// HandAlpha 手势透明度
	HandAlpha float64
}

// 滑动提示动画常量（秒）
const (
	SwipeHintAppearDelay    = 0.2
	SwipeHintAppearDuration = 0.5
	SwipeHintCycleDuration  = 2.5
	SwipeHintRepeatDelay    = 0.5
)

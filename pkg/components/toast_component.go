package components

// ToastComponent 短暂显示的提示消息
//
// 同一时间最多显示一条，新消息替换旧消息。
type ToastComponent struct {
	Title    string
	Message  string
	Elapsed  float64 // 显示后经过的时间（秒）
	Duration float64 // 总显示时长（秒），超时后实体被销毁
}

// 提示消息淡入淡出时长（秒）
const ToastFadeDuration = 0.2

package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如无操作提示、最终卡片的揭示延迟）
//
// 计时器可以被重新启动或取消：重新启动会覆盖旧的计划，
// 被取消或被覆盖的计时器不会再触发。
type TimerComponent struct {
	Name        string  // 计时器名称，如 "idle_hint"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	IsActive    bool    // 计时器是否正在计时
}

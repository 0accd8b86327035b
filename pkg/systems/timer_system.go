package systems

import (
	"github.com/decker502/lovenote/pkg/components"
)

// StartTimer 启动（或重新启动）计时器
// 旧的计划被覆盖，不会再触发
func StartTimer(timer *components.TimerComponent, target float64) {
	timer.TargetTime = target
	timer.CurrentTime = 0
	timer.IsReady = false
	timer.IsActive = true
}

// CancelTimer 取消计时器
func CancelTimer(timer *components.TimerComponent) {
	timer.CurrentTime = 0
	timer.IsReady = false
	timer.IsActive = false
}

// TickTimer 推进计时器
//
// 返回：
//   - true: 本帧刚好到期（只返回一次）
func TickTimer(timer *components.TimerComponent, deltaTime float64) bool {
	if !timer.IsActive {
		return false
	}

	timer.CurrentTime += deltaTime
	if timer.CurrentTime >= timer.TargetTime {
		timer.IsActive = false
		timer.IsReady = true
		return true
	}
	return false
}

package systems

import (
	"testing"

	"github.com/decker502/lovenote/pkg/components"
)

func TestTimerFiresOnce(t *testing.T) {
	timer := &components.TimerComponent{Name: "idle_hint"}
	StartTimer(timer, 1.0)

	if TickTimer(timer, 0.5) {
		t.Error("Timer should not fire before target")
	}
	if !TickTimer(timer, 0.5) {
		t.Error("Timer should fire at target")
	}
	if !timer.IsReady || timer.IsActive {
		t.Errorf("After firing: IsReady=%v IsActive=%v", timer.IsReady, timer.IsActive)
	}
	if TickTimer(timer, 1.0) {
		t.Error("Timer should fire only once")
	}
}

func TestTimerCancel(t *testing.T) {
	timer := &components.TimerComponent{}
	StartTimer(timer, 1.0)
	TickTimer(timer, 0.9)
	CancelTimer(timer)

	if TickTimer(timer, 5.0) {
		t.Error("Cancelled timer must not fire")
	}
}

func TestTimerRestartSupersedes(t *testing.T) {
	timer := &components.TimerComponent{}
	StartTimer(timer, 1.0)
	TickTimer(timer, 0.9)

	// 重新启动：旧计划被覆盖，需要重新计满
	StartTimer(timer, 1.0)
	if TickTimer(timer, 0.2) {
		t.Error("Restarted timer fired on the old schedule")
	}
	if !TickTimer(timer, 0.8) {
		t.Error("Restarted timer should fire after a full period")
	}
}

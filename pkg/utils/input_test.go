package utils

import (
	"testing"
)

func mouse(pressed bool, x, y int) PointerSample {
	return PointerSample{Pressed: pressed, X: x, Y: y, Valid: true}
}

func kinds(events []PointerEvent) []PointerEventKind {
	out := make([]PointerEventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func equalKinds(a, b []PointerEventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPointerTrackerClick(t *testing.T) {
	pt := NewPointerTracker(3)

	pt.Feed(mouse(false, 100, 100))
	if got := kinds(pt.Feed(mouse(true, 100, 100))); !equalKinds(got, []PointerEventKind{PointerPress}) {
		t.Errorf("Press frame events: got %v", got)
	}

	// 阈值以内的抖动不算拖拽
	pt.Feed(mouse(true, 102, 101))
	if pt.IsDragging() {
		t.Error("Movement within slop should not start a drag")
	}

	events := pt.Feed(mouse(false, 102, 101))
	if len(events) != 1 || events[0].Kind != PointerClick {
		t.Fatalf("Release events: got %v", kinds(events))
	}
	if events[0].StartX != 100 || events[0].StartY != 100 {
		t.Errorf("Click start: got (%v, %v), want (100, 100)", events[0].StartX, events[0].StartY)
	}
}

func TestPointerTrackerDrag(t *testing.T) {
	pt := NewPointerTracker(3)
	pt.Feed(mouse(true, 200, 300))

	events := pt.Feed(mouse(true, 260, 290))
	want := []PointerEventKind{PointerMove, PointerDragStart, PointerDragMove}
	if got := kinds(events); !equalKinds(got, want) {
		t.Fatalf("Drag start frame: got %v, want %v", got, want)
	}
	if !pt.IsDragging() {
		t.Error("Tracker should be dragging")
	}

	drag := events[2]
	if drag.DX != 60 || drag.DY != -10 {
		t.Errorf("Drag offset: got (%v, %v), want (60, -10)", drag.DX, drag.DY)
	}

	// 静止帧不产生拖拽移动
	if got := pt.Feed(mouse(true, 260, 290)); len(got) != 0 {
		t.Errorf("Stationary frame should emit nothing, got %v", kinds(got))
	}

	events = pt.Feed(mouse(false, 260, 290))
	if len(events) != 1 || events[0].Kind != PointerDragEnd {
		t.Fatalf("Release after drag: got %v", kinds(events))
	}
	if events[0].DX != 60 {
		t.Errorf("DragEnd DX: got %v, want 60", events[0].DX)
	}
	if pt.IsDragging() {
		t.Error("Tracker should stop dragging after release")
	}
}

func TestPointerTrackerHover(t *testing.T) {
	pt := NewPointerTracker(3)

	if got := kinds(pt.Feed(mouse(false, 10, 10))); !equalKinds(got, []PointerEventKind{PointerMove}) {
		t.Errorf("First hover sample: got %v", got)
	}
	if got := pt.Feed(mouse(false, 10, 10)); len(got) != 0 {
		t.Errorf("Unchanged hover should emit nothing, got %v", kinds(got))
	}
	if got := kinds(pt.Feed(mouse(false, 11, 10))); !equalKinds(got, []PointerEventKind{PointerMove}) {
		t.Errorf("Hover move: got %v", got)
	}
}

func TestPointerTrackerTouch(t *testing.T) {
	pt := NewPointerTracker(3)

	events := pt.Feed(PointerSample{Pressed: true, X: 50, Y: 50, IsTouch: true, Valid: true})
	want := []PointerEventKind{PointerMove, PointerPress}
	if got := kinds(events); !equalKinds(got, want) {
		t.Fatalf("Touch start: got %v, want %v", got, want)
	}
	if !events[1].IsTouch {
		t.Error("Touch press should be flagged IsTouch")
	}

	events = pt.Feed(PointerSample{Pressed: false, X: 50, Y: 50, IsTouch: true, Valid: true})
	if len(events) != 1 || events[0].Kind != PointerClick {
		t.Errorf("Touch tap: got %v", kinds(events))
	}
}

func TestPointerTrackerInvalidAndReset(t *testing.T) {
	pt := NewPointerTracker(3)

	if got := pt.Feed(PointerSample{Pressed: true}); got != nil {
		t.Errorf("Invalid sample should emit nothing, got %v", kinds(got))
	}

	pt.Feed(mouse(true, 0, 0))
	pt.Feed(mouse(true, 50, 0))
	if !pt.IsDragging() {
		t.Fatal("Expected drag")
	}

	pt.Reset()
	if pt.IsDragging() {
		t.Error("Reset should clear drag state")
	}
	// Reset 后持续按住视为新的按下
	if got := kinds(pt.Feed(mouse(true, 50, 0))); !equalKinds(got, []PointerEventKind{PointerMove, PointerPress}) {
		t.Errorf("After reset: got %v", got)
	}
}

package systems

import (
	"testing"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/ecs"
)

func TestToastReplacesPrevious(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewToastSystem(em, 2.0)

	s.Show("<3", "Pretty please?")
	s.Show("<3", "Is that a maybe?")

	if n := len(ecs.GetEntitiesWith1[*components.ToastComponent](em)); n != 1 {
		t.Fatalf("Expected a single toast, got %d", n)
	}
	toast, ok := s.Active()
	if !ok || toast.Message != "Is that a maybe?" {
		t.Errorf("Active toast: got %+v", toast)
	}
}

func TestToastExpires(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewToastSystem(em, 2.0)
	s.Show("<3", "Oops, try again?")

	s.Update(1.9)
	if _, ok := s.Active(); !ok {
		t.Fatal("Toast should still be visible before 2s")
	}

	s.Update(0.2)
	if _, ok := s.Active(); ok {
		t.Error("Toast should disappear after 2s")
	}
	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("Expired toast entity should be removed, %d left", em.EntityCount())
	}
}

func TestToastAlpha(t *testing.T) {
	toast := &components.ToastComponent{Duration: 2}
	if ToastAlpha(toast) != 0 {
		t.Errorf("Alpha at show: got %v", ToastAlpha(toast))
	}
	toast.Elapsed = 1
	if ToastAlpha(toast) != 1 {
		t.Errorf("Alpha mid-way: got %v", ToastAlpha(toast))
	}
	toast.Elapsed = 2
	if ToastAlpha(toast) != 0 {
		t.Errorf("Alpha at end: got %v", ToastAlpha(toast))
	}
}

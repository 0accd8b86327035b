package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTileComponent struct {
	TileID int
	X, Y   float64
}

type testMotionComponent struct {
	VelX, VelY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 || id2 != 2 {
		t.Errorf("Entity IDs should start at 1, got %d and %d", id1, id2)
	}
	if id1 == InvalidEntity {
		t.Error("Created entity must not equal InvalidEntity")
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTileComponent{TileID: 3, X: 100, Y: 200})

	t.Run("reflection lookup", func(t *testing.T) {
		comp, found := em.GetComponent(id, reflect.TypeOf(&testTileComponent{}))
		if !found {
			t.Fatal("Component should be found")
		}
		tile := comp.(*testTileComponent)
		if tile.X != 100 || tile.Y != 200 {
			t.Errorf("Component data mismatch, got (%f, %f)", tile.X, tile.Y)
		}
	})

	t.Run("generic lookup", func(t *testing.T) {
		tile, ok := GetComponent[*testTileComponent](em, id)
		if !ok {
			t.Fatal("Generic GetComponent should find the component")
		}
		if tile.TileID != 3 {
			t.Errorf("TileID: got %d, want 3", tile.TileID)
		}

		// 返回的是同一个指针，修改对后续查询可见
		tile.X = 42
		again, _ := GetComponent[*testTileComponent](em, id)
		if again.X != 42 {
			t.Errorf("Expected shared pointer semantics, got X=%f", again.X)
		}
	})

	t.Run("missing component", func(t *testing.T) {
		if _, ok := GetComponent[*testMotionComponent](em, id); ok {
			t.Error("Motion component should not be found")
		}
		if _, ok := GetComponent[*testTileComponent](em, EntityID(999)); ok {
			t.Error("Unknown entity should not have components")
		}
	})
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(7), &testTileComponent{})

	if em.IsAlive(EntityID(7)) {
		t.Error("AddComponent must not create entities implicitly")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testMotionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testMotionComponent{VelX: 1})
	if !HasComponent[*testMotionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testMotionComponent](em, id)
	if HasComponent[*testMotionComponent](em, id) {
		t.Error("Should not have component after removal")
	}
	if !em.IsAlive(id) {
		t.Error("Removing a component must not destroy the entity")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testTileComponent{})
	em.AddComponent(id2, &testTileComponent{})

	em.DestroyEntity(id1)

	// 清理前实体仍存在
	if !em.IsAlive(id1) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.IsAlive(id1) {
		t.Error("Entity should be removed after cleanup")
	}
	if !em.IsAlive(id2) {
		t.Error("Unmarked entity should survive cleanup")
	}

	// 再次清理不应影响其他实体
	em.RemoveMarkedEntities()
	if em.EntityCount() != 1 {
		t.Errorf("EntityCount: got %d, want 1", em.EntityCount())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testTileComponent{})
	em.AddComponent(id1, &testMotionComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testTileComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testMotionComponent{})

	both := GetEntitiesWith2[*testTileComponent, *testMotionComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	tiles := GetEntitiesWith1[*testTileComponent](em)
	if len(tiles) != 2 {
		t.Errorf("Expected 2 entities with tile component, got %d", len(tiles))
	}
}

func TestGetEntitiesWith_SortedByID(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testTileComponent{TileID: i})
	}

	ids := GetEntitiesWith1[*testTileComponent](em)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Result not sorted at %d: %v", i, ids)
		}
	}

	// 排序后 TileID 与创建顺序一致
	for i, id := range ids {
		tile, _ := GetComponent[*testTileComponent](em, id)
		if tile.TileID != i {
			t.Errorf("ids[%d] has TileID %d, want %d", i, tile.TileID, i)
		}
	}
}

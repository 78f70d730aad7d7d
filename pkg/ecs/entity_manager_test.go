package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID 从 1 开始
	if id1 != 1 || id2 != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", id1, id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should not be found")
	}
	if _, ok := GetComponent[*testPositionComponent](em, 99); ok {
		t.Error("Unknown entity should have no components")
	}

	// 同类型组件被替换
	em.AddComponent(id, &testPositionComponent{X: 1})
	if pos, _ := GetComponent[*testPositionComponent](em, id); pos.X != 1 {
		t.Errorf("X = %f after replace, want 1", pos.X)
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testTagComponent](em, id) {
		t.Error("Should not have component before adding")
	}
	em.AddComponent(id, &testTagComponent{})
	if !HasComponent[*testTagComponent](em, id) {
		t.Error("Should have component after adding")
	}
	RemoveComponent[*testTagComponent](em, id)
	if HasComponent[*testTagComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})

	var destroyed []EntityID
	em.OnDestroy = func(id EntityID) { destroyed = append(destroyed, id) }

	em.DestroyEntity(id1)
	em.DestroyEntity(id1)

	// 清理前实体仍存在
	if !em.Exists(id1) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id1) {
		t.Error("Entity should be removed after cleanup")
	}
	if !em.Exists(id2) {
		t.Error("id2 should still exist")
	}
	if !reflect.DeepEqual(destroyed, []EntityID{id1}) {
		t.Errorf("OnDestroy calls = %v, want [%d]", destroyed, id1)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})
	em.AddComponent(id3, &testPositionComponent{})
	em.AddComponent(id3, &testTagComponent{})

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"Position", GetEntitiesWith1[*testPositionComponent](em), []EntityID{id1, id2, id3}},
		{"Position+Velocity", GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em), []EntityID{id1, id3}},
		{"三种组件", GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em), []EntityID{id3}},
		{"全部实体", em.Entities(), []EntityID{id1, id2, id3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v (sorted by ID)", tt.got, tt.want)
			}
		})
	}
}

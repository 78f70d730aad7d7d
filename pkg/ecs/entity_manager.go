// Package ecs 极简的实体-组件存储，演示场景用它组织多个头像控件
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 组件按具体类型（通常是指针类型）索引，每个实体每种类型最多一个组件。
// 查询结果按实体 ID 升序返回，创建顺序即绘制顺序。
type EntityManager struct {
	nextID     uint64
	components map[EntityID]map[reflect.Type]any

	// 待删除的实体，RemoveMarkedEntities 时统一清理
	entitiesToDestroy []EntityID

	// OnDestroy 实体被真正移除前调用（可选），用于释放组件持有的资源
	OnDestroy func(id EntityID)
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一 ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// Exists 实体是否存在（已标记删除但未清理的实体仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// EntityCount 当前实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// DestroyEntity 标记实体待删除（不立即删除）
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		if !em.Exists(id) {
			continue
		}
		if em.OnDestroy != nil {
			em.OnDestroy(id)
		}
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// AddComponent 为实体添加组件，同类型组件会被替换
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// Entities 返回所有实体 ID（升序）
func (em *EntityManager) Entities() []EntityID {
	ids := make([]EntityID, 0, len(em.components))
	for id := range em.components {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[typeOf[T]()]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := GetComponent[T](em, id)
	return ok
}

// RemoveComponent 从实体移除 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, typeOf[T]())
	}
}

// GetEntitiesWith1 查询拥有 T 类型组件的实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 类型组件的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 类型组件的实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

func (em *EntityManager) entitiesWith(types ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range types {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

package systems

import (
	"github.com/gonewx/avatarview/pkg/components"
	"github.com/gonewx/avatarview/pkg/ecs"
)

// AvatarSystem 逐帧推进所有头像控件的动画
type AvatarSystem struct {
	entityManager *ecs.EntityManager
}

// NewAvatarSystem 创建头像系统
func NewAvatarSystem(em *ecs.EntityManager) *AvatarSystem {
	return &AvatarSystem{entityManager: em}
}

// Update 推进动画
func (s *AvatarSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AvatarComponent](s.entityManager) {
		avatarComp, _ := ecs.GetComponent[*components.AvatarComponent](s.entityManager, id)
		avatarComp.Widget.Update(deltaTime)
	}
}

// CloseAll 关闭所有控件并释放纹理，场景退出时调用
func (s *AvatarSystem) CloseAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.AvatarComponent](s.entityManager) {
		avatarComp, _ := ecs.GetComponent[*components.AvatarComponent](s.entityManager, id)
		avatarComp.Widget.Close()
	}
}

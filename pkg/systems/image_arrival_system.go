package systems

import (
	"log"

	"github.com/gonewx/avatarview/pkg/components"
	"github.com/gonewx/avatarview/pkg/ecs"
)

// ImageArrivalSystem 在计时器到期时把等待中的图片交给头像控件
//
// 模拟图片从网络异步到达：控件先显示占位符，图片到达后切换并播放一次边框脉冲。
type ImageArrivalSystem struct {
	entityManager *ecs.EntityManager
}

// NewImageArrivalSystem 创建图片到达系统
func NewImageArrivalSystem(em *ecs.EntityManager) *ImageArrivalSystem {
	return &ImageArrivalSystem{entityManager: em}
}

// Update 推进所有等待中的计时器
func (s *ImageArrivalSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.TimerComponent,
		*components.PendingImageComponent,
		*components.AvatarComponent,
	](s.entityManager)

	for _, id := range entities {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !timer.Advance(deltaTime) {
			continue
		}

		pending, _ := ecs.GetComponent[*components.PendingImageComponent](s.entityManager, id)
		avatarComp, _ := ecs.GetComponent[*components.AvatarComponent](s.entityManager, id)

		log.Printf("[ImageArrivalSystem] entity %d (%s): image arrived after %.1fs", id, avatarComp.Style, timer.CurrentTime)
		avatarComp.Widget.SetImage(pending.Image)
		ecs.RemoveComponent[*components.PendingImageComponent](s.entityManager, id)
	}
}

package systems

import (
	"log"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
)

// ToastSystem 提示消息系统
// 同一时间最多一条，新消息替换旧消息
type ToastSystem struct {
	entityManager *ecs.EntityManager
	duration      float64
}

// NewToastSystem 创建提示消息系统
// duration: 每条消息显示的时长（秒）
func NewToastSystem(em *ecs.EntityManager, duration float64) *ToastSystem {
	return &ToastSystem{
		entityManager: em,
		duration:      duration,
	}
}

// Show 显示一条消息，替换当前消息
func (s *ToastSystem) Show(title, message string) ecs.EntityID {
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
		ecs.RemoveComponent[*components.ToastComponent](s.entityManager, id)
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.ToastComponent{
		Title:    title,
		Message:  message,
		Duration: s.duration,
	})
	log.Printf("[ToastSystem] %s %s", title, message)
	return id
}

// Active 返回当前显示的消息
func (s *ToastSystem) Active() (*components.ToastComponent, bool) {
	ids := ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager)
	if len(ids) == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.ToastComponent](s.entityManager, ids[len(ids)-1])
}

// Update 推进显示时间，超时的消息被移除
func (s *ToastSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		toast, ok := ecs.GetComponent[*components.ToastComponent](s.entityManager, id)
		if !ok {
			continue
		}
		toast.Elapsed += deltaTime
		if toast.Elapsed >= toast.Duration {
			s.entityManager.DestroyEntity(id)
			ecs.RemoveComponent[*components.ToastComponent](s.entityManager, id)
		}
	}
}

// ToastAlpha 消息透明度：开头淡入、结尾淡出
func ToastAlpha(toast *components.ToastComponent) float64 {
	in := utils.Progress(toast.Elapsed, 0, components.ToastFadeDuration)
	out := 1 - utils.Progress(toast.Elapsed, toast.Duration-components.ToastFadeDuration, components.ToastFadeDuration)
	if out < in {
		return out
	}
	return in
}

package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
)

// 彩纸物理常量（60fps 下每帧）
const (
	confettiFriction   = 0.99
	confettiMinSize    = 5.0
	confettiMaxSize    = 20.0
	confettiMaxSpin    = 0.2
	confettiOffscreen  = 100.0 // 超出画布左右/上边缘该距离后移除
	confettiFrameRate  = 60.0
	confettiMaxTiltVel = 0.1
)

// ConfettiSystem 彩纸特效系统
//
// 每次 Fire 创建一个喷发实体，在 TweenDuration 内从画布上边缘逐步发射彩纸。
// 彩纸受重力和空气阻力影响，离开画布后移除；
// 喷发的全部彩纸都移除后触发完成回调并销毁喷发实体。
type ConfettiSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	width         float64
	height        float64
}

// NewConfettiSystem 创建彩纸系统
//
// 参数：
//   - em: 实体管理器
//   - rng: 随机源
//   - width, height: 画布尺寸（逻辑屏幕）
func NewConfettiSystem(em *ecs.EntityManager, rng *rand.Rand, width, height float64) *ConfettiSystem {
	return &ConfettiSystem{
		entityManager: em,
		rng:           rng,
		width:         width,
		height:        height,
	}
}

// Fire 发起一次彩纸喷发
//
// 返回：
//   - 喷发实体 ID
func (s *ConfettiSystem) Fire(cfg config.ConfettiConfig, onComplete func()) ecs.EntityID {
	palette := cfg.Palette()
	if len(palette) == 0 {
		palette = []color.RGBA{{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}}
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.ConfettiBurstComponent{
		Config:       cfg,
		Palette:      palette,
		CanvasWidth:  s.width,
		CanvasHeight: s.height,
		OnComplete:   onComplete,
	})

	log.Printf("[ConfettiSystem] Burst %d: %d pieces, gravity %.2f, tween %.1fs", id, cfg.Pieces, cfg.Gravity, cfg.TweenDuration)
	return id
}

// Update 发射新彩纸、推进物理、回收离开画布的彩纸
func (s *ConfettiSystem) Update(deltaTime float64) {
	frames := deltaTime * confettiFrameRate
	friction := math.Pow(confettiFriction, frames)

	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiBurstComponent](s.entityManager) {
		burst, ok := ecs.GetComponent[*components.ConfettiBurstComponent](s.entityManager, id)
		if !ok || burst.Done {
			continue
		}
		burst.Elapsed += deltaTime
		s.emit(id, burst)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiParticleComponent](s.entityManager) {
		p, ok := ecs.GetComponent[*components.ConfettiParticleComponent](s.entityManager, id)
		if !ok {
			continue
		}
		burst, ok := ecs.GetComponent[*components.ConfettiBurstComponent](s.entityManager, p.Burst)
		if !ok {
			s.removeParticle(id, nil)
			continue
		}

		p.X += p.VX * frames
		p.Y += p.VY * frames
		p.VY += burst.Config.Gravity * frames
		p.VX *= friction
		p.VY *= friction
		p.Angle += p.AngularSpin * frames
		p.TiltAngle += p.TiltVelocity * frames

		if p.Y > burst.CanvasHeight || p.Y < -confettiOffscreen ||
			p.X > burst.CanvasWidth+confettiOffscreen || p.X < -confettiOffscreen {
			s.removeParticle(id, burst)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiBurstComponent](s.entityManager) {
		burst, ok := ecs.GetComponent[*components.ConfettiBurstComponent](s.entityManager, id)
		if !ok || burst.Done {
			continue
		}
		if burst.Emitted >= burst.Config.Pieces && burst.Alive == 0 {
			burst.Done = true
			s.entityManager.DestroyEntity(id)
			ecs.RemoveComponent[*components.ConfettiBurstComponent](s.entityManager, id)
			log.Printf("[ConfettiSystem] Burst %d complete", id)
			if burst.OnComplete != nil {
				burst.OnComplete()
			}
		}
	}
}

// emit 按 TweenDuration 线性增加已发射数量
func (s *ConfettiSystem) emit(burstID ecs.EntityID, burst *components.ConfettiBurstComponent) {
	target := burst.Config.Pieces
	if burst.Config.TweenDuration > 0 {
		ratio := math.Min(1, burst.Elapsed/burst.Config.TweenDuration)
		target = int(math.Round(float64(burst.Config.Pieces) * ratio))
	}

	for burst.Emitted < target {
		s.spawnParticle(burstID, burst)
		burst.Emitted++
		burst.Alive++
	}
}

// spawnParticle 在画布上边缘生成一片彩纸
func (s *ConfettiSystem) spawnParticle(burstID ecs.EntityID, burst *components.ConfettiBurstComponent) {
	cfg := burst.Config
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.ConfettiParticleComponent{
		X:            s.rng.Float64() * burst.CanvasWidth,
		Y:            0,
		VX:           s.randRange(-cfg.InitialVelocityX, cfg.InitialVelocityX),
		VY:           s.randRange(-cfg.InitialVelocityY, 0),
		Width:        s.randRange(confettiMinSize, confettiMaxSize),
		Height:       s.randRange(confettiMinSize, confettiMaxSize),
		Angle:        s.rng.Float64() * 2 * math.Pi,
		AngularSpin:  s.randRange(-confettiMaxSpin, confettiMaxSpin),
		TiltAngle:    s.rng.Float64() * 2 * math.Pi,
		TiltVelocity: s.randRange(-confettiMaxTiltVel, confettiMaxTiltVel),
		Shape:        components.ConfettiShape(s.rng.IntN(3)),
		Color:        burst.Palette[s.rng.IntN(len(burst.Palette))],
		Burst:        burstID,
	})
}

// removeParticle 移除一片彩纸并更新所属喷发的存活计数
func (s *ConfettiSystem) removeParticle(id ecs.EntityID, burst *components.ConfettiBurstComponent) {
	s.entityManager.DestroyEntity(id)
	ecs.RemoveComponent[*components.ConfettiParticleComponent](s.entityManager, id)
	if burst != nil && burst.Alive > 0 {
		burst.Alive--
	}
}

func (s *ConfettiSystem) randRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// ActiveBursts 未完成的喷发数量
func (s *ConfettiSystem) ActiveBursts() int {
	return len(ecs.GetEntitiesWith1[*components.ConfettiBurstComponent](s.entityManager))
}

// ParticleCount 当前存活的彩纸数量
func (s *ConfettiSystem) ParticleCount() int {
	return len(ecs.GetEntitiesWith1[*components.ConfettiParticleComponent](s.entityManager))
}

package components

import (
	"image/color"

	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
)

// ConfettiShape 彩纸形状
type ConfettiShape int

// ConfettiShape 常量
const (
	ConfettiShapeRect ConfettiShape = iota
	ConfettiShapeCircle
	ConfettiShapeStrip
)

// ConfettiParticleComponent 单片彩纸
//
// 速度以 60fps 下每帧的像素为单位，ConfettiSystem 按 deltaTime 换算。
// 这是纯数据组件，不包含方法。
type ConfettiParticleComponent struct {
	X, Y   float64
	VX, VY float64

	Width, Height float64 // 5~20 像素

	Angle        float64 // 旋转角度（弧度）
	AngularSpin  float64 // 每帧旋转量（弧度）
	TiltAngle    float64 // 翻转相位，用于模拟纸片翻面
	TiltVelocity float64

	Shape ConfettiShape
	Color color.RGBA

	// Burst 所属的喷发实体
	Burst ecs.EntityID
}

// ConfettiBurstComponent 一次彩纸喷发
//
// 在 TweenDuration 内逐步发射 Pieces 片彩纸；
// 全部发射完毕且所有彩纸都离开画布后，喷发结束并触发 OnComplete。
type ConfettiBurstComponent struct {
	Config  config.ConfettiConfig
	Palette []color.RGBA

	Elapsed float64
	Emitted int
	Alive   int
	Done    bool

	// 画布尺寸（彩纸从上边缘发射）
	CanvasWidth, CanvasHeight float64

	OnComplete func()
}

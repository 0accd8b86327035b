package utils

import "math"

// springSubStep 弹簧积分的最大子步长（秒）
// 刚度 300 的弹簧在 1/60 秒步长下用显式积分会明显过冲，拆分子步保持稳定
const springSubStep = 1.0 / 240.0

// springRestDelta 位移和速度都小于该值时视为静止
const springRestDelta = 0.01

// SpringStep 推进一维阻尼弹簧
//
// 参数：
//   - pos, vel: 当前位置和速度
//   - target: 平衡位置
//   - stiffness, damping: 弹簧刚度和阻尼（质量固定为 1）
//   - dt: 时间增量（秒）
//
// 返回：
//   - 新的位置和速度；静止时位置直接吸附到 target，速度归零
func SpringStep(pos, vel, target, stiffness, damping, dt float64) (float64, float64) {
	if dt <= 0 {
		return pos, vel
	}

	steps := int(math.Ceil(dt / springSubStep))
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		accel := -stiffness*(pos-target) - damping*vel
		vel += accel * h
		pos += vel * h
	}

	if math.Abs(pos-target) < springRestDelta && math.Abs(vel) < springRestDelta {
		return target, 0
	}
	return pos, vel
}

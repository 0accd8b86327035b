package utils

import "math"

// Rect 轴对齐矩形（屏幕坐标，左上角 + 宽高）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset 返回四边向内收缩 d 的矩形
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: math.Max(0, r.W-2*d), H: math.Max(0, r.H-2*d)}
}

// LerpRect 在两个矩形之间线性插值
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		W: Lerp(a.W, b.W, t),
		H: Lerp(a.H, b.H, t),
	}
}

// CenteredRect 以 (cx, cy) 为中心构造矩形
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Distance 两点间欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp 将 v 限制在 [lo, hi]；lo > hi 时返回 lo
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ElasticClamp 超出 [lo, hi] 的部分按 elastic 比例保留（拖拽越界的橡皮筋效果）
// elastic = 0 时等价于 Clamp，elastic = 1 时不做限制
func ElasticClamp(v, lo, hi, elastic float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo + (v-lo)*elastic
	}
	if v > hi {
		return hi + (v-hi)*elastic
	}
	return v
}

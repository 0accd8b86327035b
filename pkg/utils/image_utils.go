package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point 多边形顶点
type Point struct {
	X, Y float64
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// WhiteImage 返回用于 DrawTriangles 的 1x1 白色纹理
// 取 3x3 图片的中心像素，避免采样到边缘
func WhiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// WithAlpha 返回按 alpha（0~1）缩放后的预乘颜色
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// FillPolygon 填充任意简单多边形
func FillPolygon(dst *ebiten.Image, points []Point, clr color.RGBA) {
	if dst == nil || len(points) < 3 || clr.A == 0 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vertices, indices, WhiteImage(), op)
}

// RoundedRectPoints 生成圆角矩形轮廓（顺时针，每个圆角 segments 段）
func RoundedRectPoints(r Rect, radius float64, segments int) []Point {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 || segments < 1 {
		return []Point{{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H}}
	}

	corners := []struct {
		cx, cy, start float64
	}{
		{r.X + r.W - radius, r.Y + radius, -math.Pi / 2},
		{r.X + r.W - radius, r.Y + r.H - radius, 0},
		{r.X + radius, r.Y + r.H - radius, math.Pi / 2},
		{r.X + radius, r.Y + radius, math.Pi},
	}

	points := make([]Point, 0, 4*(segments+1))
	for _, c := range corners {
		for i := 0; i <= segments; i++ {
			a := c.start + float64(i)/float64(segments)*math.Pi/2
			points = append(points, Point{c.cx + radius*math.Cos(a), c.cy + radius*math.Sin(a)})
		}
	}
	return points
}

// FillRoundedRect 填充圆角矩形
func FillRoundedRect(dst *ebiten.Image, r Rect, radius float64, clr color.RGBA) {
	FillPolygon(dst, RoundedRectPoints(r, radius, 6), clr)
}

// HeartPoints 生成以 (cx, cy) 为中心、宽度约为 size 的爱心轮廓
// 使用经典参数方程 x = 16sin³t, y = 13cos t - 5cos 2t - 2cos 3t - cos 4t
func HeartPoints(cx, cy, size float64, segments int) []Point {
	if segments < 8 {
		segments = 8
	}
	scale := size / 32
	points := make([]Point, 0, segments)
	for i := 0; i < segments; i++ {
		t := float64(i) / float64(segments) * 2 * math.Pi
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		points = append(points, Point{cx + x*scale, cy - y*scale})
	}
	return points
}

// FillHeart 填充爱心
func FillHeart(dst *ebiten.Image, cx, cy, size float64, clr color.RGBA) {
	FillPolygon(dst, HeartPoints(cx, cy, size, 48), clr)
}

// RotatedRectPoints 返回以 (cx, cy) 为中心、旋转 angle 弧度的矩形四个顶点
func RotatedRectPoints(cx, cy, w, h, angle float64) []Point {
	sin, cos := math.Sincos(angle)
	hw, hh := w/2, h/2
	corners := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	points := make([]Point, 4)
	for i, c := range corners {
		points[i] = Point{
			X: cx + c.X*cos - c.Y*sin,
			Y: cy + c.X*sin + c.Y*cos,
		}
	}
	return points
}

// RotatePoint 绕 (cx, cy) 旋转点
func RotatePoint(p Point, cx, cy, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-cx, p.Y-cy
	return Point{X: cx + dx*cos - dy*sin, Y: cy + dx*sin + dy*cos}
}

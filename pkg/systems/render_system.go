package systems

import (
	"image/color"
	"math"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 界面配色
var (
	ColorBackground = color.RGBA{R: 0xff, G: 0xf0, B: 0xf5, A: 0xff} // lavender blush
	ColorPinkLight  = color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}
	ColorPink       = color.RGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}
	ColorPinkDeep   = color.RGBA{R: 0xdb, G: 0x27, B: 0x77, A: 0xff}
	ColorRoseGold   = color.RGBA{R: 0xb7, G: 0x6e, B: 0x79, A: 0xff}
	ColorCream      = color.RGBA{R: 0xff, G: 0xfa, B: 0xf0, A: 0xff}
	ColorInk        = color.RGBA{R: 0x5a, G: 0x2a, B: 0x3a, A: 0xff}
	ColorWhite      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorShadow     = color.RGBA{R: 0x50, G: 0x10, B: 0x28, A: 0x40}
	ColorOverlay    = color.RGBA{R: 0x20, G: 0x08, B: 0x10, A: 0x99}
)

// RenderSystem 通用渲染：彩纸、遮罩、文字
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// DrawConfetti 绘制所有彩纸
// 纸片按 TiltAngle 压缩高度，模拟翻面
func (s *RenderSystem) DrawConfetti(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ConfettiParticleComponent](s.entityManager) {
		p, ok := ecs.GetComponent[*components.ConfettiParticleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		tilt := math.Abs(math.Cos(p.TiltAngle))
		switch p.Shape {
		case components.ConfettiShapeCircle:
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Width/2*math.Max(0.3, tilt)), p.Color, true)
		case components.ConfettiShapeStrip:
			utils.FillPolygon(screen, utils.RotatedRectPoints(p.X, p.Y, p.Width/3, p.Height*math.Max(0.2, tilt), p.Angle), p.Color)
		default:
			utils.FillPolygon(screen, utils.RotatedRectPoints(p.X, p.Y, p.Width, p.Height*math.Max(0.1, tilt), p.Angle), p.Color)
		}
	}
}

// DrawOverlay 绘制覆盖整个屏幕的半透明遮罩
func DrawOverlay(screen *ebiten.Image, alpha float64) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), utils.WithAlpha(ColorOverlay, alpha), false)
}

// DrawCenteredText 以 (cx, cy) 为中心绘制文字
func DrawCenteredText(screen *ebiten.Image, str string, cx, cy float64, face *text.GoTextFace, clr color.RGBA, alpha float64) {
	if face == nil || str == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(utils.Clamp01(alpha)))
	text.Draw(screen, str, face, op)
}

// DrawTextLines 从 (x, y) 开始逐行绘制文字，返回绘制后的总高度
//
// 参数：
//   - centered: true 时 x 为每行的水平中心
func DrawTextLines(screen *ebiten.Image, lines []string, x, y, lineHeight float64, face *text.GoTextFace, clr color.RGBA, alpha float64, centered bool) float64 {
	if face == nil || alpha <= 0 {
		return float64(len(lines)) * lineHeight
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lineHeight)
		if centered {
			op.PrimaryAlign = text.AlignCenter
		}
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(utils.Clamp01(alpha)))
		text.Draw(screen, line, face, op)
	}
	return float64(len(lines)) * lineHeight
}

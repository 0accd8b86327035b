package systems

import (
	"image/color"

	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonStyle 按钮配色
type ButtonStyle struct {
	Fill      color.RGBA
	HoverFill color.RGBA
	Label     color.RGBA
}

// 预设按钮样式
var (
	AcceptButtonStyle  = ButtonStyle{Fill: ColorPink, HoverFill: ColorPinkDeep, Label: ColorWhite}
	DeclineButtonStyle = ButtonStyle{Fill: ColorWhite, HoverFill: ColorPinkLight, Label: ColorPinkDeep}
)

// ButtonRenderSystem 圆角按钮渲染
// 按钮状态由各场景的系统维护，这里只负责绘制
type ButtonRenderSystem struct {
	font *text.GoTextFace
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(font *text.GoTextFace) *ButtonRenderSystem {
	return &ButtonRenderSystem{font: font}
}

// DrawButton 绘制一个按钮
//
// 参数：
//   - rect: 按钮矩形（屏幕坐标，已包含缩放）
//   - label: 按钮文字
//   - hovered: 指针是否悬停在按钮上
//   - alpha: 整体透明度
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, rect utils.Rect, label string, style ButtonStyle, hovered bool, alpha float64) {
	if rect.W <= 0 || rect.H <= 0 || alpha <= 0 {
		return
	}

	radius := rect.H / 2
	shadow := rect
	shadow.Y += 3
	utils.FillRoundedRect(screen, shadow, radius, utils.WithAlpha(ColorShadow, alpha))

	fill := style.Fill
	if hovered {
		fill = style.HoverFill
	}
	utils.FillRoundedRect(screen, rect, radius, utils.WithAlpha(fill, alpha))

	// 文字随按钮缩放
	if s.font == nil {
		return
	}
	scale := rect.H / 44
	face := &text.GoTextFace{Source: s.font.Source, Size: s.font.Size * scale}
	cx, cy := rect.Center()
	DrawCenteredText(screen, label, cx, cy, face, style.Label, alpha)
}

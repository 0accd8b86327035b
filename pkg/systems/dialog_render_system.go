package systems

import (
	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 对话框动画与布局常量
const (
	dialogPopDuration   = 0.25
	dialogCloseButtonW  = 120.0
	dialogCloseButtonH  = 40.0
	dialogCloseMarginB  = 24.0
	dialogHeartSize     = 40.0
	dialogTitleOffsetY  = 80.0
	dialogMessageOffset = 118.0
)

// DialogRenderSystem 对话框渲染系统
//
// 职责：
//   - 渲染半透明遮罩（覆盖整个屏幕）
//   - 渲染对话框背景和爱心装饰
//   - 渲染标题、消息和关闭按钮
type DialogRenderSystem struct {
	entityManager *ecs.EntityManager
	windowWidth   float64
	windowHeight  float64
	titleFont     *text.GoTextFace
	messageFont   *text.GoTextFace
	buttons       *ButtonRenderSystem
}

// NewDialogRenderSystem 创建对话框渲染系统
func NewDialogRenderSystem(em *ecs.EntityManager, windowWidth, windowHeight float64, titleFont, messageFont *text.GoTextFace, buttons *ButtonRenderSystem) *DialogRenderSystem {
	return &DialogRenderSystem{
		entityManager: em,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
		titleFont:     titleFont,
		messageFont:   messageFont,
		buttons:       buttons,
	}
}

// DialogRect 对话框矩形（屏幕居中）
func (s *DialogRenderSystem) DialogRect(dialog *components.DialogComponent) utils.Rect {
	return utils.CenteredRect(s.windowWidth/2, s.windowHeight/2, dialog.Width, dialog.Height)
}

// CloseButtonRect 关闭按钮矩形
func (s *DialogRenderSystem) CloseButtonRect(dialog *components.DialogComponent) utils.Rect {
	r := s.DialogRect(dialog)
	cx, _ := r.Center()
	return utils.CenteredRect(cx, r.Y+r.H-dialogCloseMarginB-dialogCloseButtonH/2, dialogCloseButtonW, dialogCloseButtonH)
}

// Draw 渲染所有可见的对话框
func (s *DialogRenderSystem) Draw(screen *ebiten.Image, hoverX, hoverY float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.DialogComponent](s.entityManager) {
		dialog, ok := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
		if !ok || !dialog.IsVisible {
			continue
		}
		s.drawDialog(screen, dialog, hoverX, hoverY)
	}
}

func (s *DialogRenderSystem) drawDialog(screen *ebiten.Image, dialog *components.DialogComponent, hoverX, hoverY float64) {
	p := utils.Progress(dialog.Elapsed, 0, dialogPopDuration)
	DrawOverlay(screen, p)

	// 弹出：从 0.9 放大到 1
	scale := 0.9 + 0.1*utils.EaseOutCubic(p)
	full := s.DialogRect(dialog)
	cx, cy := full.Center()
	r := utils.CenteredRect(cx, cy, full.W*scale, full.H*scale)

	shadow := r
	shadow.Y += 6
	utils.FillRoundedRect(screen, shadow, 20, utils.WithAlpha(ColorShadow, p))
	utils.FillRoundedRect(screen, r, 20, utils.WithAlpha(ColorCream, p))

	utils.FillHeart(screen, cx, r.Y+40*scale, dialogHeartSize*scale, utils.WithAlpha(ColorPink, p))
	DrawCenteredText(screen, dialog.Title, cx, r.Y+dialogTitleOffsetY*scale, s.titleFont, ColorPinkDeep, p)
	DrawCenteredText(screen, dialog.Message, cx, r.Y+dialogMessageOffset*scale, s.messageFont, ColorInk, p)

	if s.buttons != nil {
		btn := s.CloseButtonRect(dialog)
		s.buttons.DrawButton(screen, btn, dialog.ButtonLabel, AcceptButtonStyle, btn.Contains(hoverX, hoverY), p)
	}
}

// ToastRenderSystem 提示消息渲染（屏幕底部居中）
type ToastRenderSystem struct {
	entityManager *ecs.EntityManager
	windowWidth   float64
	windowHeight  float64
	titleFont     *text.GoTextFace
	messageFont   *text.GoTextFace
}

// NewToastRenderSystem 创建提示消息渲染系统
func NewToastRenderSystem(em *ecs.EntityManager, windowWidth, windowHeight float64, titleFont, messageFont *text.GoTextFace) *ToastRenderSystem {
	return &ToastRenderSystem{
		entityManager: em,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
		titleFont:     titleFont,
		messageFont:   messageFont,
	}
}

// Draw 绘制当前提示
func (s *ToastRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		toast, ok := ecs.GetComponent[*components.ToastComponent](s.entityManager, id)
		if !ok {
			continue
		}

		alpha := ToastAlpha(toast)
		w := 320.0
		if s.messageFont != nil {
			mw, _ := text.Measure(toast.Message, s.messageFont, 0)
			w = utils.Clamp(mw+48, 200, s.windowWidth-40)
		}
		// 从下方滑入
		slide := (1 - alpha) * 16
		r := utils.CenteredRect(s.windowWidth/2, s.windowHeight-70+slide, w, 64)

		utils.FillRoundedRect(screen, r, 14, utils.WithAlpha(ColorShadow, alpha))
		inner := r.Inset(2)
		utils.FillRoundedRect(screen, inner, 12, utils.WithAlpha(ColorWhite, alpha))

		cx, _ := r.Center()
		DrawCenteredText(screen, toast.Title, cx, r.Y+20, s.titleFont, ColorPinkDeep, alpha)
		DrawCenteredText(screen, toast.Message, cx, r.Y+44, s.messageFont, ColorInk, alpha)
	}
}

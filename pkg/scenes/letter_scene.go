package scenes

import (
	"image"
	"log"
	"math"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/game"
	"github.com/decker502/lovenote/pkg/systems"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 信纸排版
const (
	letterPadding    = 28.0
	letterLineHeight = 26.0
)

// LetterScene 信件场景
//
// 信封入场后打开信封盖，信纸滑出露出开头；
// 点击展开为全屏全文（可滚动），再次点击收回，收回完成后通知 SceneManager。
type LetterScene struct {
	deps          Deps
	entityManager *ecs.EntityManager
	letter        *systems.LetterPhaseSystem

	container utils.Rect
	viewport  utils.Rect

	bodyFont   *text.GoTextFace
	promptFont *text.GoTextFace

	excerptLines []string
	fullLines    []string

	tracker      *utils.PointerTracker
	lastDragY    float64
	inputEnabled bool
}

// NewLetterScene 创建信件场景
// onComplete 在信纸收回动画结束后调用一次
func NewLetterScene(deps Deps, onComplete func()) *LetterScene {
	em := ecs.NewEntityManager()
	w, h := deps.screenSize()
	cfg := deps.Config.Letter

	s := &LetterScene{
		deps:          deps,
		entityManager: em,
		letter:        systems.NewLetterPhaseSystem(em, cfg, onComplete),
		container:     utils.CenteredRect(w/2, h/2, cfg.ContainerWidth, cfg.ContainerHeight),
		viewport:      utils.Rect{W: w, H: h},
		bodyFont:      deps.font(game.FontRegular, fontSizeLetter),
		promptFont:    deps.font(game.FontItalic, fontSizeBody),
		tracker:       utils.NewPointerTracker(deps.Config.Tiles.DragSlop),
		inputEnabled:  true,
	}

	partial := systems.LetterPaperRect(components.LetterPhasePartial, s.container, s.viewport, cfg.ViewportInset)
	full := s.viewport.Inset(cfg.ViewportInset)
	s.excerptLines = utils.WrapText(deps.Messages.Letter.PartialText, s.bodyFont, partial.W-2*letterPadding)
	s.fullLines = utils.WrapText(deps.Messages.Letter.FullText, s.bodyFont, full.W-2*letterPadding)

	log.Printf("[LetterScene] Created, full text %d lines", len(s.fullLines))
	return s
}

// SetInputEnabled 实现 game.InputBlocker
func (s *LetterScene) SetInputEnabled(enabled bool) {
	s.inputEnabled = enabled
	if !enabled {
		s.tracker.Reset()
	}
}

// Letter 返回信件阶段系统
func (s *LetterScene) Letter() *systems.LetterPhaseSystem {
	return s.letter
}

// ContentHeight 全文高度
func (s *LetterScene) ContentHeight() float64 {
	return float64(len(s.fullLines)) * letterLineHeight
}

// ViewHeight 全屏信纸中文字可见区域的高度
func (s *LetterScene) ViewHeight() float64 {
	full := s.viewport.Inset(s.deps.Config.Letter.ViewportInset)
	// 底部留出提示文字的位置
	return full.H - 2*letterPadding - letterLineHeight
}

// Update 处理点击和滚动并推进阶段机
func (s *LetterScene) Update(deltaTime float64) {
	if s.inputEnabled {
		input := s.deps.input()
		for _, ev := range s.tracker.Feed(input.Pointer()) {
			s.handlePointer(ev)
		}
		if wheel := input.Wheel(); wheel != 0 {
			s.letter.HandleScroll(-wheel*s.deps.Config.Letter.ScrollStep, s.ContentHeight(), s.ViewHeight())
		}
	}

	s.letter.Update(deltaTime)
}

func (s *LetterScene) handlePointer(ev utils.PointerEvent) {
	switch ev.Kind {
	case utils.PointerDragStart:
		s.lastDragY = ev.StartY
		fallthrough
	case utils.PointerDragMove:
		// 拖拽滚动（触摸设备）
		s.letter.HandleScroll(s.lastDragY-ev.Y, s.ContentHeight(), s.ViewHeight())
		s.lastDragY = ev.Y

	case utils.PointerClick:
		if s.hitTest(ev.X, ev.Y) {
			s.letter.HandleClick()
		}
	}
}

// hitTest 点击是否落在信封或信纸上
func (s *LetterScene) hitTest(x, y float64) bool {
	return s.container.Contains(x, y) || s.letter.PaperRect(s.container, s.viewport).Contains(x, y)
}

// envelopeRect 信封主体（容器下部 65%）
func (s *LetterScene) envelopeRect(scale float64) utils.Rect {
	c := s.container
	body := utils.Rect{X: c.X, Y: c.Y + c.H*0.35, W: c.W, H: c.H * 0.65}
	cx, cy := body.Center()
	return utils.CenteredRect(cx, cy, body.W*scale, body.H*scale)
}

// Draw 绘制信封和信纸
func (s *LetterScene) Draw(screen *ebiten.Image) {
	screen.Fill(systems.ColorBackground)

	letter := s.letter.Letter()
	if letter == nil {
		return
	}

	envAlpha, envScale := s.letter.EnvelopeStyle()
	env := s.envelopeRect(envScale)
	fullScreen := letter.Phase == components.LetterPhaseFull

	// 信封背面和打开的信封盖在信纸后面
	if envAlpha > 0 {
		utils.FillRoundedRect(screen, env, 10, utils.WithAlpha(systems.ColorRoseGold, envAlpha))
		if s.letter.FlapProgress() > 0.5 {
			s.drawFlap(screen, env, envAlpha)
		}
	}

	if !fullScreen {
		s.drawPaper(screen, letter)
	}

	// 信封前袋遮住信纸下部
	if envAlpha > 0 {
		s.drawPocket(screen, env, envAlpha)
		if s.letter.FlapProgress() <= 0.5 {
			s.drawFlap(screen, env, envAlpha)
		}
		utils.FillHeart(screen, env.X+env.W/2, env.Y+env.H*0.55, 36*envScale, utils.WithAlpha(systems.ColorPinkDeep, envAlpha))
	}

	if fullScreen {
		s.drawPaper(screen, letter)
	}

	s.drawPrompt(screen, letter)
}

// drawFlap 信封盖：关闭时向下，打开时翻到上方
func (s *LetterScene) drawFlap(screen *ebiten.Image, env utils.Rect, alpha float64) {
	// 1 → -1：三角形顶点从下方翻到上方
	fold := 1 - 2*s.letter.FlapProgress()
	tip := utils.Point{X: env.X + env.W/2, Y: env.Y + env.H*0.5*fold}
	points := []utils.Point{{X: env.X, Y: env.Y}, {X: env.X + env.W, Y: env.Y}, tip}
	utils.FillPolygon(screen, points, utils.WithAlpha(systems.ColorPink, alpha))
}

// drawPocket 信封前袋（左右和底部三个三角形）
func (s *LetterScene) drawPocket(screen *ebiten.Image, env utils.Rect, alpha float64) {
	mid := utils.Point{X: env.X + env.W/2, Y: env.Y + env.H*0.55}
	bl := utils.Point{X: env.X, Y: env.Y + env.H}
	br := utils.Point{X: env.X + env.W, Y: env.Y + env.H}
	tl := utils.Point{X: env.X, Y: env.Y}
	tr := utils.Point{X: env.X + env.W, Y: env.Y}

	utils.FillPolygon(screen, []utils.Point{tl, mid, bl}, utils.WithAlpha(systems.ColorPinkLight, alpha))
	utils.FillPolygon(screen, []utils.Point{tr, br, mid}, utils.WithAlpha(systems.ColorPinkLight, alpha))
	utils.FillPolygon(screen, []utils.Point{bl, mid, br}, utils.WithAlpha(systems.ColorPink, alpha))
}

// drawPaper 绘制信纸和文字（文字裁剪在信纸内）
func (s *LetterScene) drawPaper(screen *ebiten.Image, letter *components.LetterPhaseComponent) {
	alpha, scale := s.letter.PaperStyle()
	if alpha <= 0 {
		return
	}
	r := s.letter.PaperRect(s.container, s.viewport)
	cx, cy := r.Center()
	r = utils.CenteredRect(cx, cy, r.W*scale, r.H*scale)

	shadow := r
	shadow.Y += 4
	utils.FillRoundedRect(screen, shadow, 8, utils.WithAlpha(systems.ColorShadow, alpha))
	utils.FillRoundedRect(screen, r, 8, utils.WithAlpha(systems.ColorCream, alpha))

	clip := image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
	sub, ok := screen.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	lines := s.excerptLines
	textAlpha := alpha
	offset := 0.0
	if systems.ShowsFullText(letter.Phase) {
		lines = s.fullLines
		textAlpha *= s.letter.TextAlpha()
		offset = letter.ScrollOffset
	}
	systems.DrawTextLines(sub, lines, r.X+letterPadding, r.Y+letterPadding-offset, letterLineHeight, s.bodyFont, systems.ColorInk, textAlpha, false)

	// 可滚动时绘制滚动条
	if letter.Phase == components.LetterPhaseFull && s.ContentHeight() > s.ViewHeight() {
		trackH := r.H - 2*letterPadding
		thumbH := math.Max(24, trackH*s.ViewHeight()/s.ContentHeight())
		maxOffset := s.ContentHeight() - s.ViewHeight()
		thumbY := r.Y + letterPadding + (trackH-thumbH)*utils.Clamp01(offset/maxOffset)
		vector.DrawFilledRect(sub, float32(r.X+r.W-10), float32(thumbY), 4, float32(thumbH), utils.WithAlpha(systems.ColorPinkLight, textAlpha), true)
	}
}

// drawPrompt 绘制当前阶段的操作提示
func (s *LetterScene) drawPrompt(screen *ebiten.Image, letter *components.LetterPhaseComponent) {
	switch letter.Phase {
	case components.LetterPhasePartial:
		p := s.letter.TransitionProgress()
		cx, _ := s.container.Center()
		systems.DrawCenteredText(screen, s.deps.Messages.Letter.PartialPrompt, cx, s.container.Y+s.container.H+28, s.promptFont, systems.ColorInk, p)
	case components.LetterPhaseFull:
		r := s.letter.PaperRect(s.container, s.viewport)
		cx, _ := r.Center()
		systems.DrawCenteredText(screen, s.deps.Messages.Letter.FullPrompt, cx, r.Y+r.H-letterPadding/2-8, s.promptFont, systems.ColorRoseGold, s.letter.TextAlpha())
	}
}

package systems

import (
	"math"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TileRenderSystem 卡片渲染系统
//
// 按 ZIndex 从低到高绘制卡片：
//   - 封面卡片画成一封小信（信封三角线和爱心封蜡）
//   - 爱心卡片画成粉色卡片和大爱心
//
// 滑动提示手势叠加在最上层。
type TileRenderSystem struct {
	entityManager *ecs.EntityManager
	reveal        *TileRevealSystem
	hint          *SwipeHintSystem
	config        config.TileConfig
	captionFont   *text.GoTextFace
}

// NewTileRenderSystem 创建卡片渲染系统
func NewTileRenderSystem(em *ecs.EntityManager, reveal *TileRevealSystem, hint *SwipeHintSystem, cfg config.TileConfig, captionFont *text.GoTextFace) *TileRenderSystem {
	return &TileRenderSystem{
		entityManager: em,
		reveal:        reveal,
		hint:          hint,
		config:        cfg,
		captionFont:   captionFont,
	}
}

// Draw 绘制全部卡片
func (s *TileRenderSystem) Draw(screen *ebiten.Image) {
	board := s.reveal.Board()
	if board == nil {
		return
	}
	for _, tile := range s.reveal.TilesByZ() {
		s.drawTile(screen, tile, board)
	}
}

func (s *TileRenderSystem) drawTile(screen *ebiten.Image, tile *components.TileComponent, board *components.TileBoardComponent) {
	cx, cy, scale, rotation := s.reveal.TileTransform(tile, board)
	alpha := TileEntranceProgress(tile, s.config.EntranceDuration)
	if entity, ok := board.TileEntities[tile.TileID]; ok {
		if exit, ok := ecs.GetComponent[*components.TileExitComponent](s.entityManager, entity); ok {
			alpha *= 1 - TileExitProgress(exit)
		}
	}
	if alpha <= 0 {
		return
	}

	w := s.config.TileWidth * scale
	h := s.config.TileHeight * scale
	angle := rotation * math.Pi / 180

	outline := s.cardPoints(cx, cy, w, h, angle)
	shadow := make([]utils.Point, len(outline))
	for i, p := range outline {
		shadow[i] = utils.Point{X: p.X + 4, Y: p.Y + 6}
	}
	utils.FillPolygon(screen, shadow, utils.WithAlpha(ColorShadow, alpha))

	if tile.TileID == config.TerminalTileID {
		utils.FillPolygon(screen, outline, utils.WithAlpha(ColorPinkLight, alpha))
		utils.FillPolygon(screen, s.rotated(utils.HeartPoints(cx, cy, h*0.6, 48), cx, cy, angle), utils.WithAlpha(ColorPinkDeep, alpha))
		return
	}

	utils.FillPolygon(screen, outline, utils.WithAlpha(ColorCream, alpha))

	// 信封折线：左上角 → 中心偏下 → 右上角
	line := utils.WithAlpha(ColorRoseGold, alpha)
	left := utils.RotatePoint(utils.Point{X: cx - w/2 + 8*scale, Y: cy - h/2 + 8*scale}, cx, cy, angle)
	mid := utils.RotatePoint(utils.Point{X: cx, Y: cy + h*0.08}, cx, cy, angle)
	right := utils.RotatePoint(utils.Point{X: cx + w/2 - 8*scale, Y: cy - h/2 + 8*scale}, cx, cy, angle)
	vector.StrokeLine(screen, float32(left.X), float32(left.Y), float32(mid.X), float32(mid.Y), float32(2*scale), line, true)
	vector.StrokeLine(screen, float32(mid.X), float32(mid.Y), float32(right.X), float32(right.Y), float32(2*scale), line, true)

	// 封蜡
	seal := utils.RotatePoint(utils.Point{X: cx, Y: cy + h*0.1}, cx, cy, angle)
	vector.DrawFilledCircle(screen, float32(seal.X), float32(seal.Y), float32(h*0.11), utils.WithAlpha(ColorPinkDeep, alpha), true)
	utils.FillPolygon(screen, s.rotated(utils.HeartPoints(seal.X, seal.Y, h*0.12, 32), seal.X, seal.Y, angle), utils.WithAlpha(ColorPinkLight, alpha))
}

// cardPoints 旋转后的圆角卡片轮廓
func (s *TileRenderSystem) cardPoints(cx, cy, w, h, angle float64) []utils.Point {
	points := utils.RoundedRectPoints(utils.CenteredRect(cx, cy, w, h), 12, 6)
	return s.rotated(points, cx, cy, angle)
}

func (s *TileRenderSystem) rotated(points []utils.Point, cx, cy, angle float64) []utils.Point {
	if angle == 0 {
		return points
	}
	for i, p := range points {
		points[i] = utils.RotatePoint(p, cx, cy, angle)
	}
	return points
}

// DrawSwipeHint 绘制滑动提示：半透明卡片上方左右滑动的手指
func (s *TileRenderSystem) DrawSwipeHint(screen *ebiten.Image, label string) {
	if s.hint == nil {
		return
	}
	hint := s.hint.Hint()
	if hint == nil || !hint.Visible || hint.Alpha <= 0 {
		return
	}

	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2

	const handWidth = 120.0
	x := cx + hint.HandOffset*handWidth + handWidth/2
	a := hint.Alpha * hint.HandAlpha

	vector.DrawFilledCircle(screen, float32(x), float32(cy), 22, utils.WithAlpha(ColorWhite, a*0.8), true)
	vector.DrawFilledCircle(screen, float32(x), float32(cy), 14, utils.WithAlpha(ColorPink, a), true)
	vector.StrokeLine(screen, float32(cx-handWidth/2), float32(cy+36), float32(cx+handWidth/2), float32(cy+36), 3, utils.WithAlpha(ColorWhite, hint.Alpha*0.7), true)

	DrawCenteredText(screen, label, cx, cy+s.config.TileHeight/2+36, s.captionFont, ColorInk, hint.Alpha)
}

// DrawCaption 绘制爱心卡片出现后的说明文字
func (s *TileRenderSystem) DrawCaption(screen *ebiten.Image, caption string) {
	board := s.reveal.Board()
	if board == nil || !board.FinalTileVisible {
		return
	}
	b := screen.Bounds()
	alpha := utils.Progress(board.FinalElapsed, 0, 0.5)
	if !board.AnimateFinalTile {
		alpha = 1
	}
	DrawCenteredText(screen, caption, float64(b.Dx())/2, float64(b.Dy())/2+s.config.TileHeight/2*1.4+40, s.captionFont, ColorPinkDeep, alpha)
}

package systems

import (
	"log"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
)

// 层级常量
const (
	// TileZBase 最底层卡片的层级
	TileZBase = 10
)

// TileRevealSystem 卡片揭示引擎
//
// 负责：
//   - 创建卡片实体和场景单例
//   - 处理拖拽开始/移动/结束，判定是否移开
//   - 维护无操作提示计时器和最终卡片延迟
//   - 爱心卡片被点击后触发揭示回调（只触发一次）
//
// 与渲染和输入解耦：场景把指针事件翻译为 Handle* 调用，
// 最终动画开始、卡片移开等通知通过回调发出。
type TileRevealSystem struct {
	entityManager *ecs.EntityManager
	config        config.TileConfig
	rng           *rand.Rand

	boardEntity ecs.EntityID

	// 拖拽边界（相对屏幕中心的最大偏移）
	boundX, boundY float64
	// 飞出动画的随机位移范围
	screenW, screenH float64

	onReveal         func()
	onFinalAnimation func()
	onTileRevealed   func(tileID int)
}

// NewTileRevealSystem 创建卡片揭示系统
//
// 参数：
//   - em: 实体管理器
//   - cfg: 场景配置（使用 Window 和 Tiles 两节）
//   - rng: 随机源（旋转角度、飞出方向）
//   - onReveal: 爱心卡片被点击后的回调
//
// 返回：
//   - 卡片揭示系统实例，已创建全部卡片并启动无操作计时器
func NewTileRevealSystem(em *ecs.EntityManager, cfg *config.RevealConfig, rng *rand.Rand, onReveal func()) *TileRevealSystem {
	s := &TileRevealSystem{
		entityManager: em,
		config:        cfg.Tiles,
		rng:           rng,
		boundX:        math.Max(0, (float64(cfg.Window.Width)-cfg.Tiles.TileWidth)/2),
		boundY:        math.Max(0, (float64(cfg.Window.Height)-cfg.Tiles.TileHeight)/2),
		screenW:       float64(cfg.Window.Width),
		screenH:       float64(cfg.Window.Height),
		onReveal:      onReveal,
	}

	board := &components.TileBoardComponent{
		TotalTiles:      cfg.Tiles.TotalTiles,
		DraggingTile:    config.NoTile,
		HintTimer:       components.TimerComponent{Name: "idle_hint"},
		FinalDelayTimer: components.TimerComponent{Name: "final_reveal_delay"},
		TileEntities:    make(map[int]ecs.EntityID, cfg.Tiles.TotalTiles),
	}
	s.boardEntity = em.CreateEntity()
	em.AddComponent(s.boardEntity, board)

	for id := 0; id < cfg.Tiles.TotalTiles; id++ {
		rotation := 0.0
		if id != config.TerminalTileID {
			rotation = (rng.Float64()*2 - 1) * cfg.Tiles.MaxRotation
		}

		entity := em.CreateEntity()
		em.AddComponent(entity, &components.TileComponent{
			TileID:      id,
			Rotation:    rotation,
			AppearDelay: float64(id) * cfg.Tiles.EntranceStagger,
		})
		board.TileEntities[id] = entity
	}

	s.RecomputeZOrder()
	s.resetIdleTimer(board)

	log.Printf("[TileRevealSystem] Created %d tiles (board entity %d)", cfg.Tiles.TotalTiles, s.boardEntity)
	return s
}

// SetFinalAnimationCallback 设置爱心动画开始时的回调（彩纸、音效）
func (s *TileRevealSystem) SetFinalAnimationCallback(fn func()) {
	s.onFinalAnimation = fn
}

// SetTileRevealedCallback 设置封面卡片被移开时的回调
func (s *TileRevealSystem) SetTileRevealedCallback(fn func(tileID int)) {
	s.onTileRevealed = fn
}

// BoardEntity 返回场景单例实体
func (s *TileRevealSystem) BoardEntity() ecs.EntityID {
	return s.boardEntity
}

// Board 返回场景单例状态
func (s *TileRevealSystem) Board() *components.TileBoardComponent {
	board, _ := ecs.GetComponent[*components.TileBoardComponent](s.entityManager, s.boardEntity)
	return board
}

// Tile 按 TileID 查询卡片
func (s *TileRevealSystem) Tile(tileID int) (*components.TileComponent, bool) {
	board := s.Board()
	if board == nil {
		return nil, false
	}
	entity, ok := board.TileEntities[tileID]
	if !ok {
		return nil, false
	}
	return ecs.GetComponent[*components.TileComponent](s.entityManager, entity)
}

// HandleDragStart 开始拖拽卡片
// 未知卡片、已移开的卡片、最终动画中的爱心卡片忽略
func (s *TileRevealSystem) HandleDragStart(tileID int) {
	board := s.Board()
	tile, ok := s.Tile(tileID)
	if board == nil || !ok || tile.IsRevealed {
		return
	}
	if tileID == config.TerminalTileID && board.AnimateFinalTile {
		return
	}

	board.DraggingTile = tileID
	board.HintVisible = false
	CancelTimer(&board.HintTimer)

	tile.VelX, tile.VelY = 0, 0
	s.RecomputeZOrder()
}

// HandleDragMove 拖拽移动
// dx, dy 为相对按下位置的偏移；超出屏幕的部分按弹性系数保留
func (s *TileRevealSystem) HandleDragMove(tileID int, dx, dy float64) {
	board := s.Board()
	if board == nil || board.DraggingTile != tileID {
		return
	}
	tile, ok := s.Tile(tileID)
	if !ok {
		return
	}

	tile.X = utils.ElasticClamp(dx, -s.boundX, s.boundX, s.config.DragElastic)
	tile.Y = utils.ElasticClamp(dy, -s.boundY, s.boundY, s.config.DragElastic)
	tile.DisplayX, tile.DisplayY = tile.X, tile.Y

	s.resetIdleTimer(board)
}

// HandleDragEnd 结束拖拽
//
// 封面卡片拖拽距离超过阈值时移开（不可恢复），否则弹回原位。
// 爱心卡片总是弹回原位。
func (s *TileRevealSystem) HandleDragEnd(tileID int, dx, dy float64) {
	board := s.Board()
	if board == nil || board.DraggingTile != tileID {
		return
	}
	board.DraggingTile = config.NoTile

	entity := board.TileEntities[tileID]
	tile, ok := ecs.GetComponent[*components.TileComponent](s.entityManager, entity)
	if !ok {
		return
	}

	if tileID != config.TerminalTileID && math.Hypot(dx, dy) > s.config.RevealThreshold {
		s.revealTile(board, entity, tile, dx, dy)
	} else {
		tile.X, tile.Y = 0, 0
	}

	s.resetIdleTimer(board)
	s.RecomputeZOrder()
}

// revealTile 标记卡片为已移开并挂上飞出动画
func (s *TileRevealSystem) revealTile(board *components.TileBoardComponent, entity ecs.EntityID, tile *components.TileComponent, dx, dy float64) {
	tile.IsRevealed = true
	tile.X = utils.ElasticClamp(dx, -s.boundX, s.boundX, s.config.DragElastic)
	tile.Y = utils.ElasticClamp(dy, -s.boundY, s.boundY, s.config.DragElastic)
	tile.DisplayX, tile.DisplayY = tile.X, tile.Y
	tile.VelX, tile.VelY = 0, 0

	s.entityManager.AddComponent(entity, &components.TileExitComponent{
		StartX:   tile.X,
		StartY:   tile.Y,
		EndX:     tile.X + (s.rng.Float64()-0.5)*s.screenW,
		EndY:     tile.Y + (s.rng.Float64()-0.5)*s.screenH,
		StartRot: tile.Rotation,
		EndRot:   tile.Rotation + (s.rng.Float64()-0.5)*360,
		Duration: s.config.ExitDuration,
	})

	board.RevealedCount++
	log.Printf("[TileRevealSystem] Tile %d revealed (%d/%d)", tile.TileID, board.RevealedCount, board.TotalTiles-1)

	if s.onTileRevealed != nil {
		s.onTileRevealed(tile.TileID)
	}

	if board.RevealedCount >= board.TotalTiles-1 && !board.FinalTileVisible {
		board.FinalTileVisible = true
		board.HintVisible = false
		CancelTimer(&board.HintTimer)
		StartTimer(&board.FinalDelayTimer, s.config.FinalRevealDelay)
		log.Printf("[TileRevealSystem] All covers removed, final animation in %.2fs", s.config.FinalRevealDelay)
	}
}

// HandleTerminalClick 点击爱心卡片
// 只在最终动画进行中有效，揭示回调只触发一次
//
// 返回：
//   - true: 本次点击触发了揭示回调
func (s *TileRevealSystem) HandleTerminalClick() bool {
	board := s.Board()
	if board == nil || !board.AnimateFinalTile || board.RevealFired {
		return false
	}

	board.RevealFired = true
	log.Printf("[TileRevealSystem] Heart clicked, reveal fired")
	if s.onReveal != nil {
		s.onReveal()
	}
	return true
}

// HandleActivity 指针移动或触摸开始：隐藏提示并重新计时
func (s *TileRevealSystem) HandleActivity() {
	board := s.Board()
	if board == nil {
		return
	}
	s.resetIdleTimer(board)
}

// resetIdleTimer 隐藏提示并重新启动无操作计时器
// 只有在仍有封面且最终动画未开始时才重新计时
func (s *TileRevealSystem) resetIdleTimer(board *components.TileBoardComponent) {
	board.HintVisible = false
	CancelTimer(&board.HintTimer)
	if board.RevealedCount < board.TotalTiles-1 && !board.AnimateFinalTile {
		StartTimer(&board.HintTimer, s.config.InactivityTimeout)
	}
}

// Update 推进计时器
func (s *TileRevealSystem) Update(deltaTime float64) {
	board := s.Board()
	if board == nil {
		return
	}

	if TickTimer(&board.HintTimer, deltaTime) && board.DraggingTile == config.NoTile {
		board.HintVisible = true
		log.Printf("[TileRevealSystem] Idle for %.1fs, showing swipe hint", s.config.InactivityTimeout)
	}

	if TickTimer(&board.FinalDelayTimer, deltaTime) {
		board.AnimateFinalTile = true
		board.FinalElapsed = 0
		s.RecomputeZOrder()
		log.Printf("[TileRevealSystem] Final heart animation started")
		if s.onFinalAnimation != nil {
			s.onFinalAnimation()
		}
	}

	if board.AnimateFinalTile {
		board.FinalElapsed += deltaTime
	}
}

// ComputeTileZIndex 计算卡片层级（纯函数）
//
// 规则：
//   - 封面卡片: TileZBase + tileID
//   - 爱心卡片: TileZBase；拖拽中 TileZBase+total+1；最终动画中 TileZBase+total+2
//   - 拖拽中的卡片总是 TileZBase+total+1
func ComputeTileZIndex(tileID, total, draggingTile int, animateFinal bool) int {
	if tileID == config.TerminalTileID {
		switch {
		case animateFinal:
			return TileZBase + total + 2
		case draggingTile == tileID:
			return TileZBase + total + 1
		default:
			return TileZBase
		}
	}

	if draggingTile == tileID {
		return TileZBase + total + 1
	}
	return TileZBase + tileID
}

// RecomputeZOrder 重新计算所有卡片的层级
func (s *TileRevealSystem) RecomputeZOrder() {
	board := s.Board()
	if board == nil {
		return
	}

	for _, entity := range board.TileEntities {
		tile, ok := ecs.GetComponent[*components.TileComponent](s.entityManager, entity)
		if !ok {
			continue
		}
		tile.ZIndex = ComputeTileZIndex(tile.TileID, board.TotalTiles, board.DraggingTile, board.AnimateFinalTile)
	}
}

// TilesByZ 返回仍存活的卡片，按层级从低到高排序（绘制顺序）
func (s *TileRevealSystem) TilesByZ() []*components.TileComponent {
	ids := ecs.GetEntitiesWith1[*components.TileComponent](s.entityManager)
	tiles := make([]*components.TileComponent, 0, len(ids))
	for _, id := range ids {
		if tile, ok := ecs.GetComponent[*components.TileComponent](s.entityManager, id); ok {
			tiles = append(tiles, tile)
		}
	}

	sort.SliceStable(tiles, func(i, j int) bool {
		return tiles[i].ZIndex < tiles[j].ZIndex
	})
	return tiles
}

// TopTileAt 返回屏幕坐标 (x, y) 处最上层的可交互卡片
// 已移开的卡片不参与命中测试
//
// 返回：
//   - TileID，没有命中时返回 config.NoTile
func (s *TileRevealSystem) TopTileAt(x, y float64) int {
	board := s.Board()
	tiles := s.TilesByZ()
	for i := len(tiles) - 1; i >= 0; i-- {
		tile := tiles[i]
		if tile.IsRevealed {
			continue
		}

		cx, cy, scale, rotation := s.TileTransform(tile, board)
		local := utils.RotatePoint(utils.Point{X: x, Y: y}, cx, cy, -rotation*math.Pi/180)
		halfW := s.config.TileWidth * scale / 2
		halfH := s.config.TileHeight * scale / 2
		if math.Abs(local.X-cx) <= halfW && math.Abs(local.Y-cy) <= halfH {
			return tile.TileID
		}
	}
	return config.NoTile
}

// TileTransform 计算卡片的渲染变换
//
// 返回：
//   - cx, cy: 卡片中心（屏幕坐标）
//   - scale: 缩放（入场、最终爱心动画）
//   - rotation: 旋转角度（度）
func (s *TileRevealSystem) TileTransform(tile *components.TileComponent, board *components.TileBoardComponent) (cx, cy, scale, rotation float64) {
	centerX, centerY := s.screenW/2, s.screenH/2
	cx = centerX + tile.DisplayX
	cy = centerY + tile.DisplayY
	scale = 0.8 + 0.2*TileEntranceProgress(tile, s.config.EntranceDuration)
	rotation = tile.Rotation

	if tile.TileID == config.TerminalTileID && board != nil && board.AnimateFinalTile {
		scale = FinalHeartScale(board.FinalElapsed)
	}
	return cx, cy, scale, rotation
}

// TileEntranceProgress 入场动画进度（已缓动，0~1）
func TileEntranceProgress(tile *components.TileComponent, duration float64) float64 {
	return utils.EaseOutCubic(utils.Progress(tile.Age, tile.AppearDelay, duration))
}

// 爱心动画常量（秒）
const (
	finalHeartPopDuration   = 0.5
	finalHeartPulseDuration = 0.6
)

// FinalHeartScale 爱心卡片的缩放
// 前 0.5 秒按 1 → 1.4 → 1.3 弹出，之后在 1.3 和 1.4 之间往返脉动
func FinalHeartScale(elapsed float64) float64 {
	if elapsed < finalHeartPopDuration {
		return utils.Keyframes(elapsed/finalHeartPopDuration, []float64{1, 1.4, 1.3}, []float64{0, 0.7, 1})
	}

	p := math.Mod((elapsed-finalHeartPopDuration)/finalHeartPulseDuration, 2)
	if p > 1 {
		p = 2 - p
	}
	return 1.3 + 0.1*utils.EaseInOutSine(p)
}

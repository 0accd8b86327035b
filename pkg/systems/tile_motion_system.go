package systems

import (
	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
)

// TileMotionSystem 卡片运动系统
//
// 每帧：
//   - 推进入场动画计时
//   - 未拖拽的卡片通过弹簧追随逻辑位置（松手后弹回）
//   - 已移开的卡片播放飞出动画，结束后销毁实体
type TileMotionSystem struct {
	entityManager *ecs.EntityManager
	config        config.TileConfig
}

// NewTileMotionSystem 创建卡片运动系统
func NewTileMotionSystem(em *ecs.EntityManager, cfg config.TileConfig) *TileMotionSystem {
	return &TileMotionSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 更新所有卡片
func (s *TileMotionSystem) Update(deltaTime float64) {
	var board *components.TileBoardComponent
	if boards := ecs.GetEntitiesWith1[*components.TileBoardComponent](s.entityManager); len(boards) > 0 {
		board, _ = ecs.GetComponent[*components.TileBoardComponent](s.entityManager, boards[0])
	}
	dragging := config.NoTile
	if board != nil {
		dragging = board.DraggingTile
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TileComponent](s.entityManager) {
		tile, ok := ecs.GetComponent[*components.TileComponent](s.entityManager, id)
		if !ok {
			continue
		}
		tile.Age += deltaTime

		if exit, ok := ecs.GetComponent[*components.TileExitComponent](s.entityManager, id); ok {
			s.updateExit(id, tile, exit, board, deltaTime)
			continue
		}

		if tile.TileID == dragging {
			continue
		}

		tile.DisplayX, tile.VelX = utils.SpringStep(tile.DisplayX, tile.VelX, tile.X,
			s.config.SpringStiffness, s.config.SpringDamping, deltaTime)
		tile.DisplayY, tile.VelY = utils.SpringStep(tile.DisplayY, tile.VelY, tile.Y,
			s.config.SpringStiffness, s.config.SpringDamping, deltaTime)
	}
}

// updateExit 推进飞出动画，结束后销毁实体
func (s *TileMotionSystem) updateExit(id ecs.EntityID, tile *components.TileComponent, exit *components.TileExitComponent, board *components.TileBoardComponent, deltaTime float64) {
	exit.Elapsed += deltaTime
	p := TileExitProgress(exit)

	tile.DisplayX = utils.Lerp(exit.StartX, exit.EndX, p)
	tile.DisplayY = utils.Lerp(exit.StartY, exit.EndY, p)
	tile.Rotation = utils.Lerp(exit.StartRot, exit.EndRot, p)

	if exit.Elapsed >= exit.Duration {
		s.entityManager.DestroyEntity(id)
		ecs.RemoveComponent[*components.TileComponent](s.entityManager, id)
		if board != nil {
			delete(board.TileEntities, tile.TileID)
		}
	}
}

// TileExitProgress 飞出动画进度（ease-out，0~1）
func TileExitProgress(exit *components.TileExitComponent) float64 {
	return utils.EaseOutCubic(utils.Progress(exit.Elapsed, 0, exit.Duration))
}

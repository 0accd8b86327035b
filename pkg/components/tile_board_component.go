package components

import "github.com/decker502/lovenote/pkg/ecs"

// TileBoardComponent 卡片场景的单例状态
//
// 记录移开计数、拖拽中的卡片、最终卡片状态，以及两个计时器：
//   - HintTimer: 无操作一段时间后显示滑动提示
//   - FinalDelayTimer: 最后一张封面移开后延迟启动爱心动画
type TileBoardComponent struct {
	TotalTiles    int
	RevealedCount int

	// DraggingTile 正在拖拽的卡片 ID，没有时为 config.NoTile
	DraggingTile int

	FinalTileVisible bool // 所有封面都已移开
	AnimateFinalTile bool // 爱心动画进行中，可以点击
	RevealFired      bool // 揭示回调已触发（只触发一次）
	HintVisible      bool

	HintTimer       TimerComponent
	FinalDelayTimer TimerComponent

	// FinalElapsed 爱心动画开始后经过的时间（秒）
	FinalElapsed float64

	// TileEntities TileID -> 实体 ID，移开的卡片销毁后从表中删除
	TileEntities map[int]ecs.EntityID
}

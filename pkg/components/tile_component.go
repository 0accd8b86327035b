package components

// TileComponent 卡片组件
//
// 每张卡片是一个实体，按稳定的 TileID 标识。
// TileID 0 是最底层的爱心卡片（终点卡片），其余为可拖走的封面卡片。
//
// 位置均为相对屏幕中心的偏移：
//   - X, Y: 逻辑偏移（拖拽中跟随指针，松手后回到 0 或保持移开位置）
//   - DisplayX, DisplayY: 渲染偏移，松手后通过弹簧追随逻辑偏移
type TileComponent struct {
	TileID     int
	Rotation   float64 // 随机旋转角度（度），终点卡片为 0
	IsRevealed bool    // 一旦移开不可恢复

	X, Y               float64
	DisplayX, DisplayY float64
	VelX, VelY         float64 // 弹簧速度

	// ZIndex 绘制层级，由 RecomputeZOrder 统一计算
	ZIndex int

	// 入场动画
	AppearDelay float64 // 入场延迟（秒）
	Age         float64 // 挂载后经过的时间（秒）
}

// TileExitComponent 卡片移开后的飞出动画
// 动画结束后实体被销毁
type TileExitComponent struct {
	StartX, StartY float64
	EndX, EndY     float64
	StartRot       float64 // 度
	EndRot         float64 // 度
	Elapsed        float64
	Duration       float64
}

package components

// ProposalGameComponent 求婚小游戏状态
type ProposalGameComponent struct {
	// Elapsed 场景挂载后经过的时间（秒），驱动入场动画
	Elapsed float64

	// AcceptCount 点击"Yes"的次数（每次都会重新打开对话框）
	AcceptCount int

	// DeclineCount 点击"No"的次数
	DeclineCount int
}

// DeclineButtonComponent 会逃跑的"No"按钮
//
// 坐标为游戏区域内的局部坐标，(X, Y) 是缩放后按钮的左上角。
// 不变量：每次重新定位后
//
//	Padding <= X <= AreaWidth - Width*Scale - Padding
//	Padding <= Y <= AreaHeight - Height*Scale - Padding
//
// 区域过小时坐标退化为 Padding。
type DeclineButtonComponent struct {
	X, Y          float64 // 目标位置
	Scale         float64 // 目标缩放，只减不增，下限为 MinScale
	Width, Height float64 // 未缩放尺寸

	// IsMoving 指针首次进入区域后为 true，此后按钮会躲避指针
	IsMoving bool

	// 渲染状态：向目标位置/缩放做缓动
	DisplayX, DisplayY float64
	FromX, FromY       float64
	MoveElapsed        float64
	DisplayScale       float64
	FromScale          float64
	ScaleElapsed       float64
}

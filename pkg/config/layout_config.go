package config

// 布局配置常量
// 本文件定义了逻辑屏幕尺寸等与配置文件无关的固定布局参数

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	// Ebitengine 会将逻辑屏幕缩放到实际窗口大小
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// TerminalTileID 爱心（最终揭示）卡片的 ID
	// 该卡片不能通过拖拽移开，只能在其余卡片全部移开后点击
	TerminalTileID = 0

	// NoTile 表示当前没有卡片正在被拖拽
	NoTile = -1
)

// ScreenCenter 返回逻辑屏幕中心坐标
func ScreenCenter() (float64, float64) {
	return GameWindowWidth / 2.0, GameWindowHeight / 2.0
}

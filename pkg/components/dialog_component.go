package components

// DialogComponent 模态对话框组件
// 用于"Yes"之后的庆祝对话框，只有一个关闭按钮
type DialogComponent struct {
	Title       string  // 对话框标题（如"Yesss!"）
	Message     string  // 对话框消息
	ButtonLabel string  // 关闭按钮文字
	IsVisible   bool    // 是否可见
	Elapsed     float64 // 打开后经过的时间（秒），驱动弹出动画
	Width       float64 // 对话框宽度
	Height      float64 // 对话框高度
}

//go:build !android

package utils

// PrepareStorage 在打开偏好存储前调用
// 桌面端和 iOS 由 gdata 自行创建目录
func PrepareStorage(appName string) error {
	return nil
}

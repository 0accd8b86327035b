package game

import (
	"fmt"
	"log"

	"github.com/decker502/lovenote/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences 窗口与声音偏好
// 只保存显示和音量偏好，不保存任何场景进度
type Preferences struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
}

// DefaultPreferences 返回默认偏好
func DefaultPreferences() *Preferences {
	return &Preferences{
		SoundVolume:  0.6,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager 偏好管理器
// 负责偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 跨平台存储，可为 nil（降级模式）
	prefs        *Preferences
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// OpenPreferenceStore 打开偏好存储
// 失败时返回 nil，调用方进入降级模式
func OpenPreferenceStore(appName string) *gdata.Manager {
	if err := utils.PrepareStorage(appName); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: preference storage unavailable: %v", err)
		return nil
	}
	return manager
}

// NewSettingsManager 创建偏好管理器
//
// 参数：
//   - gdataManager: 跨平台存储，可为 nil（降级模式，仅内存）
//
// 加载失败不是致命错误，使用默认偏好。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		prefs:        DefaultPreferences(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load preferences: %v (using defaults)", err)
	}
	return sm
}

// Load 从存储加载偏好
// 降级模式或文件不存在时使用默认偏好
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.prefs = DefaultPreferences()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.prefs = loaded
	log.Printf("[SettingsManager] Preferences loaded: %+v", *loaded)
	return nil
}

// Save 保存偏好
// 降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[SettingsManager] Preferences saved")
	return nil
}

// IsPersistent 偏好是否能持久化
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// GetPreferences 获取当前偏好
func (sm *SettingsManager) GetPreferences() *Preferences {
	return sm.prefs
}

// SetSoundVolume 设置音效音量（限制在 0.0 ~ 1.0），需调用 Save() 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.prefs.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关，需调用 Save() 持久化
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.prefs.SoundEnabled = enabled
}

// ToggleSound 切换音效开关并返回新状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.prefs.SoundEnabled = !sm.prefs.SoundEnabled
	return sm.prefs.SoundEnabled
}

// SetFullscreen 设置全屏偏好，需调用 Save() 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.prefs.Fullscreen = enabled
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有音效的播放
//   - 从 SettingsManager 读取音量和开关
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager         // 可为 nil，此时使用默认偏好
	soundPlayers    map[string]*audio.Player // 音效名 -> 播放器
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于合成音效）
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放（音效关闭或没有音频设备时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.preferences().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.preferences().SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SoundEnabled 音效是否开启
func (am *AudioManager) SoundEnabled() bool {
	return am.preferences().SoundEnabled
}

// ToggleSound 切换音效开关并保存偏好
func (am *AudioManager) ToggleSound() bool {
	if am.settingsManager == nil {
		return false
	}
	enabled := am.settingsManager.ToggleSound()
	if !enabled {
		for _, player := range am.soundPlayers {
			player.Pause()
		}
	}
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save preferences: %v", err)
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// PreloadSounds 预合成音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, soundID := range soundIDs {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSound(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

func (am *AudioManager) preferences() *Preferences {
	if am.settingsManager != nil {
		return am.settingsManager.GetPreferences()
	}
	return DefaultPreferences()
}

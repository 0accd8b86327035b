package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// 字体名称
const (
	FontRegular = "regular"
	FontBold    = "bold"
	FontItalic  = "italic"
)

// 音效名称
const (
	SoundChime = "chime"
	SoundPop   = "pop"
)

// fontData 内置字体数据（Go 字体家族）
var fontData = map[string][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
	FontItalic:  goitalic.TTF,
}

// soundTones 内置合成音效
var soundTones = map[string]func() []utils.Tone{
	SoundChime: utils.ChimeTones,
	SoundPop:   utils.PopTones,
}

// ResourceManager is responsible for centralized management of fonts and sounds.
// All resources are built in: fonts come from the Go font family and
// sounds are synthesized, so nothing is read from disk at runtime.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
type ResourceManager struct {
	audioContext  *audio.Context                    // 可为 nil（无音频设备时）
	fontSources   map[string]*text.GoTextFaceSource // 字体名 -> 字体源
	fontFaceCache map[string]*text.GoTextFace       // "名称:字号" -> 字体
	soundCache    map[string]*audio.Player          // 音效名 -> 播放器
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context (48000 Hz). May be nil, in which case
//     LoadSound always fails and the app runs silently.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		fontSources:   make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		soundCache:    make(map[string]*audio.Player),
	}
}

// LoadFont 按名称和字号加载字体，结果被缓存
//
// 参数：
//   - name: FontRegular / FontBold / FontItalic
//   - size: 字号（逻辑像素）
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.fontSources[name]
	if !ok {
		data, known := fontData[name]
		if !known {
			return nil, fmt.Errorf("unknown font %q", name)
		}
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
		}
		rm.fontSources[name] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont 返回已缓存的字体，未加载时返回 nil
func (rm *ResourceManager) GetFont(name string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", name, size)]
}

// MustFont 加载字体，失败时记录日志并返回 nil（绘制代码对 nil 字体不绘制文字）
func (rm *ResourceManager) MustFont(name string, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(name, size)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v", err)
		return nil
	}
	return face
}

// LoadSound 合成并缓存音效播放器
func (rm *ResourceManager) LoadSound(name string) (*audio.Player, error) {
	if player, exists := rm.soundCache[name]; exists {
		return player, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for sound %q", name)
	}

	tones, ok := soundTones[name]
	if !ok {
		return nil, fmt.Errorf("unknown sound %q", name)
	}

	pcm := utils.EncodePCM16Stereo(utils.SynthesizeTones(tones()), 1)
	player := rm.audioContext.NewPlayerFromBytes(pcm)
	rm.soundCache[name] = player
	log.Printf("[ResourceManager] Synthesized sound %s (%d bytes)", name, len(pcm))
	return player, nil
}

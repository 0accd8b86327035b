// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/game"
	"github.com/decker502/lovenote/pkg/scenes"
	"github.com/decker502/lovenote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 资源路径与存储名
const (
	RevealConfigPath   = "data/reveal.yaml"
	MessagesConfigPath = "data/messages.yaml"
	AppName            = "lovenote"
	sampleRate         = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// Fullscreen 启动时进入全屏（覆盖保存的偏好）
	Fullscreen bool
	// Mute 启动时关闭音效（不写入偏好）
	Mute bool
	// NoAudio 不创建音频上下文（测试和无音频设备环境）
	NoAudio bool
	// NoPreferences 不读写偏好存储
	NoPreferences bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	reveal          *config.RevealConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	input           scenes.InputSource
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	reveal, err := config.LoadRevealConfig(RevealConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	messages, err := config.LoadMessagesConfig(MessagesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("文案配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s and %s", RevealConfigPath, MessagesConfigPath)

	// 偏好存储（失败时降级为内存偏好）
	var settingsManager *game.SettingsManager
	if cfg.NoPreferences {
		settingsManager = game.NewSettingsManager(nil)
	} else {
		settingsManager = game.NewSettingsManager(game.OpenPreferenceStore(AppName))
	}
	if cfg.Mute {
		settingsManager.SetSoundEnabled(false)
	}

	var audioContext *audio.Context
	if !cfg.NoAudio {
		audioContext = audio.NewContext(sampleRate)
	}
	resourceManager := game.NewResourceManager(audioContext)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	if audioContext != nil {
		audioManager.PreloadSounds([]string{game.SoundChime, game.SoundPop})
	}
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Random seed: %d", seed)

	a := &App{
		reveal:          reveal,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		input:           scenes.EbitenInput{},
		verbose:         cfg.Verbose,
	}

	deps := scenes.Deps{
		Config:    reveal,
		Messages:  messages,
		Resources: resourceManager,
		Audio:     audioManager,
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Input:     a.input,
	}

	a.sceneManager = game.NewSceneManager(reveal.Window.SceneFadeDuration)
	a.sceneManager.SetFadeColor(color.RGBA{R: 255, G: 240, B: 245, A: 255})
	a.sceneManager.SetSceneFactory(func(kind game.SceneKind, onComplete func()) game.Scene {
		return scenes.NewScene(kind, deps, onComplete)
	})
	a.sceneManager.Start(game.SceneTiles)

	// 移动端始终全屏
	if !utils.IsMobile() && (cfg.Fullscreen || settingsManager.GetPreferences().Fullscreen) {
		ebiten.SetFullscreen(true)
	}

	return a, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.reveal.Window.Width, a.reveal.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.reveal.Window.Width, a.reveal.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音效
	if a.input.KeyJustPressed(ebiten.KeyM) {
		a.audioManager.ToggleSound()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存偏好
func (a *App) toggleFullscreen() {
	isFullscreen := ebiten.IsFullscreen()
	if isFullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(!isFullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save preferences: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.reveal.Window.Width, a.reveal.Window.Height
}

// WindowTitle 窗口标题
func (a *App) WindowTitle() string {
	return a.reveal.Window.Title
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回偏好管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/lovenote/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// RevealConfigPath 场景常量配置文件路径
const RevealConfigPath = "data/reveal.yaml"

// RevealConfig 三个场景的全部静态常量
//
// 配置文件位置: data/reveal.yaml
// 所有值在构建时嵌入，运行时只读。
type RevealConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Tiles    TileConfig     `yaml:"tiles"`
	Letter   LetterConfig   `yaml:"letter"`
	Game     GameConfig     `yaml:"game"`
	Confetti ConfettiPreset `yaml:"confetti"`
}

// WindowConfig 窗口与场景切换配置
type WindowConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	Title             string  `yaml:"title"`
	SceneFadeDuration float64 `yaml:"sceneFadeDuration"` // 场景淡出/淡入时长（秒）
}

// TileConfig 卡片揭示场景配置
type TileConfig struct {
	TotalTiles        int     `yaml:"totalTiles"`        // 卡片总数（含爱心卡片）
	RevealThreshold   float64 `yaml:"revealThreshold"`   // 移开阈值（像素）
	InactivityTimeout float64 `yaml:"inactivityTimeout"` // 无操作提示超时（秒）
	MaxRotation       float64 `yaml:"maxRotation"`       // 封面随机旋转幅度（度）
	TileWidth         float64 `yaml:"tileWidth"`
	TileHeight        float64 `yaml:"tileHeight"`
	DragSlop          float64 `yaml:"dragSlop"`    // 开始拖拽前允许的移动距离
	DragElastic       float64 `yaml:"dragElastic"` // 越界弹性系数 0~1
	ExitDuration      float64 `yaml:"exitDuration"`
	FinalRevealDelay  float64 `yaml:"finalRevealDelay"`
	EntranceDuration  float64 `yaml:"entranceDuration"`
	EntranceStagger   float64 `yaml:"entranceStagger"`
	SpringStiffness   float64 `yaml:"springStiffness"`
	SpringDamping     float64 `yaml:"springDamping"`
}

// LetterConfig 信件场景配置
type LetterConfig struct {
	ContainerWidth        float64 `yaml:"containerWidth"`
	ContainerHeight       float64 `yaml:"containerHeight"`
	ViewportInset         float64 `yaml:"viewportInset"` // 全屏信纸距屏幕边缘的距离
	EnvelopeEnterDuration float64 `yaml:"envelopeEnterDuration"`
	FlapDelay             float64 `yaml:"flapDelay"`
	FlapDuration          float64 `yaml:"flapDuration"`
	PartialDelay          float64 `yaml:"partialDelay"`
	SlideDuration         float64 `yaml:"slideDuration"`
	ExpandDuration        float64 `yaml:"expandDuration"`
	ShrinkDuration        float64 `yaml:"shrinkDuration"`
	TextFadeDuration      float64 `yaml:"textFadeDuration"`
	ScrollStep            float64 `yaml:"scrollStep"` // 每格滚轮滚动的像素
}

// ButtonSize 按钮尺寸（缩放前）
type ButtonSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameConfig 求婚小游戏配置
type GameConfig struct {
	AreaWidth     float64    `yaml:"areaWidth"`
	AreaHeight    float64    `yaml:"areaHeight"`
	Padding       float64    `yaml:"padding"`     // 按钮距区域边缘的最小距离
	Proximity     float64    `yaml:"proximity"`   // 指针靠近到该距离内时按钮逃开
	ScaleFactor   float64    `yaml:"scaleFactor"` // 每次点击"No"后的缩放系数
	MinScale      float64    `yaml:"minScale"`
	MoveDuration  float64    `yaml:"moveDuration"`
	ScaleDuration float64    `yaml:"scaleDuration"`
	EnterDelay    float64    `yaml:"enterDelay"`
	EnterDuration float64    `yaml:"enterDuration"`
	ToastDuration float64    `yaml:"toastDuration"`
	AcceptButton  ButtonSize `yaml:"acceptButton"`
	DeclineButton ButtonSize `yaml:"declineButton"`
}

// ConfettiPreset 两个场景使用的彩纸参数
type ConfettiPreset struct {
	Tiles    ConfettiConfig `yaml:"tiles"`
	Proposal ConfettiConfig `yaml:"proposal"`
}

// ConfettiConfig 一次彩纸喷发的参数
//
// 速度和重力按 60fps 下每帧的像素值给出，由 ConfettiSystem 按 deltaTime 换算。
type ConfettiConfig struct {
	Pieces           int      `yaml:"pieces"`
	Gravity          float64  `yaml:"gravity"`
	InitialVelocityX float64  `yaml:"initialVelocityX"`
	InitialVelocityY float64  `yaml:"initialVelocityY"`
	TweenDuration    float64  `yaml:"tweenDuration"` // 全部彩纸发射完毕所用时间（秒）
	Colors           []string `yaml:"colors"`
}

// DefaultRevealConfig 返回默认配置
// 配置文件中缺失的字段保持默认值
func DefaultRevealConfig() *RevealConfig {
	return &RevealConfig{
		Window: WindowConfig{
			Width:             GameWindowWidth,
			Height:            GameWindowHeight,
			Title:             "For You",
			SceneFadeDuration: 0.5,
		},
		Tiles: TileConfig{
			TotalTiles:        16,
			RevealThreshold:   100,
			InactivityTimeout: 5.0,
			MaxRotation:       5,
			TileWidth:         256,
			TileHeight:        192,
			DragSlop:          3,
			DragElastic:       0.1,
			ExitDuration:      0.6,
			FinalRevealDelay:  0.3,
			EntranceDuration:  0.5,
			EntranceStagger:   0.05,
			SpringStiffness:   300,
			SpringDamping:     30,
		},
		Letter: LetterConfig{
			ContainerWidth:        448,
			ContainerHeight:       384,
			ViewportInset:         32,
			EnvelopeEnterDuration: 0.8,
			FlapDelay:             0.8,
			FlapDuration:          0.8,
			PartialDelay:          0.2,
			SlideDuration:         0.7,
			ExpandDuration:        0.7,
			ShrinkDuration:        0.6,
			TextFadeDuration:      0.4,
			ScrollStep:            24,
		},
		Game: GameConfig{
			AreaWidth:     384,
			AreaHeight:    256,
			Padding:       20,
			Proximity:     80,
			ScaleFactor:   0.95,
			MinScale:      0.2,
			MoveDuration:  0.3,
			ScaleDuration: 0.1,
			EnterDelay:    0.3,
			EnterDuration: 0.5,
			ToastDuration: 2.0,
			AcceptButton:  ButtonSize{Width: 132, Height: 52},
			DeclineButton: ButtonSize{Width: 100, Height: 44},
		},
		Confetti: ConfettiPreset{
			Tiles: ConfettiConfig{
				Pieces:           400,
				Gravity:          0.25,
				InitialVelocityX: 4,
				InitialVelocityY: 30,
				TweenDuration:    1.5,
				Colors:           []string{"#FFC0CB", "#FF69B4", "#FF1493", "#DB7093", "#B76E79", "#FFFFFF", "#DC143C"},
			},
			Proposal: ConfettiConfig{
				Pieces:           400,
				Gravity:          0.15,
				InitialVelocityX: 4,
				InitialVelocityY: 20,
				TweenDuration:    5.0,
				Colors:           []string{"#FFC0CB", "#FF69B4", "#B76E79", "#FFFFFF", "#ADD8E6", "#F8F8FF"},
			},
		},
	}
}

// LoadRevealConfig 从嵌入资源加载场景常量配置
//
// 参数:
//   - path: 配置文件路径（如 "data/reveal.yaml"）
//
// 返回:
//   - *RevealConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadRevealConfig(path string) (*RevealConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reveal config: %w", err)
	}
	return ParseRevealConfig(data)
}

// ParseRevealConfig 解析 YAML 数据，缺失字段使用默认值
func ParseRevealConfig(data []byte) (*RevealConfig, error) {
	cfg := DefaultRevealConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse reveal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reveal config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *RevealConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	t := c.Tiles
	if t.TotalTiles < 2 {
		return fmt.Errorf("totalTiles must be at least 2 (one reveal tile plus covers), got %d", t.TotalTiles)
	}
	if t.RevealThreshold <= 0 {
		return fmt.Errorf("revealThreshold must be positive, got %.1f", t.RevealThreshold)
	}
	if t.InactivityTimeout <= 0 {
		return fmt.Errorf("inactivityTimeout must be positive, got %.2f", t.InactivityTimeout)
	}
	if t.TileWidth <= 0 || t.TileHeight <= 0 {
		return fmt.Errorf("tile size must be positive, got %.0fx%.0f", t.TileWidth, t.TileHeight)
	}
	if t.DragElastic < 0 || t.DragElastic > 1 {
		return fmt.Errorf("dragElastic must be within [0, 1], got %.2f", t.DragElastic)
	}
	if t.ExitDuration <= 0 {
		return fmt.Errorf("exitDuration must be positive, got %.2f", t.ExitDuration)
	}

	l := c.Letter
	if l.ContainerWidth <= 0 || l.ContainerHeight <= 0 {
		return fmt.Errorf("letter container size must be positive, got %.0fx%.0f", l.ContainerWidth, l.ContainerHeight)
	}
	if l.FlapDuration <= 0 || l.SlideDuration <= 0 || l.ExpandDuration <= 0 || l.ShrinkDuration <= 0 {
		return fmt.Errorf("letter animation durations must be positive")
	}

	g := c.Game
	if g.AreaWidth <= 0 || g.AreaHeight <= 0 {
		return fmt.Errorf("game area size must be positive, got %.0fx%.0f", g.AreaWidth, g.AreaHeight)
	}
	if g.ScaleFactor <= 0 || g.ScaleFactor > 1 {
		return fmt.Errorf("scaleFactor must be within (0, 1], got %.2f", g.ScaleFactor)
	}
	if g.MinScale <= 0 || g.MinScale > 1 {
		return fmt.Errorf("minScale must be within (0, 1], got %.2f", g.MinScale)
	}
	if g.Proximity <= 0 {
		return fmt.Errorf("proximity must be positive, got %.1f", g.Proximity)
	}
	if g.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %.1f", g.Padding)
	}
	if g.DeclineButton.Width <= 0 || g.DeclineButton.Height <= 0 {
		return fmt.Errorf("declineButton size must be positive")
	}

	for name, cc := range map[string]ConfettiConfig{"tiles": c.Confetti.Tiles, "proposal": c.Confetti.Proposal} {
		if err := cc.Validate(); err != nil {
			return fmt.Errorf("confetti.%s: %w", name, err)
		}
	}

	return nil
}

// Validate 验证彩纸参数
func (c ConfettiConfig) Validate() error {
	if c.Pieces <= 0 {
		return fmt.Errorf("pieces must be positive, got %d", c.Pieces)
	}
	if c.TweenDuration < 0 {
		return fmt.Errorf("tweenDuration must not be negative, got %.2f", c.TweenDuration)
	}
	if len(c.Colors) == 0 {
		return fmt.Errorf("colors must not be empty")
	}
	for _, hex := range c.Colors {
		if _, err := ParseHexColor(hex); err != nil {
			return err
		}
	}
	return nil
}

// Palette 返回解析后的颜色列表
// 无法解析的颜色会被跳过（Validate 已保证正常配置不会出现）
func (c ConfettiConfig) Palette() []color.RGBA {
	palette := make([]color.RGBA, 0, len(c.Colors))
	for _, hex := range c.Colors {
		if clr, err := ParseHexColor(hex); err == nil {
			palette = append(palette, clr)
		}
	}
	return palette
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RGB" 格式的颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	clr := color.RGBA{A: 0xff}

	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &clr.R, &clr.G, &clr.B); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
		}
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &clr.R, &clr.G, &clr.B); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
		}
		clr.R *= 17
		clr.G *= 17
		clr.B *= 17
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RGB", hex)
	}

	return clr, nil
}

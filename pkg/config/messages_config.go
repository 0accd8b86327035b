package config

import (
	"fmt"

	"github.com/decker502/lovenote/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// MessagesConfigPath 界面文本配置文件路径
const MessagesConfigPath = "data/messages.yaml"

// MessagesConfig 各场景显示的文本
//
// 配置文件位置: data/messages.yaml
type MessagesConfig struct {
	Tiles        TileMessages   `yaml:"tiles"`
	Letter       LetterMessages `yaml:"letter"`
	Game         GameMessages   `yaml:"game"`
	CuteMessages []string       `yaml:"cuteMessages"` // 点击"No"时随机弹出的提示
}

// TileMessages 卡片场景文本
type TileMessages struct {
	SwipeHint    string `yaml:"swipeHint"`
	FinalCaption string `yaml:"finalCaption"`
}

// LetterMessages 信件场景文本
type LetterMessages struct {
	PartialText   string `yaml:"partialText"` // 信封打开后露出的开头
	FullText      string `yaml:"fullText"`
	PartialPrompt string `yaml:"partialPrompt"`
	FullPrompt    string `yaml:"fullPrompt"`
}

// GameMessages 求婚小游戏文本
type GameMessages struct {
	Question      string `yaml:"question"`
	AcceptLabel   string `yaml:"acceptLabel"`
	DeclineLabel  string `yaml:"declineLabel"`
	ToastTitle    string `yaml:"toastTitle"`
	DialogTitle   string `yaml:"dialogTitle"`
	DialogMessage string `yaml:"dialogMessage"`
	CloseLabel    string `yaml:"closeLabel"`
}

// DefaultMessagesConfig 返回内置文本（与 data/messages.yaml 一致）
// 用于预览工具和测试
func DefaultMessagesConfig() *MessagesConfig {
	return &MessagesConfig{
		Tiles: TileMessages{
			SwipeHint:    "(Swipe the letters)",
			FinalCaption: "Click the heart...",
		},
		Letter: LetterMessages{
			PartialText:   "My Dearest,\n\nThere's something I've been...",
			FullText:      "My Dearest,\n\nThere's something I've been wanting to ask you for a while now.",
			PartialPrompt: "(click to read more...)",
			FullPrompt:    "(click the letter...)",
		},
		Game: GameMessages{
			Question:      "I love you, will you accept my proposal? Please...",
			AcceptLabel:   "Yes",
			DeclineLabel:  "No",
			ToastTitle:    "<3",
			DialogTitle:   "Yesss!",
			DialogMessage: "Love You Pookie",
			CloseLabel:    "Close",
		},
		CuteMessages: []string{
			"Oops, try again?",
			"Aww, don't be like that!",
			"My heart says yes though...",
			"Pretty please?",
			"Is that a maybe?",
		},
	}
}

// LoadMessagesConfig 从嵌入资源加载界面文本
func LoadMessagesConfig(path string) (*MessagesConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages config: %w", err)
	}
	return ParseMessagesConfig(data)
}

// ParseMessagesConfig 解析 YAML 格式的界面文本
func ParseMessagesConfig(data []byte) (*MessagesConfig, error) {
	var cfg MessagesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse messages config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid messages config: %w", err)
	}

	return &cfg, nil
}

// Validate 检查必需文本是否存在
func (c *MessagesConfig) Validate() error {
	if c.Letter.PartialText == "" || c.Letter.FullText == "" {
		return fmt.Errorf("letter texts must not be empty")
	}
	if len(c.CuteMessages) == 0 {
		return fmt.Errorf("cuteMessages must contain at least one message")
	}
	if c.Game.Question == "" {
		return fmt.Errorf("game question must not be empty")
	}
	return nil
}

// validate_config 校验 data/ 下的 YAML 配置并打印摘要
//
// 用法：
//
//	go run ./cmd/validate_config [--root .]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/lovenote/pkg/config"
	"github.com/decker502/lovenote/pkg/embedded"
)

func main() {
	root := flag.String("root", ".", "包含 data/ 的目录")
	flag.Parse()

	embedded.Init(os.DirFS(*root))

	reveal, err := config.LoadRevealConfig("data/reveal.yaml")
	if err != nil {
		fmt.Printf("❌ reveal.yaml: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ reveal.yaml 格式正确\n")
	fmt.Printf("   窗口 %dx%d，卡片 %d 张，移开阈值 %.0fpx\n",
		reveal.Window.Width, reveal.Window.Height, reveal.Tiles.TotalTiles, reveal.Tiles.RevealThreshold)
	for name, c := range map[string]config.ConfettiConfig{"tiles": reveal.Confetti.Tiles, "proposal": reveal.Confetti.Proposal} {
		fmt.Printf("   彩纸 %-8s %d 片，重力 %.2f，颜色 %d 种\n", name, c.Pieces, c.Gravity, len(c.Palette()))
	}

	messages, err := config.LoadMessagesConfig("data/messages.yaml")
	if err != nil {
		fmt.Printf("❌ messages.yaml: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ messages.yaml 格式正确\n")
	fmt.Printf("   问题: %q，随机提示 %d 条\n", messages.Game.Question, len(messages.CuteMessages))
}

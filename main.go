package main

import (
	"flag"
	"log"

	"github.com/decker502/lovenote/pkg/app"
	"github.com/decker502/lovenote/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	fullscreen := flag.Bool("fullscreen", false, "以全屏模式启动")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	mute := flag.Bool("mute", false, "启动时关闭音效")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		Fullscreen: *fullscreen,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"log"

	"github.com/gonewx/avatarview/pkg/app"
	"github.com/gonewx/avatarview/pkg/config"
	"github.com/gonewx/avatarview/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose   = flag.Bool("verbose", false, "显示详细日志")
	stylePath = flag.String("style", config.DefaultStyleSheetPath, "头像样式表（YAML），data/ 开头时读取内置资源")
	imagePath = flag.String("image", "", "延迟到达的头像图片（PNG/JPEG），为空则使用内置头像")
	fontPath  = flag.String("font", "", "占位符字体（TTF/OTF），为空则使用内置字体")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	avatarApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		StylePath: *stylePath,
		ImagePath: *imagePath,
		FontPath:  *fontPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer avatarApp.Close()

	ebiten.SetWindowSize(config.DemoWindowWidth, config.DemoWindowHeight)
	ebiten.SetWindowTitle("AvatarView")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(avatarApp); err != nil {
		log.Fatal(err)
	}
}

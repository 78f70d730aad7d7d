// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/avatarview/pkg/config"
	"github.com/gonewx/avatarview/pkg/game"
	"github.com/gonewx/avatarview/pkg/render/ebitensurface"
	"github.com/gonewx/avatarview/pkg/scenes"
	"github.com/gonewx/avatarview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StylePath 样式表路径，"data/" 开头时从嵌入资源读取
	StylePath string
	// ImagePath 延迟到达的头像图片（PNG/JPEG），为空则生成内置头像
	ImagePath string
	// FontPath 占位符字体（TTF/OTF），为空则使用内置 Go Regular
	FontPath string
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// StylePath 指向嵌入资源时，调用此函数前必须先调用 embedded.Init()。
// 样式表加载失败不是致命错误，会回退到内置样式表。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	styles := loadStyles(cfg.StylePath)

	portrait, err := loadPortrait(cfg.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("头像图片加载失败: %w", err)
	}

	var faces *ebitensurface.FaceCache
	if cfg.FontPath != "" {
		faces, err = ebitensurface.LoadFaceCache(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("字体加载失败: %w", err)
		}
		log.Printf("[App] Using font %s", cfg.FontPath)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewDemoScene(styles, portrait, faces, nil))

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// loadStyles 加载样式表，失败时回退到内置样式表
func loadStyles(path string) *config.StyleSheet {
	if path == "" {
		path = config.DefaultStyleSheetPath
	}
	styles, err := config.LoadStyleSheet(path)
	if err != nil {
		log.Printf("[App] Warning: %v, using built-in styles", err)
		return config.DefaultStyleSheet()
	}
	log.Printf("[Config] Loaded %d avatar styles from %s: %v", len(styles.Styles), path, styles.Names())
	return styles
}

// loadPortrait 加载头像图片，路径为空时生成内置头像
func loadPortrait(path string) (image.Image, error) {
	if path == "" || utils.IsMobile() {
		return utils.GenerateDemoPortrait(config.DemoAvatarSize*2, config.DemoAvatarSize*2), nil
	}
	img, err := utils.LoadImageFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Loaded portrait %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DemoWindowWidth, config.DemoWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.DemoWindowWidth, config.DemoWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
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
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.DemoWindowWidth, config.DemoWindowHeight
}

// Close 关闭当前场景并释放纹理（窗口关闭时调用）
func (a *App) Close() {
	a.sceneManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Package scenes 演示程序的场景
package scenes

import (
	"image"
	"image/color"
	"log"

	"github.com/gonewx/avatarview/pkg/avatar"
	"github.com/gonewx/avatarview/pkg/components"
	"github.com/gonewx/avatarview/pkg/config"
	"github.com/gonewx/avatarview/pkg/ecs"
	"github.com/gonewx/avatarview/pkg/render/ebitensurface"
	"github.com/gonewx/avatarview/pkg/systems"
	"github.com/gonewx/avatarview/pkg/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// demoHint 屏幕底部的操作提示
const demoHint = "click an avatar: toggle image   C: reset images   F11: fullscreen"

// 演示场景颜色
var (
	demoBackgroundColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
	demoCaptionColor    = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
)

// DemoAvatar 演示场景中一个头像的初始设置
type DemoAvatar struct {
	Style      string  // 样式表中的样式名
	UserName   string  // 覆盖样式中的名称，空字符串表示不设置
	ImageDelay float64 // 图片到达的延迟（秒），0 表示始终显示占位符
}

// DefaultDemoAvatars 三个头像：先显示 "S" 占位符 3 秒后出现照片；
// 只有默认占位符 "-"；绿色 6 像素边框的 "K" 占位符 5 秒后出现照片
func DefaultDemoAvatars() []DemoAvatar {
	return []DemoAvatar{
		{Style: "default", UserName: "Sergey", ImageDelay: config.DemoFirstImageDelay},
		{Style: "default"},
		{Style: "outlined", UserName: "Korolyov", ImageDelay: config.DemoSecondImageDelay},
	}
}

// DemoScene 头像展示场景
//
// 每个头像是一个实体：AvatarComponent + CaptionComponent，
// 有延迟图片的头像额外带 TimerComponent + PendingImageComponent。
//
// 操作：
//   - 点击头像：在图片和占位符之间切换
//   - C 键：清空所有图片并重新安排延迟到达
type DemoScene struct {
	entityManager *ecs.EntityManager
	arrivalSystem *systems.ImageArrivalSystem
	avatarSystem  *systems.AvatarSystem
	renderSystem  *systems.RenderSystem

	portrait image.Image
	avatars  map[ecs.EntityID]DemoAvatar
	closed   bool
}

// NewDemoScene 创建演示场景
//
// 参数：
//   - styles: 样式表，缺少的样式回退到默认配置
//   - portrait: 延迟到达的头像图片
//   - faces: 字体缓存，nil 使用内置字体
//   - avatars: 头像列表，nil 使用 DefaultDemoAvatars
func NewDemoScene(styles *config.StyleSheet, portrait image.Image, faces *ebitensurface.FaceCache, avatars []DemoAvatar) *DemoScene {
	if faces == nil {
		faces = ebitensurface.DefaultFaceCache()
	}
	if avatars == nil {
		avatars = DefaultDemoAvatars()
	}

	em := ecs.NewEntityManager()
	s := &DemoScene{
		entityManager: em,
		arrivalSystem: systems.NewImageArrivalSystem(em),
		avatarSystem:  systems.NewAvatarSystem(em),
		renderSystem:  systems.NewRenderSystem(em, faces, config.DemoCaptionOffsetY),
		portrait:      portrait,
		avatars:       make(map[ecs.EntityID]DemoAvatar, len(avatars)),
	}
	em.OnDestroy = func(id ecs.EntityID) {
		delete(s.avatars, id)
	}

	for i, a := range avatars {
		s.createAvatar(i, len(avatars), a, styles, faces)
	}

	log.Printf("[DemoScene] created %d avatars", len(avatars))
	return s
}

// createAvatar 创建一个头像实体
func (s *DemoScene) createAvatar(index, count int, a DemoAvatar, styles *config.StyleSheet, faces *ebitensurface.FaceCache) ecs.EntityID {
	cfg := config.DefaultAvatarConfig()
	if styles != nil {
		styled, err := styles.Style(a.Style)
		if err != nil {
			log.Printf("[DemoScene] Warning: %v, using defaults", err)
		} else {
			cfg = styled
		}
	}
	if a.UserName != "" {
		cfg.UserName = a.UserName
	}

	x := config.DemoAvatarX(index, count)
	bounds := image.Rect(x, config.DemoAvatarTop, x+config.DemoAvatarSize, config.DemoAvatarTop+config.DemoAvatarSize)

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.AvatarComponent{
		Widget: widget.NewAvatarWidget(cfg, bounds, faces),
		Style:  a.Style,
	})
	s.entityManager.AddComponent(id, &components.CaptionComponent{
		Text:  captionFor(cfg),
		Color: demoCaptionColor,
	})
	s.avatars[id] = a
	s.scheduleImage(id)
	return id
}

func captionFor(cfg config.AvatarConfig) string {
	if cfg.UserName == "" {
		return "(no name)"
	}
	return cfg.UserName
}

// scheduleImage 为有延迟图片的头像安排图片到达
func (s *DemoScene) scheduleImage(id ecs.EntityID) {
	a := s.avatars[id]
	if a.ImageDelay <= 0 || s.portrait == nil {
		return
	}
	s.entityManager.AddComponent(id, &components.TimerComponent{
		Name:       "image_arrival",
		TargetTime: a.ImageDelay,
	})
	s.entityManager.AddComponent(id, &components.PendingImageComponent{Image: s.portrait})
}

// Update 推进计时器和动画
func (s *DemoScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	s.handleInput()
	s.arrivalSystem.Update(deltaTime)
	s.avatarSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// handleInput 处理鼠标点击和键盘
func (s *DemoScene) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.ResetImages()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if id, ok := s.AvatarAt(image.Pt(x, y)); ok {
			s.ToggleImage(id)
		}
	}
}

// Draw 绘制背景、头像和说明文字
func (s *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(demoBackgroundColor)
	s.renderSystem.Draw(screen)
	ebitenutil.DebugPrintAt(screen, demoHint, 8, screen.Bounds().Dy()-20)
}

// Avatars 按创建顺序返回头像实体
func (s *DemoScene) Avatars() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.AvatarComponent](s.entityManager)
}

// Widget 返回实体对应的控件
func (s *DemoScene) Widget(id ecs.EntityID) (*widget.AvatarWidget, bool) {
	avatarComp, ok := ecs.GetComponent[*components.AvatarComponent](s.entityManager, id)
	if !ok {
		return nil, false
	}
	return avatarComp.Widget, true
}

// AvatarAt 返回包含屏幕坐标 p 的头像实体
func (s *DemoScene) AvatarAt(p image.Point) (ecs.EntityID, bool) {
	for _, id := range s.Avatars() {
		if w, ok := s.Widget(id); ok && p.In(w.Bounds()) {
			return id, true
		}
	}
	return 0, false
}

// ToggleImage 显示图片时清空，显示占位符时立即设置图片
func (s *DemoScene) ToggleImage(id ecs.EntityID) {
	w, ok := s.Widget(id)
	if !ok {
		return
	}
	ecs.RemoveComponent[*components.TimerComponent](s.entityManager, id)
	ecs.RemoveComponent[*components.PendingImageComponent](s.entityManager, id)

	if w.View().State() == avatar.StateShowingImage {
		w.SetImage(nil)
		return
	}
	if s.portrait != nil {
		w.SetImage(s.portrait)
	}
}

// ResetImages 清空所有图片并重新安排延迟到达
func (s *DemoScene) ResetImages() {
	log.Printf("[DemoScene] resetting images")
	for _, id := range s.Avatars() {
		if w, ok := s.Widget(id); ok {
			w.SetImage(nil)
		}
		s.scheduleImage(id)
	}
}

// Close 实现 game.Closer：关闭所有控件并释放纹理
func (s *DemoScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.avatarSystem.CloseAll()
	for _, id := range s.Avatars() {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
}

// Package widget 把 avatar.View 接入 Ebitengine 的 Update/Draw 循环
package widget

import (
	"image"
	"image/color"
	"log"

	"github.com/gonewx/avatarview/pkg/avatar"
	"github.com/gonewx/avatarview/pkg/config"
	"github.com/gonewx/avatarview/pkg/render/ebitensurface"
	"github.com/hajimehoshi/ebiten/v2"
)

// AvatarWidget 可放置在屏幕任意矩形区域内的圆形头像控件
//
// 控件把头像渲染到自己的离屏画布，只有在视图请求重绘或尺寸变化时才重新合成，
// 其余帧直接把画布贴到屏幕上。
type AvatarWidget struct {
	view      *avatar.View
	allocator *ebitensurface.Allocator
	faces     *ebitensurface.FaceCache

	bounds image.Rectangle
	canvas *ebiten.Image
	image  *ebiten.Image // 由 SetImage 上传的纹理，控件负责释放

	needsRedraw bool
	redraws     int
	closed      bool
}

// NewAvatarWidget 创建控件
//
// 参数：
//   - cfg: 构造时读取的头像配置
//   - bounds: 控件在屏幕上的矩形区域
//   - faces: 字体缓存，nil 使用内置字体
func NewAvatarWidget(cfg config.AvatarConfig, bounds image.Rectangle, faces *ebitensurface.FaceCache) *AvatarWidget {
	if faces == nil {
		faces = ebitensurface.DefaultFaceCache()
	}
	allocator := ebitensurface.NewAllocator(faces)

	w := &AvatarWidget{
		view:        avatar.NewView(cfg, allocator),
		allocator:   allocator,
		faces:       faces,
		bounds:      bounds,
		needsRedraw: true,
	}
	w.view.OnStateChange = func(from, to avatar.ViewState) {
		log.Printf("[AvatarWidget] %q: %s -> %s", w.view.Config().UserName, from, to)
	}
	w.view.Attach(w)
	return w
}

// Invalidate 实现 avatar.Host
func (w *AvatarWidget) Invalidate() {
	w.needsRedraw = true
}

// View 返回底层视图
func (w *AvatarWidget) View() *avatar.View {
	return w.view
}

// Bounds 控件在屏幕上的区域
func (w *AvatarWidget) Bounds() image.Rectangle {
	return w.bounds
}

// SetBounds 移动或缩放控件，尺寸变化会在下一帧重新合成
func (w *AvatarWidget) SetBounds(bounds image.Rectangle) {
	if bounds == w.bounds {
		return
	}
	if bounds.Size() != w.bounds.Size() {
		w.needsRedraw = true
	}
	w.bounds = bounds
}

// SetUserName 设置显示名称
func (w *AvatarWidget) SetUserName(name string) {
	w.view.SetUserName(name)
}

// SetBorderColor 设置边框颜色
func (w *AvatarWidget) SetBorderColor(clr color.RGBA) {
	w.view.SetBorderColor(clr)
}

// SetBorderWidth 设置边框宽度（像素）
func (w *AvatarWidget) SetBorderWidth(widthPx int) {
	w.view.SetBorderWidth(widthPx)
}

// SetImage 设置或清空头像图片，nil 与 avatar.IsEmptyImage 为真的图片都视为清空
// 非 *ebiten.Image 的图片在这里一次性上传为纹理，避免逐帧上传
func (w *AvatarWidget) SetImage(img image.Image) {
	old := w.image
	w.image = nil
	runs := w.view.PulseRuns()

	if avatar.IsEmptyImage(img) {
		w.view.SetImage(nil)
	} else if src, ok := img.(*ebiten.Image); ok {
		w.view.SetImage(src)
	} else {
		w.image = ebiten.NewImageFromImage(img)
		w.view.SetImage(w.image)
	}

	if old != nil {
		old.Deallocate()
	}
	if w.view.PulseRuns() > runs {
		log.Printf("[AvatarWidget] %q: border pulse started", w.view.Config().UserName)
	}
}

// Update 逐帧推进动画
// deltaTime 为距上一帧的秒数
func (w *AvatarWidget) Update(deltaTime float64) {
	if w.closed {
		return
	}
	wasActive := w.view.PulseActive()
	w.view.Update(deltaTime)
	if wasActive && !w.view.PulseActive() {
		log.Printf("[AvatarWidget] %q: border pulse finished", w.view.Config().UserName)
	}
}

// NeedsRedraw 下一次 Draw 是否会重新合成
func (w *AvatarWidget) NeedsRedraw() bool {
	return w.needsRedraw || w.view.NeedsRedraw()
}

// Redraws 已重新合成的次数
func (w *AvatarWidget) Redraws() int {
	return w.redraws
}

// Draw 把控件绘制到 screen
func (w *AvatarWidget) Draw(screen *ebiten.Image) {
	if w.closed || w.bounds.Empty() {
		return
	}

	size := w.bounds.Size()
	if w.canvas == nil || w.canvas.Bounds().Size() != size {
		if w.canvas != nil {
			w.canvas.Deallocate()
		}
		// 旧尺寸的离屏缓冲区不会再被复用
		w.allocator.Purge()
		w.canvas = ebiten.NewImage(size.X, size.Y)
		w.needsRedraw = true
	}

	if w.NeedsRedraw() {
		w.canvas.Clear()
		w.view.Draw(ebitensurface.Wrap(w.canvas, w.faces))
		w.needsRedraw = false
		w.redraws++
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(w.bounds.Min.X), float64(w.bounds.Min.Y))
	screen.DrawImage(w.canvas, op)
}

// Close 控件被移除：停止动画并释放全部纹理
func (w *AvatarWidget) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.view.Detach()
	w.allocator.Purge()
	if w.canvas != nil {
		w.canvas.Deallocate()
		w.canvas = nil
	}
	if w.image != nil {
		w.image.Deallocate()
		w.image = nil
	}
}

// Package raster 是 avatar.Surface 的 CPU 实现
//
// 基于 *image.RGBA，使用 golang.org/x/image/vector 光栅化圆形，
// golang.org/x/image/draw 做缩放，golang.org/x/image/font 绘制文字。
// 不需要 GPU 和游戏主循环，用于导出 PNG 和像素级测试。
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gonewx/avatarview/pkg/avatar"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleKappa 用四段三次贝塞尔曲线近似圆时的控制点系数
const circleKappa = 0.5522847498

// Surface 基于 *image.RGBA 的绘图表面
type Surface struct {
	img    *image.RGBA
	dx, dy float64
	fonts  *FontCache
}

// NewSurface 创建 width×height 的透明表面
func NewSurface(width, height int) *Surface {
	return &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		fonts: DefaultFontCache(),
	}
}

// Wrap 把已有的 *image.RGBA 包装为表面（左上角必须是 (0,0)）
func Wrap(img *image.RGBA) *Surface {
	return &Surface{img: img, fonts: DefaultFontCache()}
}

// RGBA 返回底层图像
func (s *Surface) RGBA() *image.RGBA {
	return s.img
}

// Size 实现 avatar.Surface
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear 实现 avatar.Surface
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// offset 当前平移量取整后的像素偏移
func (s *Surface) offset() image.Point {
	return image.Pt(int(math.Round(s.dx)), int(math.Round(s.dy)))
}

// FillRect 实现 avatar.Surface
func (s *Surface) FillRect(r image.Rectangle, clr color.Color) {
	r = r.Add(s.offset()).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

// FillCircle 实现 avatar.Surface
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}

	cx += s.dx
	cy += s.dy
	k := radius * circleKappa

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over
	z.MoveTo(f32(cx+radius), f32(cy))
	z.CubeTo(f32(cx+radius), f32(cy+k), f32(cx+k), f32(cy+radius), f32(cx), f32(cy+radius))
	z.CubeTo(f32(cx-k), f32(cy+radius), f32(cx-radius), f32(cy+k), f32(cx-radius), f32(cy))
	z.CubeTo(f32(cx-radius), f32(cy-k), f32(cx-k), f32(cy-radius), f32(cx), f32(cy-radius))
	z.CubeTo(f32(cx+k), f32(cy-radius), f32(cx+radius), f32(cy-k), f32(cx+radius), f32(cy))
	z.ClosePath()
	z.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{})
}

func f32(v float64) float32 {
	return float32(v)
}

// DrawImage 实现 avatar.Surface
//
// 源区域与目标区域尺寸相同时逐像素复制，否则用 CatmullRom 缩放。
func (s *Surface) DrawImage(src image.Image, srcRect, dstRect image.Rectangle, blend avatar.BlendMode) {
	if src == nil || srcRect.Empty() || dstRect.Empty() {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dstRect.Dx(), dstRect.Dy()))
	if srcRect.Size() == dstRect.Size() {
		draw.Draw(scaled, scaled.Bounds(), src, srcRect.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, srcRect, draw.Src, nil)
	}

	target := dstRect.Add(s.offset())
	switch blend {
	case avatar.BlendSourceIn:
		sourceIn(s.img, target, scaled)
	default:
		draw.Draw(s.img, target.Intersect(s.img.Bounds()), scaled, target.Intersect(s.img.Bounds()).Min.Sub(target.Min), draw.Over)
	}
}

// sourceIn 在 target 区域内执行 source-in 合成：结果 = 源 × 目标 alpha
// 目标本身就是遮罩，先复制一份 alpha 再用 draw.Src 按遮罩写入
func sourceIn(dst *image.RGBA, target image.Rectangle, src *image.RGBA) {
	area := target.Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	mask := image.NewAlpha(area)
	draw.Draw(mask, area, dst, area.Min, draw.Src)
	draw.DrawMask(dst, area, src, area.Min.Sub(target.Min), mask, area.Min, draw.Src)
}

// MeasureText 实现 avatar.Surface
func (s *Surface) MeasureText(str string, size float64) avatar.TextMetrics {
	face := s.fonts.Face(size)
	if face == nil {
		return avatar.TextMetrics{}
	}
	m := face.Metrics()
	return avatar.TextMetrics{
		Width:   fixedToFloat(font.MeasureString(face, str)),
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}
}

// DrawText 实现 avatar.Surface
func (s *Surface) DrawText(str string, x, baseline, size float64, clr color.Color) {
	face := s.fonts.Face(size)
	if face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x + s.dx),
			Y: floatToFixed(baseline + s.dy),
		},
	}
	d.DrawString(str)
}

// Translate 实现 avatar.Surface
func (s *Surface) Translate(dx, dy float64) {
	s.dx += dx
	s.dy += dy
}

// Image 实现 avatar.Surface
func (s *Surface) Image() image.Image {
	return s.img
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// Allocator 为合成过程分配 CPU 缓冲区
// 缓冲区交给 GC 回收，Release 不需要做任何事
type Allocator struct {
	allocated int
}

// NewAllocator 创建分配器
func NewAllocator() *Allocator {
	return &Allocator{}
}

// NewSurface 实现 avatar.SurfaceAllocator
func (a *Allocator) NewSurface(width, height int) avatar.Surface {
	a.allocated++
	return NewSurface(width, height)
}

// Release 实现 avatar.SurfaceAllocator
func (a *Allocator) Release(avatar.Surface) {}

// Allocated 已分配的缓冲区数量
func (a *Allocator) Allocated() int {
	return a.allocated
}

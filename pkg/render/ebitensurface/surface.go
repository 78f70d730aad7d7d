// Package ebitensurface 是 avatar.Surface 的 Ebitengine (GPU) 实现
//
// 圆形使用 vector 包抗锯齿填充，文字使用 text/v2，
// source-in 合成直接映射到 ebiten.BlendSourceIn。
package ebitensurface

import (
	"image"
	"image/color"

	"github.com/gonewx/avatarview/pkg/avatar"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface 基于 *ebiten.Image 的绘图表面
type Surface struct {
	img    *ebiten.Image
	dx, dy float64
	faces  *FaceCache
}

// Wrap 把 *ebiten.Image 包装为表面
func Wrap(img *ebiten.Image, faces *FaceCache) *Surface {
	if faces == nil {
		faces = DefaultFaceCache()
	}
	return &Surface{img: img, faces: faces}
}

// Ebiten 返回底层图像
func (s *Surface) Ebiten() *ebiten.Image {
	return s.img
}

// origin 绘制原点：图像左上角 + 当前平移
func (s *Surface) origin() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Min.X) + s.dx, float64(b.Min.Y) + s.dy
}

// Size 实现 avatar.Surface
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear 实现 avatar.Surface
func (s *Surface) Clear() {
	s.img.Clear()
}

// FillRect 实现 avatar.Surface
func (s *Surface) FillRect(r image.Rectangle, clr color.Color) {
	if r.Empty() {
		return
	}
	ox, oy := s.origin()
	vector.DrawFilledRect(s.img,
		float32(ox+float64(r.Min.X)), float32(oy+float64(r.Min.Y)),
		float32(r.Dx()), float32(r.Dy()),
		clr, false)
}

// FillCircle 实现 avatar.Surface
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	ox, oy := s.origin()
	vector.DrawFilledCircle(s.img, float32(ox+cx), float32(oy+cy), float32(radius), clr, true)
}

// DrawImage 实现 avatar.Surface
//
// 非 *ebiten.Image 的源会临时上传为纹理并在绘制后释放，
// 需要逐帧绘制的图片应由调用方预先转换（见 widget.AvatarWidget.SetImage）。
func (s *Surface) DrawImage(src image.Image, srcRect, dstRect image.Rectangle, blend avatar.BlendMode) {
	if src == nil || srcRect.Empty() || dstRect.Empty() {
		return
	}

	ebSrc, ok := src.(*ebiten.Image)
	if !ok {
		ebSrc = ebiten.NewImageFromImage(src)
		defer ebSrc.Deallocate()
		// NewImageFromImage 的原点总是 (0,0)
		srcRect = srcRect.Sub(src.Bounds().Min)
	}
	sub := ebSrc.SubImage(srcRect).(*ebiten.Image)

	ox, oy := s.origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = imageGeoM(ox, oy, srcRect, dstRect)
	if srcRect.Size() != dstRect.Size() {
		op.Filter = ebiten.FilterLinear
	}
	op.Blend = blendFor(blend)
	s.img.DrawImage(sub, op)
}

// imageGeoM 把 srcRect 缩放到 dstRect，再平移到表面原点 (ox, oy)
func imageGeoM(ox, oy float64, srcRect, dstRect image.Rectangle) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(
		float64(dstRect.Dx())/float64(srcRect.Dx()),
		float64(dstRect.Dy())/float64(srcRect.Dy()),
	)
	m.Translate(ox+float64(dstRect.Min.X), oy+float64(dstRect.Min.Y))
	return m
}

// blendFor 把 avatar.BlendMode 映射为 ebiten 的混合方式
func blendFor(mode avatar.BlendMode) ebiten.Blend {
	if mode == avatar.BlendSourceIn {
		return ebiten.BlendSourceIn
	}
	return ebiten.BlendSourceOver
}

// textTop text/v2 以行框顶部为原点，基线上移 ascent 即为行框顶部
func textTop(baseline float64, m text.Metrics) float64 {
	return baseline - m.HAscent
}

// MeasureText 实现 avatar.Surface
func (s *Surface) MeasureText(str string, size float64) avatar.TextMetrics {
	face := s.faces.Face(size)
	if face == nil {
		return avatar.TextMetrics{}
	}
	w, _ := text.Measure(str, face, 0)
	m := face.Metrics()
	return avatar.TextMetrics{
		Width:   w,
		Ascent:  m.HAscent,
		Descent: m.HDescent,
	}
}

// DrawText 实现 avatar.Surface
// text/v2 以行框左上角为原点，这里换算成基线坐标
func (s *Surface) DrawText(str string, x, baseline, size float64, clr color.Color) {
	face := s.faces.Face(size)
	if face == nil {
		return
	}
	ox, oy := s.origin()
	op := &text.DrawOptions{}
	op.GeoM.Translate(ox+x, textTop(oy+baseline, face.Metrics()))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.img, str, face, op)
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

package avatar

import (
	"image"
	"image/color"

	"github.com/gonewx/avatarview/pkg/config"
)

// maskColor 遮罩圆的颜色，只有 alpha 参与 source-in 合成
var maskColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// ImageSource 能把自身绘制进正方形缓冲区的图像来源（真实图片或占位符）
type ImageSource interface {
	DrawInto(dst Surface, size int)
}

// BitmapSource 真实图片来源
type BitmapSource struct {
	Image image.Image
	Scale config.ScaleType
}

// DrawInto 按 Scale 把图片映射到 size×size 的正方形
func (s BitmapSource) DrawInto(dst Surface, size int) {
	if s.Image == nil {
		return
	}
	srcRect := SourceRect(s.Image.Bounds(), s.Scale)
	if srcRect.Empty() {
		return
	}
	dst.DrawImage(s.Image, srcRect, image.Rect(0, 0, size, size), BlendSourceOver)
}

// SourceRect 返回源图中参与映射的区域
//   - ScaleStretch: 整张图
//   - ScaleCenterCrop: 居中的最大正方形
func SourceRect(bounds image.Rectangle, scale config.ScaleType) image.Rectangle {
	if scale != config.ScaleCenterCrop {
		return bounds
	}

	w, h := bounds.Dx(), bounds.Dy()
	side := min(w, h)
	x := bounds.Min.X + (w-side)/2
	y := bounds.Min.Y + (h-side)/2
	return image.Rect(x, y, x+side, y+side)
}

// PlaceholderSource 占位符来源
type PlaceholderSource struct {
	Renderer           *PlaceholderRenderer
	Spec               PlaceholderSpec
	TextSizePercentage int
}

// DrawInto 在整个正方形缓冲区内绘制占位符
func (s PlaceholderSource) DrawInto(dst Surface, size int) {
	s.Renderer.Render(dst, image.Rect(0, 0, size, size), s.Spec, s.TextSizePercentage)
}

// CircleCompositor 将任意矩形图像裁剪成圆形
//
// 算法：
//  1. 把图像来源绘制到 ViewSize×ViewSize 的离屏缓冲区
//  2. 在第二个透明缓冲区中，以 (Radius+BorderWidth, Radius+BorderWidth) 为圆心填充半径 Radius 的圆
//  3. 用 source-in 把图像缓冲区合成到圆形缓冲区上，圆外结果透明
//  4. 返回圆形缓冲区；边框圆盘由调用方先行绘制在其下方
//
// 调用方负责在传入前把边框宽度限制到 ViewSize/3（见 ComputeGeometry）。
type CircleCompositor struct {
	allocator SurfaceAllocator
}

// NewCircleCompositor 创建使用指定分配器的合成器
func NewCircleCompositor(allocator SurfaceAllocator) *CircleCompositor {
	return &CircleCompositor{allocator: allocator}
}

// Composite 返回圆形裁剪后的缓冲区，调用方用完后必须通过分配器 Release
func (c *CircleCompositor) Composite(src ImageSource, g Geometry) Surface {
	size := g.ViewSize
	full := image.Rect(0, 0, size, size)

	content := c.allocator.NewSurface(size, size)
	content.Clear()
	if src != nil {
		src.DrawInto(content, size)
	}

	masked := c.allocator.NewSurface(size, size)
	masked.Clear()
	center := g.Center()
	masked.FillCircle(center, center, float64(g.Radius), maskColor)
	masked.DrawImage(content.Image(), full, full, BlendSourceIn)

	c.allocator.Release(content)
	return masked
}

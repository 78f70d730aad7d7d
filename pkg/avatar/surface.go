// Package avatar 实现圆形头像控件的核心逻辑
//
// 包含以下组件（从叶子到编排者）：
//   - 名称 → 首字母 + 背景色推导（DerivePlaceholder）
//   - 占位符绘制（PlaceholderRenderer）
//   - 圆形裁剪合成（CircleCompositor）
//   - 边框脉冲动画（BorderPulseAnimator）
//   - 头像视图（View），负责尺寸、边框、图像来源与每次重绘的编排
//
// 本包不依赖具体的渲染后端，所有绘制都通过 Surface 接口完成。
// GPU 实现见 pkg/render/ebitensurface，CPU 实现见 pkg/render/raster。
package avatar

import (
	"image"
	"image/color"
)

// BlendMode 绘制图像时使用的合成模式
type BlendMode int

const (
	// BlendSourceOver 普通 alpha 混合（源覆盖在目标之上）
	BlendSourceOver BlendMode = iota
	// BlendSourceIn 结果 = 源像素 × 目标 alpha，目标透明处结果透明
	// 用于把正方形图像裁剪成遮罩的形状
	BlendSourceIn
)

// String 返回合成模式名称
func (b BlendMode) String() string {
	switch b {
	case BlendSourceIn:
		return "source-in"
	default:
		return "source-over"
	}
}

// TextMetrics 文本测量结果（像素）
// Ascent 和 Descent 都是正值，分别表示基线以上和以下的高度
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Surface 即时模式 2D 绘图表面
//
// 所有坐标都相对于当前平移原点（见 Translate）。
type Surface interface {
	// Size 返回表面的像素尺寸
	Size() (width, height int)

	// Clear 将整个表面清为全透明
	Clear()

	// FillRect 用纯色填充矩形
	FillRect(r image.Rectangle, clr color.Color)

	// FillCircle 以 (cx, cy) 为圆心填充抗锯齿圆
	FillCircle(cx, cy, radius float64, clr color.Color)

	// DrawImage 将 src 的 srcRect 区域缩放绘制到本表面的 dstRect 区域
	DrawImage(src image.Image, srcRect, dstRect image.Rectangle, blend BlendMode)

	// MeasureText 以指定字号测量文本
	MeasureText(s string, size float64) TextMetrics

	// DrawText 以 (x, baseline) 为文本起点（基线）绘制文本
	DrawText(s string, x, baseline, size float64, clr color.Color)

	// Translate 平移后续绘制操作的原点
	Translate(dx, dy float64)

	// Image 返回表面内容，可作为另一表面 DrawImage 的 src
	Image() image.Image
}

// SurfaceAllocator 为合成过程分配短生命周期的离屏缓冲区
//
// 缓冲区归创建它的调用独占，调用结束前必须 Release。
type SurfaceAllocator interface {
	NewSurface(width, height int) Surface
	Release(s Surface)
}

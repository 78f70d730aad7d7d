package avatar

import (
	"image"
	"image/color"

	"github.com/gonewx/avatarview/pkg/config"
)

// PlaceholderTextColor 占位符首字母颜色
var PlaceholderTextColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// placeholderLayoutKey 布局缓存键：区域尺寸 + 占位符内容 + 字号百分比
type placeholderLayoutKey struct {
	width      int
	height     int
	spec       PlaceholderSpec
	percentage int
}

// placeholderLayout 首字母的绘制位置和字号（相对于区域左上角）
type placeholderLayout struct {
	x        float64
	baseline float64
	fontSize float64
}

// PlaceholderRenderer 绘制纯色背景 + 居中的首字母
//
// 布局按 (宽, 高, spec, 百分比) 记忆化，键不匹配时重新测量。
// 透明度和颜色滤镜同时作用于背景画笔和文字画笔。
type PlaceholderRenderer struct {
	background Paint
	text       Paint

	key       placeholderLayoutKey
	layout    placeholderLayout
	hasLayout bool

	// measurements 布局重新计算的次数
	measurements int
}

// NewPlaceholderRenderer 创建占位符绘制器
func NewPlaceholderRenderer() *PlaceholderRenderer {
	return &PlaceholderRenderer{
		background: NewPaint(DefaultPlaceholderColor),
		text:       NewPaint(PlaceholderTextColor),
	}
}

// SetAlpha 设置背景和文字的整体透明度
func (r *PlaceholderRenderer) SetAlpha(alpha uint8) {
	r.background.Alpha = alpha
	r.text.Alpha = alpha
}

// SetColorFilter 设置背景和文字的颜色滤镜，nil 表示清除
func (r *PlaceholderRenderer) SetColorFilter(filter ColorFilter) {
	r.background.Filter = filter
	r.text.Filter = filter
}

// Render 在 bounds 区域内绘制占位符
//
// 参数：
//   - dst: 目标表面
//   - bounds: 绘制区域（通常是整个正方形缓冲区）
//   - spec: 首字母和背景色
//   - textSizePercentage: 字号占区域高度的百分比，越界时使用默认值 33
func (r *PlaceholderRenderer) Render(dst Surface, bounds image.Rectangle, spec PlaceholderSpec, textSizePercentage int) {
	if bounds.Empty() {
		return
	}

	layout := r.layoutFor(dst, bounds, spec, config.NormalizeTextSizePercentage(textSizePercentage))

	r.background.Color = spec.Background
	dst.FillRect(bounds, r.background.Resolve())

	if layout.fontSize <= 0 {
		return
	}
	dst.DrawText(
		spec.Initial,
		float64(bounds.Min.X)+layout.x,
		float64(bounds.Min.Y)+layout.baseline,
		layout.fontSize,
		r.text.Resolve(),
	)
}

// layoutFor 返回缓存的布局，键变化时重新测量
func (r *PlaceholderRenderer) layoutFor(dst Surface, bounds image.Rectangle, spec PlaceholderSpec, percentage int) placeholderLayout {
	key := placeholderLayoutKey{
		width:      bounds.Dx(),
		height:     bounds.Dy(),
		spec:       spec,
		percentage: percentage,
	}
	if r.hasLayout && r.key == key {
		return r.layout
	}

	r.key = key
	r.layout = measurePlaceholder(dst, key)
	r.hasLayout = true
	r.measurements++
	return r.layout
}

// measurePlaceholder 计算首字母的水平居中位置和垂直居中的基线
//
// 水平：x = w/2 − textWidth/2
// 垂直：基线 = h/2 + (ascent − descent)/2，使字形的 ascent..descent 区间关于中线对称
func measurePlaceholder(dst Surface, key placeholderLayoutKey) placeholderLayout {
	fontSize := float64(key.height) * float64(key.percentage) / 100
	if fontSize <= 0 {
		return placeholderLayout{}
	}

	m := dst.MeasureText(key.spec.Initial, fontSize)
	return placeholderLayout{
		x:        float64(key.width)/2 - m.Width/2,
		baseline: float64(key.height)/2 + (m.Ascent-m.Descent)/2,
		fontSize: fontSize,
	}
}

package avatar

// Geometry 单次绘制时推导出的尺寸信息
//
// 每次绘制都重新计算，不跨帧缓存，因为表面尺寸可能变化。
type Geometry struct {
	ViewSize    int // min(宽, 高)
	OffsetX     int // 正方形区域在表面中的水平偏移
	OffsetY     int // 正方形区域在表面中的垂直偏移
	Radius      int // 头像圆（遮罩）半径
	BorderWidth int // 生效的边框宽度：限制到 ViewSize/3 后再叠加脉冲增量
}

// ComputeGeometry 根据表面尺寸和请求的边框宽度计算绘制几何
//
// 边框宽度先被限制到 ViewSize/3，再据此计算圆半径，
// 保证圆半径不会因过宽的边框变为负数。
func ComputeGeometry(width, height, borderWidth int) Geometry {
	size := min(width, height)
	if size <= 0 {
		return Geometry{}
	}

	border := EffectiveBorderWidth(borderWidth, size)
	return Geometry{
		ViewSize:    size,
		OffsetX:     (width - size) / 2,
		OffsetY:     (height - size) / 2,
		Radius:      (size - 2*border) / 2,
		BorderWidth: border,
	}
}

// EffectiveBorderWidth 返回 min(borderWidth, viewSize/3)，负数视为 0
func EffectiveBorderWidth(borderWidth, viewSize int) int {
	if borderWidth < 0 {
		return 0
	}
	return min(borderWidth, viewSize/3)
}

// WithPulse 在已限制的边框宽度上叠加脉冲增量，并重新计算圆半径
// 边框最多占满半个 ViewSize，半径不会为负
func (g Geometry) WithPulse(offset int) Geometry {
	if offset == 0 || g.Empty() {
		return g
	}
	g.BorderWidth = max(0, min(g.BorderWidth+offset, g.ViewSize/2))
	g.Radius = (g.ViewSize - 2*g.BorderWidth) / 2
	return g
}

// Empty 表面尺寸为 0 时无需绘制
func (g Geometry) Empty() bool {
	return g.ViewSize <= 0
}

// Center 圆心在正方形区域内的坐标（x 与 y 相同）
func (g Geometry) Center() float64 {
	return float64(g.Radius + g.BorderWidth)
}

// OuterRadius 边框圆盘的半径
func (g Geometry) OuterRadius() float64 {
	return float64(g.Radius + g.BorderWidth)
}

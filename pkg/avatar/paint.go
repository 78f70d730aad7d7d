package avatar

import "image/color"

// ColorFilter 在绘制前对画笔颜色进行变换（例如着色、变灰）
// 输入输出都是预乘 alpha 的颜色
type ColorFilter interface {
	Filter(c color.RGBA) color.RGBA
}

// TintFilter 用 Tint 的颜色替换 RGB，保留原像素的 alpha（SRC_ATOP 着色）
type TintFilter struct {
	Tint color.RGBA
}

// Filter 实现 ColorFilter
func (f TintFilter) Filter(c color.RGBA) color.RGBA {
	t := color.NRGBAModel.Convert(f.Tint).(color.NRGBA)
	// 着色本身的透明度决定与原色的混合比例
	ta := uint32(t.A)
	inv := 0xFF - ta
	a := uint32(c.A)
	mix := func(tint uint8, orig uint8) uint8 {
		return uint8((uint32(tint)*a/0xFF*ta + uint32(orig)*inv) / 0xFF)
	}
	return color.RGBA{
		R: mix(t.R, c.R),
		G: mix(t.G, c.G),
		B: mix(t.B, c.B),
		A: c.A,
	}
}

// Paint 画笔：基础颜色 + 整体透明度 + 可选颜色滤镜
type Paint struct {
	Color  color.RGBA
	Alpha  uint8
	Filter ColorFilter
}

// NewPaint 创建完全不透明、无滤镜的画笔
func NewPaint(c color.RGBA) Paint {
	return Paint{Color: c, Alpha: 0xFF}
}

// Resolve 返回应用滤镜和透明度之后的最终颜色
func (p Paint) Resolve() color.RGBA {
	c := p.Color
	if p.Filter != nil {
		c = p.Filter.Filter(c)
	}
	if p.Alpha == 0xFF {
		return c
	}
	a := uint32(p.Alpha)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 0xFF),
		G: uint8(uint32(c.G) * a / 0xFF),
		B: uint8(uint32(c.B) * a / 0xFF),
		A: uint8(uint32(c.A) * a / 0xFF),
	}
}

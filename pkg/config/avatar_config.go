package config

import (
	"fmt"
	"image/color"
)

// 头像控件的默认属性
// 与样式表中未声明字段的取值保持一致
const (
	// DefaultTextSizePercentage 占位符首字母字号占头像高度的百分比
	DefaultTextSizePercentage = 33

	// DefaultBorderWidth 默认边框宽度（像素）
	DefaultBorderWidth = 0
)

// DefaultBorderColor 默认边框颜色（白色）
var DefaultBorderColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// ScaleType 源图像映射到正方形头像区域的方式
type ScaleType int

const (
	// ScaleStretch 将整张源图拉伸到正方形区域（不保持宽高比）
	ScaleStretch ScaleType = iota
	// ScaleCenterCrop 先裁出居中的最大正方形，再缩放到头像区域
	ScaleCenterCrop
)

// String 返回样式表中使用的名称
func (s ScaleType) String() string {
	switch s {
	case ScaleCenterCrop:
		return "centerCrop"
	default:
		return "stretch"
	}
}

// ParseScaleType 解析样式表中的 scaleType 字段，空字符串返回默认值
func ParseScaleType(s string) (ScaleType, error) {
	switch s {
	case "", "stretch":
		return ScaleStretch, nil
	case "centerCrop", "center_crop":
		return ScaleCenterCrop, nil
	}
	return ScaleStretch, fmt.Errorf("unknown scale type %q", s)
}

// PulsePolicy 决定占位符 → 图片切换时边框脉冲动画的触发策略
type PulsePolicy int

const (
	// PulseOncePerView 每个控件实例只在第一次显示图片时播放一次
	PulseOncePerView PulsePolicy = iota
	// PulseEveryTransition 图片被清空后再次设置时会重新播放
	PulseEveryTransition
)

// String 返回样式表中使用的名称
func (p PulsePolicy) String() string {
	switch p {
	case PulseEveryTransition:
		return "everyTransition"
	default:
		return "oncePerView"
	}
}

// ParsePulsePolicy 解析样式表中的 pulsePolicy 字段，空字符串返回默认值
func ParsePulsePolicy(s string) (PulsePolicy, error) {
	switch s {
	case "", "oncePerView", "once":
		return PulseOncePerView, nil
	case "everyTransition", "always":
		return PulseEveryTransition, nil
	}
	return PulseOncePerView, fmt.Errorf("unknown pulse policy %q", s)
}

// AvatarConfig 头像控件在构造时读取的全部属性
//
// 相当于平台样式属性（border_color / border_width / text_size_percentage）
// 的显式结构体版本，所有字段都有文档化的默认值。
type AvatarConfig struct {
	BorderColor        color.RGBA  // 边框颜色
	BorderWidth        int         // 边框宽度（像素，非负）
	TextSizePercentage int         // 首字母字号百分比 [0, 100]
	UserName           string      // 显示名称，用于生成占位符
	ScaleType          ScaleType   // 源图映射方式
	PulsePolicy        PulsePolicy // 脉冲动画触发策略
}

// DefaultAvatarConfig 返回默认配置：白色边框、宽度 0、字号 33%
func DefaultAvatarConfig() AvatarConfig {
	return AvatarConfig{
		BorderColor:        DefaultBorderColor,
		BorderWidth:        DefaultBorderWidth,
		TextSizePercentage: DefaultTextSizePercentage,
	}
}

// Normalized 返回修正越界值后的配置副本
//
// 越界值不会报错：负边框宽度归零，字号百分比超出 [0, 100] 时回退到默认值。
func (c AvatarConfig) Normalized() AvatarConfig {
	c.BorderWidth = NormalizeBorderWidth(c.BorderWidth)
	c.TextSizePercentage = NormalizeTextSizePercentage(c.TextSizePercentage)
	return c
}

// NormalizeTextSizePercentage 超出 [0, 100] 的百分比回退到 DefaultTextSizePercentage
func NormalizeTextSizePercentage(percentage int) int {
	if percentage < 0 || percentage > 100 {
		return DefaultTextSizePercentage
	}
	return percentage
}

// NormalizeBorderWidth 负数宽度视为 0
func NormalizeBorderWidth(width int) int {
	if width < 0 {
		return 0
	}
	return width
}

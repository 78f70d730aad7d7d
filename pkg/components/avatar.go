package components

import (
	"image"
	"image/color"

	"github.com/gonewx/avatarview/pkg/widget"
)

// AvatarComponent 头像控件组件
type AvatarComponent struct {
	Widget *widget.AvatarWidget
	Style  string // 构造时使用的样式名，仅用于日志
}

// CaptionComponent 头像下方的说明文字
type CaptionComponent struct {
	Text  string
	Color color.Color
}

// PendingImageComponent 等待"到达"的头像图片（模拟网络加载）
// 计时器就绪后交给控件，随后组件被移除
type PendingImageComponent struct {
	Image image.Image
}

package avatar

import (
	"image/color"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPlaceholderInitial 名称为空时显示的字符
const DefaultPlaceholderInitial = "-"

// DefaultPlaceholderColor 名称为空时的背景色 (#3F51B5)
var DefaultPlaceholderColor = color.RGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}

// PlaceholderSpec 由显示名称推导出的占位符内容
type PlaceholderSpec struct {
	Initial    string     // 单个大写字符，名称为空时为 DefaultPlaceholderInitial
	Background color.RGBA // 不透明背景色
}

// DerivePlaceholder 将显示名称映射为首字母和确定性的背景色
//
// 首字母使用与区域无关的大写映射；背景色取 NameHash 的低 24 位作为 0xRRGGBB。
func DerivePlaceholder(name string) PlaceholderSpec {
	if name == "" {
		return PlaceholderSpec{
			Initial:    DefaultPlaceholderInitial,
			Background: DefaultPlaceholderColor,
		}
	}

	return PlaceholderSpec{
		Initial:    initialOf(name),
		Background: NameColor(name),
	}
}

// initialOf 返回名称第一个字符的大写形式
func initialOf(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	// cases.Caser 有内部状态，每次调用新建
	return cases.Upper(language.Und).String(string(r))
}

// NameColor 返回名称对应的不透明背景色
func NameColor(name string) color.RGBA {
	v := uint32(NameHash(name)) & 0xFFFFFF
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}
}

// NameHash 32 位多项式字符串哈希：h = 31*h + c，c 为 UTF-16 码元
//
// 与 JVM 的 String.hashCode 结果一致，因此同一名称在各平台上得到相同的颜色。
// 没有随机种子，进程间稳定。
func NameHash(name string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(name)) {
		h = 31*h + int32(unit)
	}
	return h
}

package config

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gonewx/avatarview/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultStyleSheetPath 内置样式表在嵌入资源中的路径
const DefaultStyleSheetPath = "data/avatar_styles.yaml"

// StyleEntry 样式表中的单个头像样式
// 未声明的字段使用 AvatarConfig 的默认值
type StyleEntry struct {
	BorderColor        string `yaml:"borderColor"`        // "#RRGGBB" / "#AARRGGBB" / 颜色名
	BorderWidth        *int   `yaml:"borderWidth"`        // 边框宽度（像素）
	TextSizePercentage *int   `yaml:"textSizePercentage"` // 首字母字号百分比
	UserName           string `yaml:"userName"`           // 初始显示名称
	ScaleType          string `yaml:"scaleType"`          // "stretch" / "centerCrop"
	PulsePolicy        string `yaml:"pulsePolicy"`        // "oncePerView" / "everyTransition"
}

// StyleSheet 头像样式表文件结构
type StyleSheet struct {
	Styles map[string]StyleEntry `yaml:"styles"` // 样式名到样式的映射
}

// DefaultStyleSheet 返回内置样式表（嵌入资源不可用时使用，例如移动端）
func DefaultStyleSheet() *StyleSheet {
	six := 6
	return &StyleSheet{
		Styles: map[string]StyleEntry{
			"default": {},
			"outlined": {
				BorderColor: "green",
				BorderWidth: &six,
			},
		},
	}
}

// ParseStyleSheet 解析 YAML 样式表
func ParseStyleSheet(data []byte) (*StyleSheet, error) {
	var sheet StyleSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse style sheet YAML: %w", err)
	}

	if err := validateStyleSheet(&sheet); err != nil {
		return nil, err
	}

	return &sheet, nil
}

// LoadStyleSheet 从 YAML 文件加载样式表
//
// "data/" 开头的路径在嵌入资源已初始化时从嵌入资源读取，其余路径从磁盘读取。
func LoadStyleSheet(path string) (*StyleSheet, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style sheet %s: %w", path, err)
	}

	sheet, err := ParseStyleSheet(data)
	if err != nil {
		return nil, fmt.Errorf("invalid style sheet %s: %w", path, err)
	}
	return sheet, nil
}

func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && strings.HasPrefix(path, "data/") {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// validateStyleSheet 在加载阶段检查颜色和枚举字段，避免构造控件时才发现错误
func validateStyleSheet(sheet *StyleSheet) error {
	if len(sheet.Styles) == 0 {
		return fmt.Errorf("at least one style is required")
	}

	for name, entry := range sheet.Styles {
		if _, err := entry.toConfig(); err != nil {
			return fmt.Errorf("style %s: %w", name, err)
		}
	}
	return nil
}

// Names 返回按字母排序的样式名
func (s *StyleSheet) Names() []string {
	names := make([]string, 0, len(s.Styles))
	for name := range s.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style 返回指定样式对应的规范化配置
func (s *StyleSheet) Style(name string) (AvatarConfig, error) {
	entry, ok := s.Styles[name]
	if !ok {
		return DefaultAvatarConfig(), fmt.Errorf("style %q not found", name)
	}
	return entry.toConfig()
}

func (e StyleEntry) toConfig() (AvatarConfig, error) {
	cfg := DefaultAvatarConfig()

	if e.BorderColor != "" {
		clr, err := ParseColor(e.BorderColor)
		if err != nil {
			return cfg, err
		}
		cfg.BorderColor = clr
	}
	if e.BorderWidth != nil {
		cfg.BorderWidth = *e.BorderWidth
	}
	if e.TextSizePercentage != nil {
		cfg.TextSizePercentage = *e.TextSizePercentage
	}
	cfg.UserName = e.UserName

	scale, err := ParseScaleType(e.ScaleType)
	if err != nil {
		return cfg, err
	}
	cfg.ScaleType = scale

	policy, err := ParsePulsePolicy(e.PulsePolicy)
	if err != nil {
		return cfg, err
	}
	cfg.PulsePolicy = policy

	return cfg.Normalized(), nil
}

// namedColors 支持的颜色名（与常见 UI 工具包的命名一致）
var namedColors = map[string]color.RGBA{
	"white":       {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	"black":       {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	"red":         {R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	"green":       {R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
	"blue":        {R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
	"yellow":      {R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
	"cyan":        {R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
	"magenta":     {R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
	"gray":        {R: 0x88, G: 0x88, B: 0x88, A: 0xFF},
	"grey":        {R: 0x88, G: 0x88, B: 0x88, A: 0xFF},
	"transparent": {},
}

// ParseColor 解析 "#RRGGBB"、"#AARRGGBB" 或颜色名
//
// 返回值为预乘 alpha 的 color.RGBA。
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if clr, ok := namedColors[strings.ToLower(s)]; ok {
		return clr, nil
	}

	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB, #AARRGGBB or a color name", s)
	}

	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	a := uint8(0xFF)
	if len(hex) == 8 {
		a = uint8(v >> 24)
	}
	nrgba := color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}

// FormatColor 将颜色格式化为 "#RRGGBB"（不透明）或 "#AARRGGBB"
func FormatColor(clr color.Color) string {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	if n.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.A, n.R, n.G, n.B)
}

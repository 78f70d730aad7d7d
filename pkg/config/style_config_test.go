package config

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestParseColor 测试颜色解析
func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"六位十六进制", "#3F51B5", color.RGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}, false},
		{"小写十六进制", "#ff0000", color.RGBA{R: 0xFF, A: 0xFF}, false},
		{"八位带透明度（预乘）", "#80FF0000", color.RGBA{R: 0x80, A: 0x80}, false},
		{"颜色名", "green", color.RGBA{G: 0xFF, A: 0xFF}, false},
		{"颜色名大小写不敏感", " White ", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, false},
		{"透明", "transparent", color.RGBA{}, false},
		{"缺少井号", "3F51B5", color.RGBA{}, true},
		{"位数错误", "#FFF", color.RGBA{}, true},
		{"非法字符", "#GG0000", color.RGBA{}, true},
		{"未知颜色名", "chartreuse", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFormatColor 测试颜色格式化
func TestFormatColor(t *testing.T) {
	tests := []struct {
		input color.Color
		want  string
	}{
		{color.RGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}, "#3F51B5"},
		{color.NRGBA{R: 0xFF, A: 0x80}, "#80FF0000"},
		{color.RGBA{}, "#00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatColor(tt.input); got != tt.want {
				t.Errorf("FormatColor(%v) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

const testStyleSheet = `
styles:
  plain: {}
  outlined:
    borderColor: "#00FF00"
    borderWidth: 6
  profile:
    userName: Sergey
    textSizePercentage: 50
    scaleType: centerCrop
    pulsePolicy: everyTransition
  broken:
    borderWidth: -4
    textSizePercentage: 300
`

// TestParseStyleSheet 测试样式表解析和默认值填充
func TestParseStyleSheet(t *testing.T) {
	sheet, err := ParseStyleSheet([]byte(testStyleSheet))
	if err != nil {
		t.Fatalf("ParseStyleSheet() error = %v", err)
	}

	wantNames := []string{"broken", "outlined", "plain", "profile"}
	if got := sheet.Names(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}

	tests := []struct {
		style string
		want  AvatarConfig
	}{
		{"plain", DefaultAvatarConfig()},
		{"outlined", AvatarConfig{
			BorderColor:        color.RGBA{G: 0xFF, A: 0xFF},
			BorderWidth:        6,
			TextSizePercentage: 33,
		}},
		{"profile", AvatarConfig{
			BorderColor:        DefaultBorderColor,
			TextSizePercentage: 50,
			UserName:           "Sergey",
			ScaleType:          ScaleCenterCrop,
			PulsePolicy:        PulseEveryTransition,
		}},
		{"broken", DefaultAvatarConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			got, err := sheet.Style(tt.style)
			if err != nil {
				t.Fatalf("Style(%q) error = %v", tt.style, err)
			}
			if got != tt.want {
				t.Errorf("Style(%q) = %+v, want %+v", tt.style, got, tt.want)
			}
		})
	}

	if _, err := sheet.Style("missing"); err == nil {
		t.Error("Style(missing) should return an error")
	}
}

// TestParseStyleSheetInvalid 测试非法样式表
func TestParseStyleSheetInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"没有样式", "styles: {}", "at least one style"},
		{"YAML 语法错误", "styles: [", "failed to parse"},
		{"非法颜色", "styles:\n  a:\n    borderColor: nope", "style a"},
		{"非法缩放方式", "styles:\n  a:\n    scaleType: fit", "unknown scale type"},
		{"非法脉冲策略", "styles:\n  a:\n    pulsePolicy: never", "unknown pulse policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStyleSheet([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want to contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestLoadStyleSheetFromDisk 测试从磁盘加载样式表
func TestLoadStyleSheetFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	if err := os.WriteFile(path, []byte(testStyleSheet), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	sheet, err := LoadStyleSheet(path)
	if err != nil {
		t.Fatalf("LoadStyleSheet() error = %v", err)
	}
	if len(sheet.Styles) != 4 {
		t.Errorf("len(Styles) = %d, want 4", len(sheet.Styles))
	}

	if _, err := LoadStyleSheet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadStyleSheet(missing) should return an error")
	}
}

// TestDefaultStyleSheet 测试内置样式表
func TestDefaultStyleSheet(t *testing.T) {
	sheet := DefaultStyleSheet()
	if err := validateStyleSheet(sheet); err != nil {
		t.Fatalf("DefaultStyleSheet() is invalid: %v", err)
	}

	outlined, err := sheet.Style("outlined")
	if err != nil {
		t.Fatalf("Style(outlined) error = %v", err)
	}
	if outlined.BorderWidth != 6 || outlined.BorderColor != (color.RGBA{G: 0xFF, A: 0xFF}) {
		t.Errorf("outlined = %+v, want green border 6", outlined)
	}
}

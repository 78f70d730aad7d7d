package app

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/avatarview/pkg/config"
	"github.com/gonewx/avatarview/pkg/scenes"
)

// TestNewAppFallsBackToBuiltinStyles 测试样式表缺失时回退到内置样式
func TestNewAppFallsBackToBuiltinStyles(t *testing.T) {
	a, err := NewApp(Config{Verbose: true, StylePath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	defer a.Close()

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.DemoScene)
	if !ok {
		t.Fatalf("current scene = %T, want *scenes.DemoScene", a.GetSceneManager().GetCurrentScene())
	}
	if got := len(scene.Avatars()); got != 3 {
		t.Errorf("avatars = %d, want 3", got)
	}

	w, h := a.Layout(1920, 1080)
	if w != config.DemoWindowWidth || h != config.DemoWindowHeight {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, config.DemoWindowWidth, config.DemoWindowHeight)
	}
}

// TestNewAppWithImage 测试从文件加载头像图片
func TestNewAppWithImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portrait.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	a, err := NewApp(Config{Verbose: true, ImagePath: path})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	a.Close()
}

// TestNewAppErrors 测试图片或字体不存在时返回错误
func TestNewAppErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"图片不存在", Config{Verbose: true, ImagePath: filepath.Join(dir, "missing.png")}},
		{"字体不存在", Config{Verbose: true, FontPath: filepath.Join(dir, "missing.ttf")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewApp(tt.cfg); err == nil {
				t.Error("NewApp() should fail")
			}
		})
	}
}

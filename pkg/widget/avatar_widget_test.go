package widget

import (
	"image"
	"testing"

	"github.com/gonewx/avatarview/pkg/avatar"
	"github.com/gonewx/avatarview/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

const frame = 1.0 / 60

func newTestWidget() *AvatarWidget {
	cfg := config.DefaultAvatarConfig()
	cfg.UserName = "Sergey"
	cfg.BorderWidth = 4
	return NewAvatarWidget(cfg, image.Rect(10, 10, 110, 110), nil)
}

// TestAvatarWidgetRedrawOnlyWhenNeeded 测试只有请求重绘时才重新合成
func TestAvatarWidgetRedrawOnlyWhenNeeded(t *testing.T) {
	w := newTestWidget()
	defer w.Close()
	screen := ebiten.NewImage(200, 200)

	w.Draw(screen)
	if w.Redraws() != 1 {
		t.Fatalf("Redraws after first Draw = %d, want 1", w.Redraws())
	}

	w.Draw(screen)
	w.Draw(screen)
	if w.Redraws() != 1 {
		t.Errorf("Redraws without changes = %d, want 1", w.Redraws())
	}

	// 相同值不触发重绘
	w.SetBorderWidth(4)
	w.SetUserName("Sergey")
	if w.NeedsRedraw() {
		t.Error("setting identical values should not request a redraw")
	}

	w.SetUserName("Korolyov")
	if !w.NeedsRedraw() {
		t.Error("changing the name should request a redraw")
	}
	w.Draw(screen)
	if w.Redraws() != 2 {
		t.Errorf("Redraws after name change = %d, want 2", w.Redraws())
	}
}

// TestAvatarWidgetSetBounds 测试移动不重绘、改变尺寸重绘
func TestAvatarWidgetSetBounds(t *testing.T) {
	w := newTestWidget()
	defer w.Close()
	screen := ebiten.NewImage(300, 300)
	w.Draw(screen)

	w.SetBounds(image.Rect(50, 50, 150, 150))
	if w.NeedsRedraw() {
		t.Error("moving without resizing should not request a redraw")
	}

	w.SetBounds(image.Rect(50, 50, 130, 150))
	if !w.NeedsRedraw() {
		t.Error("resizing should request a redraw")
	}
	w.Draw(screen)
	if w.Redraws() != 2 {
		t.Errorf("Redraws = %d, want 2", w.Redraws())
	}
}

// TestAvatarWidgetImagePulse 测试设置图片后的状态迁移和脉冲动画
func TestAvatarWidgetImagePulse(t *testing.T) {
	w := newTestWidget()
	defer w.Close()
	screen := ebiten.NewImage(200, 200)
	w.Draw(screen)

	w.SetImage(image.NewRGBA(image.Rect(0, 0, 32, 32)))
	if got := w.View().State(); got != avatar.StateShowingImage {
		t.Fatalf("State = %s, want ShowingImage", got)
	}
	if !w.View().PulseActive() {
		t.Fatal("pulse should be active after the first image")
	}

	frames := 0
	for w.View().PulseActive() && frames < 200 {
		w.Update(frame)
		if !w.NeedsRedraw() {
			t.Fatalf("frame %d: pulse tick did not request a redraw", frames)
		}
		w.Draw(screen)
		frames++
	}
	if w.View().BorderWidth() != 4 {
		t.Errorf("BorderWidth after pulse = %d, want 4", w.View().BorderWidth())
	}

	// 清空图片回到占位符
	w.SetImage(nil)
	if got := w.View().State(); got != avatar.StateNoImage {
		t.Errorf("State after clear = %s, want NoImage", got)
	}
	if w.image != nil {
		t.Error("uploaded texture should be released after clearing")
	}
}

// TestAvatarWidgetTypedNilImage 测试带类型的 nil 和空图片等同于清空
func TestAvatarWidgetTypedNilImage(t *testing.T) {
	var nilEbiten *ebiten.Image
	var nilRGBA *image.RGBA

	tests := []struct {
		name string
		img  image.Image
	}{
		{"nil ebiten 图片", nilEbiten},
		{"nil RGBA 图片", nilRGBA},
		{"空尺寸图片", image.NewRGBA(image.Rectangle{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWidget()
			defer w.Close()

			w.SetImage(tt.img)
			if got := w.View().State(); got != avatar.StateShowingPlaceholder {
				t.Errorf("State = %s, want ShowingPlaceholder", got)
			}
			if w.image != nil {
				t.Error("no texture should be uploaded")
			}

			// 显示图片后再设置同样的值会清空
			w.SetImage(image.NewRGBA(image.Rect(0, 0, 8, 8)))
			w.SetImage(tt.img)
			if got := w.View().State(); got != avatar.StateNoImage {
				t.Errorf("State after clearing = %s, want NoImage", got)
			}
		})
	}
}

// TestAvatarWidgetClose 测试关闭后停止动画且不再绘制
func TestAvatarWidgetClose(t *testing.T) {
	w := newTestWidget()
	screen := ebiten.NewImage(200, 200)
	w.SetImage(ebiten.NewImage(16, 16))
	w.Draw(screen)

	w.Close()
	if w.View().Attached() || w.View().PulseActive() {
		t.Error("view should be detached with no running pulse after Close")
	}

	redraws := w.Redraws()
	w.Update(frame)
	w.Draw(screen)
	if w.Redraws() != redraws {
		t.Error("closed widget should not redraw")
	}

	// 重复关闭是安全的
	w.Close()
}

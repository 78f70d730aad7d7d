package avatar

import (
	"fmt"
	"image"
	"image/color"
)

// recordingSurface 记录所有绘图调用的测试表面
type recordingSurface struct {
	w, h   int
	dx, dy float64
	ops    []string

	// 固定的文字测量结果
	metrics TextMetrics
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{
		w: w, h: h,
		metrics: TextMetrics{Width: 20, Ascent: 30, Descent: 10},
	}
}

func (s *recordingSurface) record(format string, args ...any) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) Clear() { s.record("clear") }

func (s *recordingSurface) FillRect(r image.Rectangle, clr color.Color) {
	s.record("rect %v %v", r.Add(image.Pt(int(s.dx), int(s.dy))), toRGBA(clr))
}

func (s *recordingSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	s.record("circle %.0f,%.0f r=%.0f %v", cx+s.dx, cy+s.dy, radius, toRGBA(clr))
}

func (s *recordingSurface) DrawImage(src image.Image, srcRect, dstRect image.Rectangle, blend BlendMode) {
	s.record("image %v->%v %s", srcRect, dstRect.Add(image.Pt(int(s.dx), int(s.dy))), blend)
}

func (s *recordingSurface) MeasureText(str string, size float64) TextMetrics {
	s.record("measure %q %.2f", str, size)
	return s.metrics
}

func (s *recordingSurface) DrawText(str string, x, baseline, size float64, clr color.Color) {
	s.record("text %q at %.1f,%.1f size=%.2f %v", str, x+s.dx, baseline+s.dy, size, toRGBA(clr))
}

func (s *recordingSurface) Translate(dx, dy float64) {
	s.dx += dx
	s.dy += dy
}

func (s *recordingSurface) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, s.w, s.h))
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// fakeAllocator 分配 recordingSurface 并统计借出/归还次数
type fakeAllocator struct {
	surfaces []*recordingSurface
	released int
}

func (a *fakeAllocator) NewSurface(w, h int) Surface {
	s := newRecordingSurface(w, h)
	a.surfaces = append(a.surfaces, s)
	return s
}

func (a *fakeAllocator) Release(Surface) {
	a.released++
}

func (a *fakeAllocator) outstanding() int {
	return len(a.surfaces) - a.released
}

// countingHost 统计重绘请求次数
type countingHost struct {
	invalidations int
}

func (h *countingHost) Invalidate() {
	h.invalidations++
}

package avatar

import (
	"image"
	"image/color"
	"reflect"

	"github.com/gonewx/avatarview/pkg/config"
)

// ViewState 头像视图的图像状态
type ViewState int

const (
	// StateShowingPlaceholder 尚未设置过图片，显示占位符（初始状态）
	StateShowingPlaceholder ViewState = iota
	// StateShowingImage 显示真实图片
	StateShowingImage
	// StateNoImage 图片被清空，重新显示占位符
	StateNoImage
)

// String 返回状态名称（用于日志）
func (s ViewState) String() string {
	switch s {
	case StateShowingImage:
		return "ShowingImage"
	case StateNoImage:
		return "NoImage"
	default:
		return "ShowingPlaceholder"
	}
}

// Host 承载视图的宿主，接收重绘请求
type Host interface {
	Invalidate()
}

// View 圆形头像视图（编排者）
//
// 持有尺寸、边框、当前图像来源等全部派生状态，不与其他视图共享。
// 所有方法都应在宿主的 UI 线程（Ebitengine 的 Update/Draw）中调用。
type View struct {
	cfg  config.AvatarConfig
	spec PlaceholderSpec

	image      image.Image
	state      ViewState
	pulseArmed bool

	pulse       BorderPulseAnimator
	pulseRuns   int
	placeholder *PlaceholderRenderer
	compositor  *CircleCompositor
	allocator   SurfaceAllocator

	host     Host
	attached bool
	dirty    bool

	// OnStateChange 状态迁移时调用（可选）
	OnStateChange func(from, to ViewState)
}

// NewView 用构造时配置创建视图
// 配置中的越界值会被修正，不会报错
func NewView(cfg config.AvatarConfig, allocator SurfaceAllocator) *View {
	cfg = cfg.Normalized()
	v := &View{
		cfg:         cfg,
		spec:        DerivePlaceholder(cfg.UserName),
		state:       StateShowingPlaceholder,
		pulseArmed:  true,
		placeholder: NewPlaceholderRenderer(),
		compositor:  NewCircleCompositor(allocator),
		allocator:   allocator,
		attached:    true,
		dirty:       true,
	}
	v.pulse.OnValue = func(int) { v.Invalidate() }
	return v
}

// Attach 把视图挂到宿主上，之后的重绘请求会转发给宿主
func (v *View) Attach(host Host) {
	v.host = host
	v.attached = true
	v.Invalidate()
}

// Detach 视图离开宿主：取消进行中的动画，不再发出重绘请求
func (v *View) Detach() {
	v.pulse.Cancel()
	v.attached = false
	v.host = nil
}

// Attached 视图是否仍挂在宿主上
func (v *View) Attached() bool {
	return v.attached
}

// Invalidate 标记需要重绘并通知宿主
func (v *View) Invalidate() {
	if !v.attached {
		return
	}
	v.dirty = true
	if v.host != nil {
		v.host.Invalidate()
	}
}

// NeedsRedraw 自上次 Draw 以来是否有重绘请求
func (v *View) NeedsRedraw() bool {
	return v.dirty
}

// SetUserName 设置显示名称，占位符内容随之更新
func (v *View) SetUserName(name string) {
	if v.cfg.UserName == name {
		return
	}
	v.cfg.UserName = name
	v.spec = DerivePlaceholder(name)
	v.Invalidate()
}

// SetBorderColor 设置边框颜色
func (v *View) SetBorderColor(clr color.RGBA) {
	if v.cfg.BorderColor == clr {
		return
	}
	v.cfg.BorderColor = clr
	v.Invalidate()
}

// SetBorderWidth 设置边框宽度（像素），负数视为 0，相同值不触发重绘
// 进行中的脉冲以新宽度为基准继续
func (v *View) SetBorderWidth(widthPx int) {
	widthPx = config.NormalizeBorderWidth(widthPx)
	if v.cfg.BorderWidth == widthPx {
		return
	}
	v.cfg.BorderWidth = widthPx
	v.Invalidate()
}

// SetTextSizePercentage 设置占位符字号百分比，越界值回退到默认值
func (v *View) SetTextSizePercentage(percentage int) {
	percentage = config.NormalizeTextSizePercentage(percentage)
	if v.cfg.TextSizePercentage == percentage {
		return
	}
	v.cfg.TextSizePercentage = percentage
	v.Invalidate()
}

// SetScaleType 设置源图映射方式
func (v *View) SetScaleType(scale config.ScaleType) {
	if v.cfg.ScaleType == scale {
		return
	}
	v.cfg.ScaleType = scale
	v.Invalidate()
}

// SetPlaceholderAlpha 设置占位符整体透明度（淡入淡出）
func (v *View) SetPlaceholderAlpha(alpha uint8) {
	v.placeholder.SetAlpha(alpha)
	v.Invalidate()
}

// SetPlaceholderColorFilter 设置占位符颜色滤镜（着色），nil 清除
func (v *View) SetPlaceholderColorFilter(filter ColorFilter) {
	v.placeholder.SetColorFilter(filter)
	v.Invalidate()
}

// SetImage 设置或清空真实图片
//
// 状态迁移：
//   - ShowingPlaceholder → ShowingImage：播放一次边框脉冲
//   - ShowingImage → ShowingImage：只替换图片，不再播放
//   - ShowingImage → NoImage（img 为 nil）：重新显示占位符
//   - NoImage → ShowingImage：仅在 PulseEveryTransition 策略下播放
//
// nil、带类型的 nil 指针和尺寸为空的图片都按清空处理（见 IsEmptyImage）。
func (v *View) SetImage(img image.Image) {
	from := v.state

	if IsEmptyImage(img) {
		v.image = nil
		if from == StateShowingImage {
			v.setState(StateNoImage)
			if v.cfg.PulsePolicy == config.PulseEveryTransition {
				v.pulseArmed = true
			}
		}
		v.Invalidate()
		return
	}

	v.image = img
	if from != StateShowingImage {
		v.setState(StateShowingImage)
		if v.pulseArmed {
			v.pulseArmed = false
			v.startPulse()
		}
	}
	v.Invalidate()
}

// IsEmptyImage 图片是否不可绘制：nil、带类型的 nil 指针（如 (*image.RGBA)(nil)）或空尺寸
// 带类型的 nil 调用 Bounds 会触发空指针，因此先检查指针本身
func IsEmptyImage(img image.Image) bool {
	if img == nil {
		return true
	}
	if rv := reflect.ValueOf(img); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return true
	}
	return img.Bounds().Empty()
}

func (v *View) startPulse() {
	if !v.attached {
		return
	}
	// 动画只产生相对增量 0 → 2 → 0，叠加在本帧限制后的边框宽度上
	if v.pulse.Start(0) {
		v.pulseRuns++
	}
}

func (v *View) setState(to ViewState) {
	from := v.state
	v.state = to
	if from != to && v.OnStateChange != nil {
		v.OnStateChange(from, to)
	}
}

// State 当前图像状态
func (v *View) State() ViewState {
	return v.state
}

// Config 当前配置（已规范化）
func (v *View) Config() config.AvatarConfig {
	return v.cfg
}

// Placeholder 当前名称推导出的占位符内容
func (v *View) Placeholder() PlaceholderSpec {
	return v.spec
}

// PulseActive 边框脉冲是否在进行中
func (v *View) PulseActive() bool {
	return v.pulse.Active()
}

// PulseRuns 本视图已开始过的脉冲次数
func (v *View) PulseRuns() int {
	return v.pulseRuns
}

// Update 由宿主逐帧调用，推进边框动画
func (v *View) Update(dt float64) {
	v.pulse.Update(dt)
}

// BorderWidth 本帧请求的边框宽度（配置值 + 脉冲增量，尚未按视图尺寸限制）
func (v *View) BorderWidth() int {
	return v.cfg.BorderWidth + v.pulseOffset()
}

// pulseOffset 进行中的脉冲相对配置宽度的增量
func (v *View) pulseOffset() int {
	if v.pulse.Active() {
		return v.pulse.Value()
	}
	return 0
}

// source 选择本帧的图像来源：有图片用图片，否则用占位符
func (v *View) source() ImageSource {
	if v.image != nil {
		return BitmapSource{Image: v.image, Scale: v.cfg.ScaleType}
	}
	return PlaceholderSource{
		Renderer:           v.placeholder,
		Spec:               v.spec,
		TextSizePercentage: v.cfg.TextSizePercentage,
	}
}

// Draw 把头像绘制到 dst
//
// 每次调用都重新计算几何，依次绘制边框圆盘和圆形裁剪后的图像。
// 返回本次使用的几何信息。
func (v *View) Draw(dst Surface) Geometry {
	v.dirty = false

	w, h := dst.Size()
	g := ComputeGeometry(w, h, v.cfg.BorderWidth).WithPulse(v.pulseOffset())
	if g.Empty() {
		return g
	}

	masked := v.compositor.Composite(v.source(), g)
	defer v.allocator.Release(masked)

	ox, oy := float64(g.OffsetX), float64(g.OffsetY)
	dst.Translate(ox, oy)
	defer dst.Translate(-ox, -oy)

	if g.BorderWidth > 0 {
		c := g.Center()
		dst.FillCircle(c, c, g.OuterRadius(), v.cfg.BorderColor)
	}

	full := image.Rect(0, 0, g.ViewSize, g.ViewSize)
	dst.DrawImage(masked.Image(), full, full, BlendSourceOver)
	return g
}

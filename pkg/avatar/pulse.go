package avatar

import (
	"math"

	"github.com/gonewx/avatarview/pkg/utils"
)

const (
	// BorderPulseDuration 边框脉冲动画时长（秒）
	BorderPulseDuration = 1.3

	// BorderPulseAmplitude 边框脉冲的最大增量（像素）
	BorderPulseAmplitude = 2
)

// BorderPulseAnimator 占位符被真实图片替换时播放一次的边框宽度动画
//
// 取值序列：w → w+2 → w，两段线性插值，总时长 1.3 秒。
// 由宿主的逐帧回调（Update）推进，不使用独立线程。
// 动画进行中不可重新开始；Cancel 之后不再产生任何取值。
type BorderPulseAnimator struct {
	active     bool
	elapsed    float64
	startWidth int
	value      int

	// OnValue 每产生一个取值时调用（宿主据此请求重绘）
	OnValue func(width int)
}

// Start 以 initialWidth 为基准开始动画
// 动画已在进行中时返回 false，不会重新开始
func (a *BorderPulseAnimator) Start(initialWidth int) bool {
	if a.active {
		return false
	}

	a.active = true
	a.elapsed = 0
	a.startWidth = initialWidth
	a.emit(initialWidth)
	return true
}

// Update 推进动画 dt 秒
func (a *BorderPulseAnimator) Update(dt float64) {
	if !a.active {
		return
	}

	a.elapsed += dt
	if a.elapsed >= BorderPulseDuration {
		a.active = false
		a.emit(a.startWidth)
		return
	}

	a.emit(PulseWidthAt(a.startWidth, a.elapsed/BorderPulseDuration))
}

// Cancel 立即停止动画，不再回调 OnValue
func (a *BorderPulseAnimator) Cancel() {
	a.active = false
	a.value = a.startWidth
}

// Active 动画是否正在进行
func (a *BorderPulseAnimator) Active() bool {
	return a.active
}

// Value 当前边框宽度取值
func (a *BorderPulseAnimator) Value() int {
	return a.value
}

// Fraction 已完成的比例 [0, 1]
func (a *BorderPulseAnimator) Fraction() float64 {
	if !a.active {
		if a.elapsed >= BorderPulseDuration {
			return 1
		}
		return 0
	}
	return a.elapsed / BorderPulseDuration
}

func (a *BorderPulseAnimator) emit(width int) {
	a.value = width
	if a.OnValue != nil {
		a.OnValue(width)
	}
}

// PulseWidthAt 返回进度 fraction ∈ [0, 1] 时的边框宽度
//
// 前半段从 start 线性增加到 start+2，后半段线性回落到 start，结果四舍五入到整数像素。
func PulseWidthAt(start int, fraction float64) int {
	fraction = math.Max(0, math.Min(1, fraction))

	from, to := float64(start), float64(start+BorderPulseAmplitude)
	t := fraction * 2
	if fraction >= 0.5 {
		from, to = to, from
		t = (fraction - 0.5) * 2
	}

	return int(math.Round(utils.Lerp(from, to, utils.EaseLinear(t))))
}

package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如图片延迟到达）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "image_arrival"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Advance 推进计时器，返回本次调用是否刚好完成
func (t *TimerComponent) Advance(deltaTime float64) bool {
	if t.IsReady {
		return false
	}
	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.IsReady = true
		return true
	}
	return false
}

// Remaining 剩余时间（秒），不小于 0
func (t *TimerComponent) Remaining() float64 {
	return max(0, t.TargetTime-t.CurrentTime)
}

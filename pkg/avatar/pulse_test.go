package avatar

import "testing"

const frame = 1.0 / 60

// TestBorderPulseSequence 测试脉冲取值序列：w → w+2 → w
func TestBorderPulseSequence(t *testing.T) {
	var values []int
	a := BorderPulseAnimator{OnValue: func(w int) { values = append(values, w) }}

	if !a.Start(6) {
		t.Fatal("Start should succeed on an idle animator")
	}

	ticks := 0
	for a.Active() && ticks < 1000 {
		a.Update(frame)
		ticks++
	}

	// 1.3 秒 @60fps，浮点累加可能多出一帧
	if ticks < 78 || ticks > 79 {
		t.Errorf("pulse finished after %d ticks, want 78-79", ticks)
	}

	maxValue := 0
	for _, v := range values {
		if v < 6 || v > 8 {
			t.Fatalf("value %d out of range [6, 8]", v)
		}
		maxValue = max(maxValue, v)
	}
	if maxValue != 8 {
		t.Errorf("max value = %d, want 8", maxValue)
	}
	if values[0] != 6 {
		t.Errorf("first value = %d, want 6", values[0])
	}
	if last := values[len(values)-1]; last != 6 {
		t.Errorf("last value = %d, want 6", last)
	}
	if a.Value() != 6 {
		t.Errorf("Value() after finish = %d, want 6", a.Value())
	}
	if a.Fraction() != 1 {
		t.Errorf("Fraction() after finish = %v, want 1", a.Fraction())
	}
}

// TestBorderPulseMonotonic 测试前半段不减、后半段不增
func TestBorderPulseMonotonic(t *testing.T) {
	var values []int
	a := BorderPulseAnimator{OnValue: func(w int) { values = append(values, w) }}
	a.Start(0)
	for a.Active() {
		a.Update(frame)
	}

	peak := 0
	for i, v := range values {
		if v == 2 {
			peak = i
			break
		}
	}
	for i := 1; i <= peak; i++ {
		if values[i] < values[i-1] {
			t.Fatalf("rising half decreased at %d: %v", i, values)
		}
	}
	for i := peak + 1; i < len(values); i++ {
		if values[i] > values[i-1] {
			t.Fatalf("falling half increased at %d: %v", i, values)
		}
	}
}

// TestBorderPulseStartWhileActive 测试动画进行中不可重新开始
func TestBorderPulseStartWhileActive(t *testing.T) {
	var a BorderPulseAnimator
	a.Start(4)
	a.Update(0.5)

	if a.Start(10) {
		t.Error("Start while active should return false")
	}
	for a.Active() {
		a.Update(frame)
	}
	if a.Value() != 4 {
		t.Errorf("Value() = %d, want start width 4", a.Value())
	}
	if !a.Start(10) {
		t.Error("Start after finish should succeed")
	}
}

// TestBorderPulseCancel 测试取消后不再回调
func TestBorderPulseCancel(t *testing.T) {
	calls := 0
	a := BorderPulseAnimator{OnValue: func(int) { calls++ }}
	a.Start(2)
	a.Update(0.3)
	before := calls

	a.Cancel()
	if a.Active() {
		t.Error("Active() after Cancel = true")
	}
	for i := 0; i < 100; i++ {
		a.Update(frame)
	}
	if calls != before {
		t.Errorf("OnValue called %d times after Cancel, want 0", calls-before)
	}
	if a.Value() != 2 {
		t.Errorf("Value() after Cancel = %d, want 2", a.Value())
	}
}

// TestPulseWidthAt 测试关键进度点的取值
func TestPulseWidthAt(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		fraction float64
		want     int
	}{
		{"起点", 6, 0, 6},
		{"四分之一", 6, 0.25, 7},
		{"峰值", 6, 0.5, 8},
		{"四分之三", 6, 0.75, 7},
		{"终点", 6, 1, 6},
		{"进度小于 0 截断", 3, -1, 3},
		{"进度大于 1 截断", 3, 2, 3},
		{"零边框", 0, 0.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PulseWidthAt(tt.start, tt.fraction); got != tt.want {
				t.Errorf("PulseWidthAt(%d, %v) = %d, want %d", tt.start, tt.fraction, got, tt.want)
			}
		})
	}
}

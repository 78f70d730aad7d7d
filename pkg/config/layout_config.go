package config

// 演示程序布局配置常量
// 所有坐标使用逻辑屏幕坐标（Layout 返回的尺寸），Ebitengine 负责缩放到实际窗口

const (
	// DemoWindowWidth 演示程序逻辑屏幕宽度
	DemoWindowWidth = 720

	// DemoWindowHeight 演示程序逻辑屏幕高度
	DemoWindowHeight = 320

	// DemoAvatarSize 每个头像控件的边长（像素）
	DemoAvatarSize = 200

	// DemoAvatarSpacing 相邻头像之间的水平间距
	DemoAvatarSpacing = 30

	// DemoAvatarTop 头像行的顶部 Y 坐标
	DemoAvatarTop = 40

	// DemoCaptionOffsetY 头像下方说明文字与头像底边的距离
	DemoCaptionOffsetY = 24
)

// 演示程序中模拟网络图片延迟到达的时间（秒）
const (
	DemoFirstImageDelay  = 3.0
	DemoSecondImageDelay = 5.0
)

// DemoAvatarX 返回第 index 个头像的左上角 X 坐标（整行水平居中）
func DemoAvatarX(index, count int) int {
	if count <= 0 {
		return 0
	}
	rowWidth := count*DemoAvatarSize + (count-1)*DemoAvatarSpacing
	startX := (DemoWindowWidth - rowWidth) / 2
	return startX + index*(DemoAvatarSize+DemoAvatarSpacing)
}

//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 1 时桌面端按移动端方式运行（本地调试触屏布局和内置样式）
const MobileEmulateEnv = "AVATARVIEW_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}

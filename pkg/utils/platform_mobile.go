//go:build mobile

package utils

// IsMobile 移动端编译时始终返回 true
// 移动端没有可读的工作目录，样式表只能来自嵌入资源
func IsMobile() bool {
	return true
}

package utils

import "strings"

// CollapseWhitespace 把文本内部的连续空白（包括换行和制表符）压缩为单个空格，
// 并去掉首尾空白
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Min 返回两个整数中的较小值
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Truncate 截断字符串用于日志预览，超长时追加省略号
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}

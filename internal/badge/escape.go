package badge

import (
	"net/url"
	"strings"
)

// Escape 对 shields.io 徽章里的文字段做百分号编码：空格变成 %20，
// 连字符也变成 %20（shields 用 - 分隔 label 和 message）。
// 只用于文字段，链接地址不经过这里。
func Escape(s string) string {
	out := url.QueryEscape(s)
	// 原文里的 '+' 已被编码成 %2B，剩下的 '+' 都是空格
	out = strings.ReplaceAll(out, "+", "%20")
	return strings.ReplaceAll(out, "-", "%20")
}

package render

import "regexp"

// 顺序有意义：先处理 <a><strong>，再处理普通 <a>，再处理单独的 <strong>，
// 最后是双引号带其他属性的 <a>。每条规则都独立作用于整段文本。
var newsRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`<a href='([^']+)'><strong>([^<]+)</strong></a>`), "[${2}](${1})"},
	{regexp.MustCompile(`<a href='([^']+)'>([^<]+)</a>`), "[${2}](${1})"},
	{regexp.MustCompile(`<strong>([^<]+)</strong>`), "**${1}**"},
	{regexp.MustCompile(`<a href="([^"]+)"[^>]*>([^<]+)</a>`), "[${2}](${1})"},
}

// NewsToMarkdown 把新闻条目里的链接和加粗改写成 Markdown。
// 这是按顺序的正则替换，不是完整的 HTML 转换器；不认识的标签原样保留。
func NewsToMarkdown(item string) string {
	for _, r := range newsRules {
		item = r.re.ReplaceAllString(item, r.repl)
	}
	return item
}

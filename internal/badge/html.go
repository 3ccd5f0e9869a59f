package badge

import (
	"fmt"
	"html/template"
	"strings"
)

// HTML 把 spec 渲染成项目卡片里的 <a> 片段。
//
// 显示 star 的 GitHub 徽章带 data-github-repo 属性和隐藏的 star-suffix，
// 页面脚本按这个属性找到徽章并填入实时 star 数；不显示时两者都不输出。
func HTML(spec Spec, opt Options) []string {
	switch s := spec.(type) {
	case Project:
		return []string{anchor(KindProject, orPlaceholder(s.URL), "fas fa-globe", "Project")}
	case ArXiv:
		return []string{anchor(KindArXiv, arxivURL(s.ID), "fas fa-file-pdf", "arXiv")}
	case Publish:
		label := s.ID
		if label == "" {
			label = "Conference"
		}
		return []string{anchor(KindPublish, orPlaceholder(s.URL), "fas fa-landmark", label)}
	case GitHub:
		return []string{githubHTML(s, opt)}
	case HuggingFace:
		var out []string
		for _, b := range s.subs() {
			out = append(out, anchor(KindHuggingFace, b.url, "fas fa-face-smile", b.label))
		}
		return out
	case ModelScope:
		var out []string
		for _, b := range s.subs() {
			out = append(out, anchor(KindModelScope, b.url, "fas fa-cube", b.label))
		}
		return out
	default:
		return nil
	}
}

func anchor(kind Kind, href, icon, label string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" class="badge badge-%s"><i class="%s"></i> %s</a>`,
		attr(href), kind, icon, template.HTMLEscapeString(label))
}

func githubHTML(g GitHub, opt Options) string {
	label := "Code"
	if g.NotFinished {
		label = "Coming Soon"
	}
	stars := g.ShowStars(opt.DefaultStars)

	var b strings.Builder
	fmt.Fprintf(&b, `<a href="%s" target="_blank" class="badge badge-github"`, attr(githubURL(g.Repo)))
	if stars {
		fmt.Fprintf(&b, ` data-github-repo="%s"`, attr(g.Repo))
	}
	fmt.Fprintf(&b, `><i class="fab fa-github"></i> %s`, label)
	if stars {
		b.WriteString(`<span class="star-suffix" style="display:none"> (<span class="star-count"></span> <i class="fas fa-star"></i>)</span>`)
	}
	b.WriteString("</a>")
	return b.String()
}

func attr(s string) string {
	return template.HTMLEscapeString(s)
}

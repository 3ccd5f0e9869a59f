package badge

import (
	"fmt"
	"strings"
)

const shields = "https://img.shields.io"

// Options 是一次生成里所有徽章共用的渲染设置
type Options struct {
	// DefaultStars 用于没写 stars 的 GitHub 徽章
	DefaultStars bool
}

// Markdown 把 spec 渲染成 Markdown 图片链接，结果可能为空；
// HuggingFace 和 ModelScope 每个开关各一个片段，最多三个
func Markdown(spec Spec, opt Options) []string {
	switch s := spec.(type) {
	case Project:
		return []string{mdLink("Project",
			fmt.Sprintf("%s/badge/🌐%%20%%20Project-%s-blue.svg", shields, Escape(s.ID)),
			orPlaceholder(s.URL))}
	case ArXiv:
		return []string{mdLink("arXiv",
			fmt.Sprintf("%s/badge/Arxiv-%s-b31b1b.svg?logo=arXiv", shields, Escape(s.ID)),
			arxivURL(s.ID))}
	case Publish:
		return []string{mdLink("Conference",
			fmt.Sprintf("%s/badge/%s-%s-green.svg", shields, Escape(publisherPrefix(s.Publisher)), Escape(s.ID)),
			orPlaceholder(s.URL))}
	case GitHub:
		out := mdLink("GitHub",
			fmt.Sprintf("%s/badge/%s-GitHub-181717.svg?logo=GitHub", shields, Escape(githubMarkdownLabel(s))),
			githubURL(s.Repo))
		if s.ShowStars(opt.DefaultStars) {
			out += fmt.Sprintf("\n![GitHub Stars](%s/github/stars/%s)", shields, s.Repo)
		}
		return []string{out}
	case HuggingFace:
		var out []string
		for _, b := range s.subs() {
			out = append(out, mdLink(b.alt,
				fmt.Sprintf("%s/badge/🤗-%s-FFD21E.svg", shields, Escape(b.label)),
				b.url))
		}
		return out
	case ModelScope:
		var out []string
		for _, b := range s.subs() {
			out = append(out, mdLink(b.alt,
				fmt.Sprintf("%s/badge/👾-%s-604DF4.svg", shields, Escape(b.label)),
				b.url))
		}
		return out
	default:
		return nil
	}
}

func mdLink(alt, image, target string) string {
	return fmt.Sprintf("[![%s](%s)](%s)", alt, image, target)
}

// publisherPrefix 按发表类型选择徽章前缀
func publisherPrefix(publisher string) string {
	switch strings.ToLower(strings.TrimSpace(publisher)) {
	case "journal":
		return "📗  Journal"
	case "report":
		return "📖  Report"
	default:
		return "🏛  Conference"
	}
}

func githubMarkdownLabel(g GitHub) string {
	if g.NotFinished {
		return "Code (Coming Soon)"
	}
	if g.ID != "" {
		return g.ID
	}
	return "Code"
}

func orPlaceholder(u string) string {
	if strings.TrimSpace(u) == "" {
		return "#"
	}
	return u
}

func arxivURL(id string) string   { return "https://arxiv.org/abs/" + id }
func githubURL(repo string) string { return "https://github.com/" + repo }

// sub 是模型仓库徽章里打开的一个开关
type sub struct {
	alt   string
	label string
	url   string
}

func (h HuggingFace) subs() []sub {
	var out []sub
	if h.Model {
		out = append(out, sub{"HuggingFace Model", "HuggingFace", "https://huggingface.co/" + h.Repo})
	}
	if h.Space {
		out = append(out, sub{"HuggingFace Space", "HuggingFace Space", "https://huggingface.co/spaces/" + h.Repo})
	}
	if h.Dataset {
		out = append(out, sub{"HuggingFace Dataset", "HuggingFace Dataset", "https://huggingface.co/datasets/" + h.Repo})
	}
	return out
}

func (m ModelScope) subs() []sub {
	var out []sub
	if m.Model {
		out = append(out, sub{"ModelScope", "ModelScope", "https://modelscope.cn/models/" + m.Repo})
	}
	if m.Studio {
		out = append(out, sub{"ModelScope Studio", "ModelScope Studio", "https://modelscope.cn/studios/" + m.Repo})
	}
	if m.Dataset {
		out = append(out, sub{"ModelScope Dataset", "ModelScope Dataset", "https://modelscope.cn/datasets/" + m.Repo})
	}
	return out
}

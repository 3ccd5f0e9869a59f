package render

import (
	"html/template"

	"profilegen/internal/domain/content"
)

// ProjectCard 是 HTML 页面里的一个项目卡片
type ProjectCard struct {
	Title       string
	Video       Video
	Description template.HTML
	// Badges 已经是拼好的 HTML 片段，每个后面跟一个空格
	Badges template.HTML
}

type Page struct {
	Lang     string
	LangLink string
	OrgURL   string
	Locale   content.Locale

	// Overview、News、Footer 是 strings 文件里写好的 HTML，原样输出；
	// 其余文案按普通文本转义
	Overview template.HTML
	News     []template.HTML
	Footer   template.HTML
	Projects []ProjectCard
}

type ReadmeProject struct {
	Title string
	// Badges 每个元素单独占一行
	Badges []string
	Intro  string
}

type Readme struct {
	Heading  string
	Intro    string
	News     []string
	Projects []ReadmeProject
}

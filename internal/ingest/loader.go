package ingest

import (
	"fmt"
	"strings"

	"profilegen/internal/domain/content"
	domainerr "profilegen/internal/domain/errors"
)

type Warning struct {
	Path string
	Msg  string
}

type Options struct {
	ProjectsPath string
	StringsPath  string
	// Langs 是要生成页面的语言，每个都必须在 strings 文件里存在
	Langs []string
	// NewsLang 是 README 新闻取自的语言，也必须在 strings 文件里存在
	NewsLang string
	// DescLang 是 README 项目介绍的语言，缺少 intro_<lang> 时只给警告
	DescLang string
}

// Ingest 读取两个输入文件。任何一个缺失或格式错误都是致命错误，
// 此时不会产生任何输出。
func Ingest(opt Options) (content.Catalog, []Warning, error) {
	var cat content.Catalog

	var projects []content.Project
	projectsHash, err := readFile(opt.ProjectsPath, &projects)
	if err != nil {
		return cat, nil, fmt.Errorf("load projects: %w", err)
	}
	var strs content.Strings
	stringsHash, err := readFile(opt.StringsPath, &strs)
	if err != nil {
		return cat, nil, fmt.Errorf("load strings: %w", err)
	}

	ve := domainerr.ValidationError{Source: opt.ProjectsPath}
	var warns []Warning
	seen := make(map[string]int, len(projects))

	for i := range projects {
		p := &projects[i]
		p.Normalize()

		field := fmt.Sprintf("[%d]", i)
		if p.Title == "" {
			ve.Add(field+".title", "must not be empty")
			continue
		}
		if p.ID == "" {
			warns = append(warns, Warning{Path: opt.ProjectsPath, Msg: fmt.Sprintf("project %q has no id", p.Title)})
		} else if first, dup := seen[p.ID]; dup {
			warns = append(warns, Warning{
				Path: opt.ProjectsPath,
				Msg:  fmt.Sprintf("project id %q repeated (entries %d and %d)", p.ID, first, i),
			})
		} else {
			seen[p.ID] = i
		}
		if strings.TrimSpace(p.Intro) == "" {
			warns = append(warns, Warning{Path: opt.ProjectsPath, Msg: fmt.Sprintf("project %q has an empty intro", p.Title)})
		}
		if len(p.UnknownKeys) > 0 {
			warns = append(warns, Warning{
				Path: opt.ProjectsPath,
				Msg:  fmt.Sprintf("project %q has unknown keys %s, ignored", p.Title, strings.Join(p.UnknownKeys, ", ")),
			})
		}
		for _, lang := range introLangs(opt) {
			if _, ok := p.IntroLocalized[lang]; !ok && lang != defaultIntroLang(opt.Langs) {
				warns = append(warns, Warning{
					Path: opt.ProjectsPath,
					Msg:  fmt.Sprintf("project %q has no intro_%s, falling back to intro", p.Title, lang),
				})
			}
		}
	}
	if err := ve.Err(); err != nil {
		return cat, warns, err
	}

	sve := domainerr.ValidationError{Source: opt.StringsPath}
	for _, lang := range opt.Langs {
		if _, ok := strs[lang]; !ok {
			sve.Addf(lang, "no strings for language %q", lang)
		}
	}
	if lang := opt.NewsLang; lang != "" {
		if _, ok := strs[lang]; !ok {
			sve.Addf("news_lang", "no strings for language %q", lang)
		}
	}
	if err := sve.Err(); err != nil {
		return cat, warns, err
	}

	cat.Projects = projects
	cat.Strings = strs
	cat.ProjectsHash = projectsHash
	cat.StringsHash = stringsHash
	return cat, warns, nil
}

// defaultIntroLang 是使用 intro 字段本身的语言，即第一个页面的语言
func defaultIntroLang(langs []string) string {
	if len(langs) == 0 {
		return ""
	}
	return langs[0]
}

// introLangs 是需要检查 intro_<lang> 的语言：各页面语言加上 DescLang，去重
func introLangs(opt Options) []string {
	out := append([]string(nil), opt.Langs...)
	if opt.DescLang == "" {
		return out
	}
	for _, l := range out {
		if l == opt.DescLang {
			return out
		}
	}
	return append(out, opt.DescLang)
}

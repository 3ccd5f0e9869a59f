package build

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"profilegen/internal/badge"
	domainbuild "profilegen/internal/domain/build"
	"profilegen/internal/domain/config"
	"profilegen/internal/domain/content"
	"profilegen/internal/ingest"
	"profilegen/internal/render"
)

type Builder struct {
	Cfg    config.Config
	Logger *log.Logger
}

type Result struct {
	Projects    int
	Warnings    []ingest.Warning
	Artifacts   []domainbuild.Artifact
	Outline     render.Outline
	Fingerprint domainbuild.Fingerprint
}

// document 是渲染好、还没写盘的输出
type document struct {
	path string
	data []byte
}

func (b *Builder) logger() *log.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return log.Default()
}

func (b *Builder) opts() badge.Options {
	return badge.Options{DefaultStars: b.Cfg.Render.DefaultStars}
}

func (b *Builder) Run(ctx context.Context) (*Result, error) {
	lg := b.logger()

	langs := make([]string, 0, len(b.Cfg.Output.Pages))
	for _, p := range b.Cfg.Output.Pages {
		langs = append(langs, p.Lang)
	}
	cat, warns, err := ingest.Ingest(ingest.Options{
		ProjectsPath: b.Cfg.Input.Projects,
		StringsPath:  b.Cfg.Input.Strings,
		Langs:        langs,
		NewsLang:     b.Cfg.Readme.NewsLang,
		DescLang:     b.Cfg.Readme.DescLang,
	})
	for _, w := range warns {
		lg.Warn(w.Msg, "path", w.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("ingest failed: %w", err)
	}
	lg.Debug("loaded inputs", "projects", len(cat.Projects), "languages", len(cat.Strings))

	tpl, err := render.NewTemplateRenderer(b.Cfg.Render.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	fp := domainbuild.Fingerprint{
		ProjectsHash: cat.ProjectsHash,
		StringsHash:  cat.StringsHash,
		TemplateHash: tpl.Digest(),
	}
	if cfgJSON, err := json.Marshal(b.Cfg); err == nil {
		fp.ConfigHash = domainbuild.HashBytes(cfgJSON)
	}
	fp.ComputeRunHash()
	lg.Debug("fingerprint", "run", shortHash(fp.RunHash))

	// 先全部渲染到内存，渲染出错时不会留下写了一半的输出
	docs, err := b.renderAll(ctx, tpl, cat)
	if err != nil {
		return nil, err
	}

	md := render.NewMarkdownRenderer()
	readme := docs[len(docs)-1]
	outline := md.Inspect(readme.data)
	b.checkOutline(outline, cat.Projects)

	res := &Result{
		Projects:    len(cat.Projects),
		Warnings:    warns,
		Outline:     outline,
		Fingerprint: fp,
	}
	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := writeFile(d.path, d.data); err != nil {
			return nil, fmt.Errorf("write %s: %w", d.path, err)
		}
		art := domainbuild.NewArtifact(d.path, d.data)
		res.Artifacts = append(res.Artifacts, art)
		lg.Info("generated", "file", d.path, "bytes", art.Size, "sha256", shortHash(art.Digest))
	}
	return res, nil
}

// renderAll 依次渲染每个语言的页面，最后是 README
func (b *Builder) renderAll(ctx context.Context, tpl render.Renderer, cat content.Catalog) ([]document, error) {
	var docs []document
	for _, pc := range b.Cfg.Output.Pages {
		page := b.buildPage(pc, cat)
		htmlBytes, err := tpl.RenderPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("render page(%s): %w", pc.Lang, err)
		}
		docs = append(docs, document{
			path: filepath.Join(b.Cfg.Output.PublicDir, pc.File),
			data: htmlBytes,
		})
	}

	mdBytes, err := tpl.RenderReadme(ctx, b.buildReadme(cat))
	if err != nil {
		return nil, fmt.Errorf("render readme: %w", err)
	}
	docs = append(docs, document{path: b.Cfg.Output.Readme, data: mdBytes})
	return docs, nil
}

func (b *Builder) buildPage(pc config.PageConfig, cat content.Catalog) render.Page {
	loc := cat.Strings[pc.Lang]

	news := make([]template.HTML, 0, len(loc.News.Items))
	for _, item := range loc.News.Items {
		news = append(news, template.HTML(item))
	}

	cards := make([]render.ProjectCard, 0, len(cat.Projects))
	for _, p := range cat.Projects {
		cards = append(cards, render.ProjectCard{
			Title:       p.Title,
			Video:       render.ClassifyVideo(p.VideoURL, p.Title),
			Description: template.HTML(p.Description(pc.Lang)),
			Badges:      template.HTML(b.htmlBadges(p)),
		})
	}

	return render.Page{
		Lang:     pc.Lang,
		LangLink: pc.AltLink,
		OrgURL:   b.Cfg.Site.OrgURL,
		Locale:   loc,
		Overview: template.HTML(loc.Overview.Content),
		News:     news,
		Footer:   template.HTML(loc.Footer),
		Projects: cards,
	}
}

// htmlBadges 拼接一个项目的全部 HTML 徽章，每个后面跟一个空格
func (b *Builder) htmlBadges(p content.Project) string {
	var sb strings.Builder
	for _, spec := range p.Badges {
		for _, frag := range badge.HTML(spec, b.opts()) {
			sb.WriteString(frag)
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

func (b *Builder) buildReadme(cat content.Catalog) render.Readme {
	lg := b.logger()
	doc := render.Readme{
		Heading: b.Cfg.Readme.Heading,
		Intro:   b.Cfg.Readme.Intro,
	}
	for _, item := range cat.Strings[b.Cfg.Readme.NewsLang].News.Items {
		doc.News = append(doc.News, render.NewsToMarkdown(item))
	}
	for _, p := range cat.Projects {
		rp := render.ReadmeProject{
			Title: p.Title,
			Intro: p.Description(b.Cfg.Readme.DescLang),
		}
		for _, spec := range p.Badges {
			rp.Badges = append(rp.Badges, badge.Markdown(spec, b.opts())...)
		}
		lg.Debug("project badges", "title", p.Title, "markdown", len(rp.Badges))
		doc.Projects = append(doc.Projects, rp)
	}
	return doc
}

// checkOutline 用 goldmark 解析生成的 README，核对每个项目一个三级标题、
// 每个徽章片段一张带链接的图片
func (b *Builder) checkOutline(o render.Outline, projects []content.Project) {
	lg := b.logger()

	wantBadges := 0
	for _, p := range projects {
		for _, spec := range p.Badges {
			wantBadges += len(badge.Markdown(spec, b.opts()))
		}
	}
	sections := len(o.Sections(3))
	if sections != len(projects) {
		lg.Warn("readme section count mismatch", "want", len(projects), "got", sections)
	}
	if o.LinkedImages != wantBadges {
		lg.Warn("readme badge count mismatch", "want", wantBadges, "got", o.LinkedImages)
	}
	lg.Debug("readme outline", "sections", sections, "badges", o.LinkedImages, "images", o.Images)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

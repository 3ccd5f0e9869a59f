package render

import (
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"profilegen/internal/domain/content"
)

func samplePage() Page {
	return Page{
		Lang:     "en",
		LangLink: "index.zh.html",
		OrgURL:   "https://github.com/Fantasy-AMAP/",
		Locale: content.Locale{
			Title:    "Fantasy AIGC",
			Subtitle: "Human-centric AI",
			Nav:      content.Nav{Home: "Home", Projects: "Projects", News: "News", LangBtn: "中文"},
			Overview: content.Overview{Title: "Overview"},
			News:     content.News{Title: "Latest"},
			Footer:   "© Fantasy",
		},
		Overview: template.HTML("<p>We build <b>things</b>.</p>"),
		Footer:   template.HTML(`© 2025 <a href="https://github.com/Fantasy-AMAP">Fantasy AMAP</a>`),
		News: []template.HTML{
			"<strong>one</strong>",
			"two",
		},
		Projects: []ProjectCard{
			{
				Title:       "FantasyTalking",
				Video:       ClassifyVideo("https://youtu.be/abc123", "FantasyTalking"),
				Description: "Talking <em>heads</em>",
				Badges:      `<a href="#" target="_blank" class="badge badge-project"><i class="fas fa-globe"></i> Project</a> `,
			},
			{
				Title:       "FantasyID",
				Video:       ClassifyVideo("https://cdn.example.com/id.mp4", "FantasyID"),
				Description: "Identity",
			},
			{
				Title: "FantasyPortrait",
				Video: ClassifyVideo("", "FantasyPortrait"),
			},
		},
	}
}

func TestRenderPageBuiltin(t *testing.T) {
	r, err := NewTemplateRenderer("")
	require.NoError(t, err)
	assert.NotEmpty(t, r.Digest())

	out, err := r.RenderPage(context.Background(), samplePage())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "<title>Fantasy AIGC - Human-centric AI</title>")
	assert.Contains(t, html, `<a href="index.zh.html" class="lang-btn">中文</a>`)
	assert.Contains(t, html, `<a href="https://github.com/Fantasy-AMAP/">Projects</a>`)
	assert.Contains(t, html, "<p>We build <b>things</b>.</p>")
	assert.Contains(t, html, `<p>© 2025 <a href="https://github.com/Fantasy-AMAP">Fantasy AMAP</a></p>`)
	assert.Contains(t, html, `<div class="news-item"><div class="news-text"><strong>one</strong></div></div><div class="news-item"><div class="news-text">two</div></div>`)

	assert.Contains(t, html, `src="https://www.youtube.com/embed/abc123" title="FantasyTalking"`)
	assert.Contains(t, html, `<source src="https://cdn.example.com/id.mp4" type="video/mp4">`)
	assert.Contains(t, html, `<span class="video-placeholder-text">VIDEO PREVIEW: FantasyPortrait</span>`)
	assert.Contains(t, html, `<div class="project-badges"><a href="#" target="_blank" class="badge badge-project"><i class="fas fa-globe"></i> Project</a> </div>`)
	assert.Contains(t, html, `<div class="project-desc">Talking <em>heads</em></div>`)

	// 卡片顺序与输入一致
	i1 := strings.Index(html, "FantasyTalking</div>")
	i2 := strings.Index(html, "FantasyID</div>")
	i3 := strings.Index(html, "FantasyPortrait</div>")
	assert.True(t, i1 < i2 && i2 < i3, "cards out of order: %d %d %d", i1, i2, i3)
}

func TestRenderReadmeBuiltin(t *testing.T) {
	r, err := NewTemplateRenderer("")
	require.NoError(t, err)

	out, err := r.RenderReadme(context.Background(), Readme{
		Heading: "Fantasy AIGC Family",
		Intro:   "Intro text.",
		News:    []string{"**one**", "[two](https://t)"},
		Projects: []ReadmeProject{
			{Title: "A", Badges: []string{"[![x](i)](u)", "[![y](j)](v)"}, Intro: "About A."},
			{Title: "B", Intro: "About B."},
		},
	})
	require.NoError(t, err)

	want := "# Fantasy AIGC Family\n\nIntro text.\n\n## 🔥🔥🔥 News!!\n* **one**\n* [two](https://t)\n" +
		"\n## ✨✨✨ Members\n\n" +
		"### A\n\n[![x](i)](u)\n[![y](j)](v)\n\nAbout A.\n<br><br>\n\n" +
		"### B\n\n\nAbout B.\n<br><br>\n\n" +
		"## 🌟🌟🌟 Our wishes.\n"
	assert.True(t, strings.HasPrefix(string(out), want), "got:\n%s", out)
	assert.Contains(t, string(out), "3. **Building an Open Ecosystem**")
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	r, err := NewTemplateRenderer("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RenderPage(ctx, samplePage())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = r.RenderReadme(ctx, Readme{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTemplateOverrideDir(t *testing.T) {
	dir := t.TempDir()

	err := CheckTemplates(dir)
	require.Error(t, err)
	_, err = NewTemplateRenderer(dir)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, pageTemplate), []byte(`<p>{{.Lang}}:{{len .Projects}}</p>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, readmeTemplate), []byte(`# {{.Heading}}`), 0o644))
	require.NoError(t, CheckTemplates(dir))

	r, err := NewTemplateRenderer(dir)
	require.NoError(t, err)

	page, err := r.RenderPage(context.Background(), samplePage())
	require.NoError(t, err)
	assert.Equal(t, "<p>en:3</p>", string(page))

	md, err := r.RenderReadme(context.Background(), Readme{Heading: "H & <b>"})
	require.NoError(t, err)
	assert.Equal(t, "# H & <b>", string(md))

	builtin, err := NewTemplateRenderer("")
	require.NoError(t, err)
	assert.NotEqual(t, builtin.Digest(), r.Digest())
}

package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"profilegen/internal/domain/build"
)

const (
	pageTemplate   = "page.html.tmpl"
	readmeTemplate = "readme.md.tmpl"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

type TemplateRenderer struct {
	page   *template.Template
	readme *texttemplate.Template
	digest string
}

// NewTemplateRenderer 从 dir 加载模板；dir 为空时使用内置模板
func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(builtinTemplates, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		if err := CheckTemplates(dir); err != nil {
			return nil, err
		}
		fsys = os.DirFS(dir)
	}

	page, err := template.New(pageTemplate).Funcs(templateFuncs()).ParseFS(fsys, pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageTemplate, err)
	}
	readme, err := texttemplate.New(readmeTemplate).ParseFS(fsys, readmeTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", readmeTemplate, err)
	}

	var src []byte
	for _, name := range []string{pageTemplate, readmeTemplate} {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		src = append(src, b...)
	}
	return &TemplateRenderer{page: page, readme: readme, digest: build.HashBytes(src)}, nil
}

// Digest 是两个模板原文的哈希
func (r *TemplateRenderer) Digest() string {
	return r.digest
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"isYouTube": func(v Video) bool { return v.Kind == VideoYouTube },
		"isNative":  func(v Video) bool { return v.Kind == VideoNative },
	}
}

func (r *TemplateRenderer) RenderPage(ctx context.Context, page Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *TemplateRenderer) RenderReadme(ctx context.Context, doc Readme) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.readme.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func CheckTemplates(dir string) error {
	for _, name := range []string{pageTemplate, readmeTemplate} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("missing template: %s", name)
		}
	}
	return nil
}

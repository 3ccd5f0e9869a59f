package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type MarkdownRenderer struct {
	md goldmark.Markdown
}

func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &MarkdownRenderer{md: md}
}

type Heading struct {
	Level int
	ID    string
	Text  string
}

// Outline 是生成出的 README 的结构摘要，用来核对徽章是否都能被解析
type Outline struct {
	Headings []Heading
	// Images 统计所有图片节点，LinkedImages 只统计被链接包住的图片
	Images       int
	LinkedImages int
	Links        int
}

// Sections 返回某一级标题的文本
func (o Outline) Sections(level int) []string {
	var out []string
	for _, h := range o.Headings {
		if h.Level == level {
			out = append(out, h.Text)
		}
	}
	return out
}

func (r *MarkdownRenderer) Inspect(src []byte) Outline {
	ctx := parser.NewContext()
	doc := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))

	var out Outline
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			var idStr string
			if id, ok := node.AttributeString("id"); ok {
				switch v := id.(type) {
				case string:
					idStr = v
				case []byte:
					idStr = string(v)
				}
			}
			out.Headings = append(out.Headings, Heading{
				Level: node.Level,
				ID:    idStr,
				Text:  headingText(node, src),
			})
		case *ast.Image:
			out.Images++
			if _, ok := node.Parent().(*ast.Link); ok {
				out.LinkedImages++
			}
		case *ast.Link:
			out.Links++
		}
		return ast.WalkContinue, nil
	})
	return out
}

func headingText(h *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if seg, ok := c.(*ast.Text); ok {
			buf.Write(seg.Segment.Value(src))
		}
	}
	return buf.String()
}

package render

import "context"

type Renderer interface {
	RenderPage(ctx context.Context, page Page) ([]byte, error)
	RenderReadme(ctx context.Context, doc Readme) ([]byte, error)
}

package render

import (
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTML converts a rendered markdown document to HTML. With beautify the
// result is a complete standalone page titled after the report; without
// it, a bare fragment.
func HTML(md []byte, title string, beautify bool) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	opts := mdhtml.RendererOptions{Flags: mdhtml.CommonFlags}
	if beautify {
		opts.Flags |= mdhtml.CompletePage
		opts.Title = title
	}
	return markdown.ToHTML(md, p, mdhtml.NewRenderer(opts))
}

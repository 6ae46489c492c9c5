package client

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders assistant replies. Raw HTML in replies is dropped and replaced with
// "<!-- raw HTML omitted -->" (goldmark's default without html.WithUnsafe).
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
)

// RenderHTML converts a Markdown reply, including pipe tables, to an HTML fragment.
func RenderHTML(reply string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(reply), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

package services

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for terminal display.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour's auto-detected style.
type GlamourRenderer struct{}

// NewGlamourRenderer creates a GlamourRenderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render word-wraps content to width and renders it.
func (r *GlamourRenderer) Render(content string, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return tr.Render(content)
}

// RenderMarkdown renders content, falling back to a sane width when the terminal size is unknown.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if width <= 0 {
		width = 80
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

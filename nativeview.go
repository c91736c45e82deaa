// Package nativeview renders server-driven markup into native view
// descriptions. The root package re-exports the common entry points; the
// pkg/ tree holds the building blocks.
package nativeview

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/orchestrator"
	"github.com/goliatone/go-nativeview/pkg/render"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// RenderOptions describes per-request data renderers can use.
type RenderOptions = render.RenderOptions

// Document aliases markup.Document for callers loading markup with assigns.
type Document = markup.Document

// Node aliases view.Node, the built native view description.
type Node = view.Node

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the document at path, builds its view and renders it using
// the named renderer ("json", "tree" or "html"; empty picks json).
func Generate(ctx context.Context, path, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Path:     path,
		Renderer: rendererName,
	})
}

// GenerateFromDocument renders a pre-loaded document, bypassing the loader
// stage.
func GenerateFromDocument(ctx context.Context, doc Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// Build returns the native view description of doc.
func Build(ctx context.Context, doc Document, options ...orchestrator.Option) (Node, error) {
	node, _, err := orchestrator.New(options...).Build(ctx, orchestrator.Request{Document: &doc})
	return node, err
}

// Describe returns the canonical JSON description of n.
func Describe(n Node) string {
	return view.Describe(n)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// color tokens resolve against the chosen theme/variant.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector, defaultTheme, defaultVariant)
}

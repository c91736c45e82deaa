// Package render defines how a built view description is turned into bytes
// for a particular output: JSON for tooling, a styled tree for terminals,
// HTML for browser previews.
package render

import (
	"context"

	"github.com/goliatone/go-nativeview/pkg/view"
)

// Renderer converts a view description into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, node view.Node, options RenderOptions) ([]byte, error)
}

// Package jsonview renders view descriptions as indented JSON.
package jsonview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-nativeview/pkg/render"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent overrides the two-space indent. An empty indent renders the
// compact canonical description.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// WithEnvelope wraps the description with the render options metadata.
func WithEnvelope() Option {
	return func(r *Renderer) {
		r.envelope = true
	}
}

// Renderer emits view.Encode output.
type Renderer struct {
	indent   string
	envelope bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string        { return "json" }
func (r *Renderer) ContentType() string { return "application/json" }

type envelope struct {
	Title   string          `json:"title,omitempty"`
	Session string          `json:"session,omitempty"`
	Source  string          `json:"source,omitempty"`
	View    json.RawMessage `json:"view"`
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, node view.Node, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := view.Encode(node)
	if err != nil {
		return nil, fmt.Errorf("jsonview: %w", err)
	}
	if r.envelope {
		wrapped, err := json.Marshal(envelope{
			Title:   options.Title,
			Session: options.Session,
			Source:  options.Source,
			View:    data,
		})
		if err != nil {
			return nil, fmt.Errorf("jsonview: marshal envelope: %w", err)
		}
		data = wrapped
	}
	if r.indent == "" {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", r.indent); err != nil {
		return nil, fmt.Errorf("jsonview: indent: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

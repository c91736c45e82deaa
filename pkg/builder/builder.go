// Package builder turns a markup forest into a view description, applying
// each element's modifiers in declaration order.
package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/event"
	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/modifier"
	"github.com/goliatone/go-nativeview/pkg/view"
	"github.com/goliatone/go-nativeview/pkg/views"
)

// ElementError locates a failure in the markup tree.
type ElementError struct {
	Path string
	Tag  string
	Err  error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("builder: %s <%s>: %v", e.Path, e.Tag, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// Option configures a Builder.
type Option func(*Builder)

// WithViews sets the tag registry.
func WithViews(reg *views.Registry) Option {
	return func(b *Builder) {
		if reg != nil {
			b.views = reg
		}
	}
}

// WithModifiers sets the modifier registry.
func WithModifiers(reg *modifier.Registry) Option {
	return func(b *Builder) {
		if reg != nil {
			b.modifiers = reg
		}
	}
}

// WithDecoder sets the decoder used for element attributes.
func WithDecoder(decoder *attr.Decoder) Option {
	return func(b *Builder) {
		if decoder != nil {
			b.decoder = decoder
		}
	}
}

// WithBindings sets the source of two-way bindings, usually a session store.
func WithBindings(bindings modifier.Bindings) Option {
	return func(b *Builder) {
		b.bindings = bindings
	}
}

// WithDispatcher sets where modifier events go.
func WithDispatcher(dispatcher event.Dispatcher) Option {
	return func(b *Builder) {
		if dispatcher != nil {
			b.dispatcher = dispatcher
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Builder builds view descriptions. It keeps no per-build state and can be
// shared.
type Builder struct {
	views      *views.Registry
	modifiers  *modifier.Registry
	decoder    *attr.Decoder
	bindings   modifier.Bindings
	dispatcher event.Dispatcher
	logger     *slog.Logger
}

// New constructs a Builder with the built-in tags and modifiers.
func New(opts ...Option) *Builder {
	b := &Builder{
		dispatcher: event.Noop{},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.decoder == nil {
		b.decoder = attr.NewDecoder()
	}
	if b.views == nil {
		b.views = views.NewRegistry()
	}
	if b.modifiers == nil {
		b.modifiers = modifier.NewRegistry(modifier.WithDecoder(b.decoder))
	}
	return b
}

// Options carries per-build inputs.
type Options struct {
	Assigns map[string]any
}

// Build builds every root. A single root is returned as is; several roots
// are wrapped in a group.
func (b *Builder) Build(ctx context.Context, roots []*markup.Element, opts Options) (view.Node, error) {
	nodes := make([]view.Node, 0, len(roots))
	for i, root := range roots {
		if err := ctx.Err(); err != nil {
			return view.Node{}, err
		}
		node, err := b.buildElement(ctx, root, strconv.Itoa(i), opts.Assigns)
		if err != nil {
			return view.Node{}, err
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return view.Group("", nodes), nil
}

// BuildDocument parses doc and builds it with its assigns.
func (b *Builder) BuildDocument(ctx context.Context, doc markup.Document) (view.Node, error) {
	roots, err := doc.Elements()
	if err != nil {
		return view.Node{}, err
	}
	return b.Build(ctx, roots, Options{Assigns: doc.Assigns})
}

func (b *Builder) buildElement(ctx context.Context, el *markup.Element, path string, assigns map[string]any) (view.Node, error) {
	if el.IsText() {
		return view.Text(el.Text), nil
	}
	ec := &elementContext{ctx: ctx, builder: b, el: el, path: path, assigns: assigns}

	node, err := b.views.Build(ec)
	if err != nil {
		return view.Node{}, wrap(path, el.Tag, err)
	}

	calls, err := el.Modifiers()
	if err != nil {
		return view.Node{}, wrap(path, el.Tag, err)
	}
	for i, call := range calls {
		env := modifier.Env{
			Key:        path + ":" + call.Type + "[" + strconv.Itoa(i) + "]",
			Content:    ec.resolver(),
			Bindings:   b.bindings,
			Dispatcher: b.dispatcher,
			Logger:     b.logger,
		}
		m, err := b.modifiers.Build(call.Type, markup.Bind(call.Args, assigns), env)
		if err != nil {
			return view.Node{}, wrap(path, el.Tag, err)
		}
		node = m.Apply(node)
	}
	return node, nil
}

func wrap(path, tag string, err error) error {
	var located *ElementError
	if errors.As(err, &located) {
		return err
	}
	return &ElementError{Path: path, Tag: tag, Err: err}
}

type elementContext struct {
	ctx     context.Context
	builder *Builder
	el      *markup.Element
	path    string
	assigns map[string]any
}

func (c *elementContext) Element() *markup.Element {
	return c.el
}

func (c *elementContext) Attributes() attr.Container {
	return markup.Bind(c.el.Attributes(), c.assigns)
}

func (c *elementContext) Decode(schema attr.Schema) (attr.Record, error) {
	return c.builder.decoder.Decode(schema, c.Attributes())
}

func (c *elementContext) Children(template string) ([]view.Node, error) {
	var nodes []view.Node
	for i, child := range c.el.Children {
		if child.IsText() {
			if template == "" {
				nodes = append(nodes, view.Text(child.Text))
			}
			continue
		}
		if child.Template() != template {
			continue
		}
		node, err := c.builder.buildElement(c.ctx, child, c.path+"."+strconv.Itoa(i), c.assigns)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// resolver resolves templates for modifiers. Failures are logged and
// resolve to no content.
func (c *elementContext) resolver() modifier.ContentResolver {
	return modifier.ContentResolverFunc(func(template string) []view.Node {
		nodes, err := c.Children(template)
		if err != nil {
			c.builder.logger.Error("template resolution failed", "path", c.path, "tag", c.el.Tag, "template", template, "error", err)
			return nil
		}
		if len(nodes) == 0 {
			c.builder.logger.Warn("template not found", "path", c.path, "tag", c.el.Tag, "template", template)
		}
		return nodes
	})
}

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/builder"
	"github.com/goliatone/go-nativeview/pkg/color"
	"github.com/goliatone/go-nativeview/pkg/event"
	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/render"
	"github.com/goliatone/go-nativeview/pkg/renderers/html"
	"github.com/goliatone/go-nativeview/pkg/renderers/jsonview"
	"github.com/goliatone/go-nativeview/pkg/renderers/tree"
	"github.com/goliatone/go-nativeview/pkg/session"
	"github.com/goliatone/go-nativeview/pkg/view"
)

const defaultRendererName = "json"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithBuilder injects a preconfigured view builder. Session, dispatcher and
// color options are then ignored for building.
func WithBuilder(b *builder.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = b
	}
}

// WithSession shares a session store across orchestrators.
func WithSession(store *session.Store) Option {
	return func(o *Orchestrator) {
		o.session = store
	}
}

// WithDispatcher sets where modifier events go.
func WithDispatcher(d event.Dispatcher) Option {
	return func(o *Orchestrator) {
		o.dispatcher = d
	}
}

// WithLogger sets the logger handed to every stage.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithColorTokens registers theme color tokens for color attributes.
func WithColorTokens(tokens map[string]string) Option {
	return func(o *Orchestrator) {
		o.paletteOptions = append(o.paletteOptions, color.WithTokens(tokens))
	}
}

// WithThemeSelector resolves color tokens from a go-theme selection. Request
// ThemeName and ThemeVariant override the defaults given here.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
		o.themeName = defaultTheme
		o.themeVariant = defaultVariant
	}
}

// WithTransformer registers a Transformer that runs on the loaded document
// before the view is built.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, t)
	}
}

// Orchestrator coordinates the pipeline from markup document to rendered
// output. Defaults: json/tree/html renderers, a fresh session store, no-op
// dispatcher, discarded logs.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	builder         *builder.Builder
	session         *session.Store
	dispatcher      event.Dispatcher
	logger          *slog.Logger
	paletteOptions  []color.Option
	themeSelector   theme.ThemeSelector
	themeName       string
	themeVariant    string
	transformers    []Transformer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Document bypasses loading when the caller already has one.
	Document *markup.Document
	// Path names the document inside FS (or on disk when FS is nil).
	Path string
	FS   fs.FS
	// Assigns override document assigns.
	Assigns map[string]any
	// Renderer names the renderer to use; empty means the default.
	Renderer string
	// ThemeName and ThemeVariant pick the color theme when a selector is set.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Session exposes the session store bindings are kept in.
func (o *Orchestrator) Session() *session.Store {
	return o.session
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Build runs every stage up to the view description.
func (o *Orchestrator) Build(ctx context.Context, req Request) (view.Node, markup.Document, error) {
	if ctx == nil {
		return view.Node{}, markup.Document{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return view.Node{}, markup.Document{}, err
	}
	if err := o.initialiseErr; err != nil {
		return view.Node{}, markup.Document{}, err
	}

	doc, err := o.resolveDocument(req)
	if err != nil {
		return view.Node{}, markup.Document{}, err
	}
	doc = doc.WithAssigns(req.Assigns)
	for _, t := range o.transformers {
		if t == nil {
			continue
		}
		if err := t.Transform(ctx, &doc); err != nil {
			return view.Node{}, markup.Document{}, fmt.Errorf("orchestrator: transform document: %w", err)
		}
	}

	b, err := o.builderFor(req)
	if err != nil {
		return view.Node{}, markup.Document{}, err
	}
	node, err := b.BuildDocument(ctx, doc)
	if err != nil {
		return view.Node{}, markup.Document{}, fmt.Errorf("orchestrator: build view: %w", err)
	}
	o.logger.Debug("view built", "source", doc.Source, "session", o.session.ID())
	return node, doc, nil
}

// Generate builds the view and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	node, doc, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.Render(ctx, node, doc, req)
}

// Render renders an already built node with the renderer req names.
func (o *Orchestrator) Render(ctx context.Context, node view.Node, doc markup.Document, req Request) ([]byte, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	options := req.RenderOptions
	if options.Session == "" {
		options.Session = o.session.ID()
	}
	if options.Source == "" {
		options.Source = doc.Source
	}
	output, err := renderer.Render(ctx, node, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveDocument(req Request) (markup.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Path == "" {
		return markup.Document{}, errors.New("orchestrator: path or document is required")
	}
	fsys, name := req.FS, req.Path
	if fsys == nil {
		fsys, name = os.DirFS(filepath.Dir(req.Path)), filepath.Base(req.Path)
	}
	doc, err := markup.LoadDocumentFS(fsys, name)
	if err != nil {
		return markup.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) builderFor(req Request) (*builder.Builder, error) {
	if o.builder != nil {
		return o.builder, nil
	}
	paletteOptions := append([]color.Option(nil), o.paletteOptions...)
	if o.themeSelector != nil {
		name, variant := o.themeName, o.themeVariant
		if req.ThemeName != "" {
			name = req.ThemeName
		}
		if req.ThemeVariant != "" {
			variant = req.ThemeVariant
		}
		selection, err := o.themeSelector.Select(name, variant)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: select theme: %w", err)
		}
		paletteOptions = append(paletteOptions, color.WithSelection(selection))
	}
	decoder := attr.NewDecoder(attr.WithColors(color.NewResolver(paletteOptions...)))
	return builder.New(
		builder.WithDecoder(decoder),
		builder.WithBindings(o.session),
		builder.WithDispatcher(o.dispatcher),
		builder.WithLogger(o.logger),
	), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.dispatcher == nil {
		o.dispatcher = event.Noop{}
	}
	if o.session == nil {
		store, err := session.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: session: %w", err)
		} else {
			o.session = store
		}
	}
	if o.registry == nil {
		o.registry = render.NewRegistry(jsonview.New(), tree.New())
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = errors.Join(o.initialiseErr, fmt.Errorf("orchestrator: default renderer: %w", err))
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

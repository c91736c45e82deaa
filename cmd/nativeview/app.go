package main

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-nativeview/pkg/color"
	"github.com/goliatone/go-nativeview/pkg/orchestrator"
	"github.com/goliatone/go-nativeview/pkg/render"
	"github.com/goliatone/go-nativeview/pkg/renderers/html"
	"github.com/goliatone/go-nativeview/pkg/renderers/jsonview"
	"github.com/goliatone/go-nativeview/pkg/renderers/tree"
	"github.com/goliatone/go-nativeview/pkg/renderers/tui"
	"github.com/goliatone/go-nativeview/pkg/session"
)

// registry registers every renderer the CLI can name.
func (c *cli) registry(extra ...render.Renderer) (*render.Registry, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry(
		jsonview.New(jsonview.WithEnvelope()),
		tree.New(tree.WithHeader()),
		htmlRenderer,
		tui.New(tui.WithDispatcher(c.dispatcher), tui.WithOutputFormat(tui.OutputFormatPrettyText)),
	)
	for _, r := range extra {
		if registry.Has(r.Name()) {
			continue
		}
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// orchestrator wires the configured session, dispatcher, logger and theme.
func (c *cli) orchestrator(registry *render.Registry) (*orchestrator.Orchestrator, error) {
	var sessionOpts []session.Option
	if c.cfg.Sessions.ID != "" {
		sessionOpts = append(sessionOpts, session.WithID(c.cfg.Sessions.ID))
	}
	store, err := session.New(sessionOpts...)
	if err != nil {
		return nil, err
	}

	opts := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(c.cfg.Render.Renderer),
		orchestrator.WithSession(store),
		orchestrator.WithDispatcher(c.dispatcher),
		orchestrator.WithLogger(c.logger),
	}
	if selector, ok, err := c.themeSelector(); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, orchestrator.WithThemeSelector(selector, c.cfg.Theme.Name, c.cfg.Theme.Variant))
	}
	return orchestrator.New(opts...), nil
}

func (c *cli) themeSelector() (theme.ThemeSelector, bool, error) {
	t := c.cfg.Theme
	if len(t.Tokens) == 0 && len(t.Variants) == 0 {
		return nil, false, nil
	}
	manifest := &theme.Manifest{
		Name:     t.Name,
		Version:  "local",
		Tokens:   t.Tokens,
		Variants: make(map[string]theme.Variant, len(t.Variants)),
	}
	for name, tokens := range t.Variants {
		manifest.Variants[name] = theme.Variant{Tokens: tokens}
	}
	selector := color.NewManifestSelector(t.Name, t.Variant)
	if err := selector.Register(manifest); err != nil {
		return nil, false, fmt.Errorf("theme: %w", err)
	}
	return selector, true, nil
}

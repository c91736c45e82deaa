// Package tui walks a built view description in the terminal, offering the
// user the native interactions it exposes: dismissing presented sheets and
// tapping buttons bound to server events.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-nativeview/pkg/event"
	"github.com/goliatone/go-nativeview/pkg/render"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	dispatcher   event.Dispatcher
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       NewSurveyDriver(),
		outputFormat: OutputFormatJSON,
		dispatcher:   event.Noop{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render prompts for every interaction the view offers and returns the log.
func (r *Renderer) Render(ctx context.Context, node view.Node, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}

	state := NewState()
	targets := collectTargets(node, "0", nil)
	if len(targets) == 0 {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+opts.Header()+": nothing to interact with"); err != nil {
			return nil, err
		}
		return r.serialize(state)
	}

	for _, t := range targets {
		var err error
		switch t.node.Kind {
		case view.KindSheet:
			err = r.promptSheet(ctx, t, state)
		case view.KindButton:
			err = r.promptButton(ctx, t, state)
		}
		if err != nil {
			return nil, err
		}
	}
	return r.serialize(state)
}

func (r *Renderer) promptSheet(ctx context.Context, t target, state *State) error {
	body := label(view.Node{Children: t.node.Content})
	ok, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: r.theme.PromptPrefix + fmt.Sprintf("Sheet %q is presented. Dismiss it?", body),
		Help:    "Dismissing writes the binding back to false and notifies the server.",
	})
	if err != nil {
		return err
	}
	state.Record(Interaction{Path: t.path, Kind: string(t.node.Kind), Action: view.ActionDismiss, Label: body, Accepted: ok})
	if !ok {
		return nil
	}
	if err := t.node.Invoke(ctx, view.ActionDismiss); err != nil {
		return fmt.Errorf("tui: dismiss %s: %w", t.path, err)
	}
	return nil
}

func (r *Renderer) promptButton(ctx context.Context, t target, state *State) error {
	name, _ := t.node.Props["event"].(string)
	text := label(t.node)
	ok, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: r.theme.PromptPrefix + fmt.Sprintf("Tap %q (%s)?", text, name),
	})
	if err != nil {
		return err
	}
	state.Record(Interaction{Path: t.path, Kind: string(t.node.Kind), Action: name, Label: text, Accepted: ok})
	if !ok {
		return nil
	}
	if err := r.dispatcher.Dispatch(ctx, event.Named(name), nil); err != nil {
		return fmt.Errorf("tui: tap %s: %w", t.path, err)
	}
	return nil
}

func (r *Renderer) serialize(state *State) ([]byte, error) {
	interactions := state.Interactions()
	if r.outputFormat == OutputFormatPrettyText {
		var b strings.Builder
		for _, i := range interactions {
			mark := "skipped"
			if i.Accepted {
				mark = "done"
			}
			fmt.Fprintf(&b, "%s %s %s %q: %s\n", i.Path, i.Kind, i.Action, i.Label, mark)
		}
		fmt.Fprintf(&b, "%d of %d interactions accepted\n", state.Accepted(), len(interactions))
		return []byte(b.String()), nil
	}
	if interactions == nil {
		interactions = []Interaction{}
	}
	out, err := json.MarshalIndent(map[string]any{"interactions": interactions}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: marshal interactions: %w", err)
	}
	return append(out, '\n'), nil
}

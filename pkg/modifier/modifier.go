// Package modifier turns decoded attribute records into view modifiers.
//
// Each modifier type declares an attr.Schema; the Registry decodes a raw
// argument container against it and hands the resulting Record to the
// type's Factory together with an Env carrying the collaborators the
// modifier needs at apply time.
package modifier

import (
	"log/slog"

	"github.com/goliatone/go-nativeview/pkg/binding"
	"github.com/goliatone/go-nativeview/pkg/event"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// Modifier transforms a view description. Apply never fails and never
// mutates its input.
type Modifier interface {
	Type() string
	Apply(v view.Node) view.Node
}

// ContentResolver resolves a named child template to view descriptions.
// Failures are the resolver's concern: it logs and returns no nodes.
type ContentResolver interface {
	Resolve(template string) []view.Node
}

// ContentResolverFunc adapts a function into a ContentResolver.
type ContentResolverFunc func(template string) []view.Node

// Resolve delegates to the underlying function.
func (fn ContentResolverFunc) Resolve(template string) []view.Node {
	return fn(template)
}

// Bindings hands out two-way bindings keyed by a stable identity.
type Bindings interface {
	Bool(key string, server bool) binding.Bool
}

// Env carries build-time collaborators.
type Env struct {
	// Key identifies the modifier instance across render passes.
	Key        string
	Content    ContentResolver
	Bindings   Bindings
	Dispatcher event.Dispatcher
	Logger     *slog.Logger
}

func (e Env) withDefaults() Env {
	if e.Content == nil {
		e.Content = ContentResolverFunc(func(string) []view.Node { return nil })
	}
	if e.Dispatcher == nil {
		e.Dispatcher = event.Noop{}
	}
	if e.Logger == nil {
		e.Logger = slog.New(slog.DiscardHandler)
	}
	return e
}

// Apply runs modifiers over v in order.
func Apply(v view.Node, mods ...Modifier) view.Node {
	for _, m := range mods {
		if m == nil {
			continue
		}
		v = m.Apply(v)
	}
	return v
}

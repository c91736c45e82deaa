package modifier

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-nativeview/pkg/attr"
)

// ErrUnknownModifier reports a modifier type with no registered definition.
var ErrUnknownModifier = errors.New("modifier: unknown type")

// Factory builds a modifier from a decoded record.
type Factory func(rec attr.Record, env Env) (Modifier, error)

// Definition binds a modifier type to its schema and factory.
type Definition struct {
	Schema  attr.Schema
	Factory Factory
}

// Type returns the modifier type name, taken from the schema.
func (d Definition) Type() string {
	return d.Schema.Name
}

// Option configures a Registry.
type Option func(*Registry)

// WithDecoder sets the attribute decoder used by Build.
func WithDecoder(decoder *attr.Decoder) Option {
	return func(r *Registry) {
		if decoder != nil {
			r.decoder = decoder
		}
	}
}

// WithoutBuiltins starts from an empty registry.
func WithoutBuiltins() Option {
	return func(r *Registry) {
		r.builtins = false
	}
}

// Registry stores modifier definitions by type name.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
	decoder     *attr.Decoder
	builtins    bool
}

// NewRegistry returns a registry holding the built-in modifiers.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		definitions: make(map[string]Definition),
		builtins:    true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.decoder == nil {
		r.decoder = attr.NewDecoder()
	}
	if r.builtins {
		for _, def := range Builtins() {
			r.MustRegister(def)
		}
	}
	return r
}

// Builtins lists the shipped modifier definitions.
func Builtins() []Definition {
	return []Definition{
		{Schema: ShadowSchema, Factory: newShadow},
		{Schema: HiddenSchema, Factory: newHidden},
		{Schema: OpacitySchema, Factory: newOpacity},
		{Schema: SheetSchema, Factory: newSheet},
	}
}

// Register adds a definition. Duplicate types return an error.
func (r *Registry) Register(def Definition) error {
	name := def.Type()
	if name == "" {
		return fmt.Errorf("modifier: type name is required")
	}
	if def.Factory == nil {
		return fmt.Errorf("modifier: %s: factory is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[name]; exists {
		return fmt.Errorf("modifier: %q already registered", name)
	}
	r.definitions[name] = def
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Definition looks up a type.
func (r *Registry) Definition(name string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.definitions[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w %q", ErrUnknownModifier, name)
	}
	return def, nil
}

// Decode decodes args against the schema of the named type.
func (r *Registry) Decode(name string, args attr.Container) (attr.Record, error) {
	def, err := r.Definition(name)
	if err != nil {
		return attr.Record{}, err
	}
	return r.decoder.Decode(def.Schema, args)
}

// Build decodes args and constructs the modifier.
func (r *Registry) Build(name string, args attr.Container, env Env) (Modifier, error) {
	def, err := r.Definition(name)
	if err != nil {
		return nil, err
	}
	rec, err := r.decoder.Decode(def.Schema, args)
	if err != nil {
		return nil, err
	}
	return def.Factory(rec, env.withDefaults())
}

// List returns the sorted type names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schemas returns every registered schema sorted by type name.
func (r *Registry) Schemas() []attr.Schema {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attr.Schema, 0, len(names))
	for _, name := range names {
		out = append(out, r.definitions[name].Schema)
	}
	return out
}

// Has reports whether a type is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.definitions[name]
	return ok
}

// Package views maps markup tags to view descriptions.
//
// Each tag has a Definition: an optional attribute schema and a build
// function that receives the decoded record plus a Context for reaching the
// element's children. Tags without a definition become plain groups.
package views

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// Context gives a build function access to its element.
type Context interface {
	Element() *markup.Element
	// Attributes returns the element attributes with assigns interpolated.
	Attributes() attr.Container
	Decode(schema attr.Schema) (attr.Record, error)
	// Children builds the child elements whose template attribute equals
	// template. An empty template selects the untemplated children and text.
	Children(template string) ([]view.Node, error)
}

// BuildFunc produces the view for one element.
type BuildFunc func(ctx Context, rec attr.Record) (view.Node, error)

// Definition binds a tag to its schema and build function.
type Definition struct {
	Tag    string
	Schema attr.Schema
	Build  BuildFunc
}

// Registry stores definitions by tag.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

// NewRegistry returns a registry holding the built-in tags.
func NewRegistry() *Registry {
	r := &Registry{definitions: make(map[string]Definition)}
	for _, def := range Builtins() {
		r.MustRegister(def)
	}
	return r
}

// Register adds a definition. Duplicate tags return an error.
func (r *Registry) Register(def Definition) error {
	if def.Tag == "" {
		return fmt.Errorf("views: tag is required")
	}
	if def.Build == nil {
		return fmt.Errorf("views: %s: build function is required", def.Tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.Tag]; exists {
		return fmt.Errorf("views: tag %q already registered", def.Tag)
	}
	r.definitions[def.Tag] = def
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition for tag, falling back to the group
// definition for unknown tags.
func (r *Registry) Lookup(tag string) Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if def, ok := r.definitions[tag]; ok {
		return def
	}
	return Definition{Tag: tag, Build: buildGroup}
}

// Has reports whether tag has its own definition.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.definitions[tag]
	return ok
}

// List returns the registered tags sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.definitions))
	for tag := range r.definitions {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Build decodes the element attributes against the definition schema and
// runs its build function.
func (r *Registry) Build(ctx Context) (view.Node, error) {
	def := r.Lookup(ctx.Element().Tag)
	var rec attr.Record
	if len(def.Schema.Fields) > 0 {
		decoded, err := ctx.Decode(def.Schema)
		if err != nil {
			return view.Node{}, err
		}
		rec = decoded
	}
	return def.Build(ctx, rec)
}

func buildGroup(ctx Context, _ attr.Record) (view.Node, error) {
	children, err := ctx.Children("")
	if err != nil {
		return view.Node{}, err
	}
	return view.Group(ctx.Element().Tag, children), nil
}

// Package markup parses the server-sent template markup into an element
// forest and loads documents that pair markup with their assigns.
package markup

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-nativeview/pkg/attr"
)

// Attribute names with structural meaning.
const (
	AttrModifiers = "modifiers"
	AttrTemplate  = "template"
	AttrID        = "id"
)

// Element is one parsed markup node. Text elements have an empty Tag.
type Element struct {
	Tag      string            `json:"tag,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*Element        `json:"children,omitempty"`
	Text     string            `json:"text,omitempty"`
}

// IsText reports whether e is a text node.
func (e *Element) IsText() bool {
	return e.Tag == ""
}

// Attr returns an attribute value.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attrs[key]
	if !ok {
		v, ok = e.Attrs[strings.ToLower(key)]
	}
	return v, ok
}

// Attributes exposes the element attributes as a decoder container.
func (e *Element) Attributes() attr.Strings {
	return attr.Strings(e.Attrs)
}

// Template returns the template attribute, or "" when absent.
func (e *Element) Template() string {
	return e.Attrs[AttrTemplate]
}

// ID returns the id attribute, or "" when absent.
func (e *Element) ID() string {
	return e.Attrs[AttrID]
}

// ModifierCall is one entry of the modifiers attribute.
type ModifierCall struct {
	Type string
	Args attr.Map
}

// Modifiers parses the modifiers attribute: a JSON array of objects with a
// "type" key, or a single such object. A missing attribute yields nil.
func (e *Element) Modifiers() ([]ModifierCall, error) {
	raw, ok := e.Attrs[AttrModifiers]
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	return ParseModifiers(raw)
}

// ParseModifiers decodes a modifiers attribute value.
func ParseModifiers(raw string) ([]ModifierCall, error) {
	raw = strings.TrimSpace(raw)
	var entries []map[string]any
	if strings.HasPrefix(raw, "{") {
		var single map[string]any
		if err := json.Unmarshal([]byte(raw), &single); err != nil {
			return nil, fmt.Errorf("markup: modifiers: %w", err)
		}
		entries = append(entries, single)
	} else if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("markup: modifiers: %w", err)
	}

	calls := make([]ModifierCall, 0, len(entries))
	for i, entry := range entries {
		typ, _ := entry["type"].(string)
		if typ = strings.TrimSpace(typ); typ == "" {
			return nil, fmt.Errorf("markup: modifiers[%d]: type is required", i)
		}
		args := make(attr.Map, len(entry))
		for k, v := range entry {
			if k != "type" {
				args[k] = v
			}
		}
		calls = append(calls, ModifierCall{Type: typ, Args: args})
	}
	return calls, nil
}

// TextContent concatenates the text of e and its descendants.
func (e *Element) TextContent() string {
	if e.IsText() {
		return e.Text
	}
	parts := make([]string, 0, len(e.Children))
	for _, child := range e.Children {
		if s := child.TextContent(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

package view

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies the native primitive a node stands for.
type Kind string

const (
	KindText       Kind = "text"
	KindGroup      Kind = "group"
	KindStack      Kind = "stack"
	KindButton     Kind = "button"
	KindLazyHStack Kind = "lazy-hstack"
	KindLazyVStack Kind = "lazy-vstack"
	KindShadow     Kind = "shadow"
	KindOpacity    Kind = "opacity"
	KindHidden     Kind = "hidden"
	KindSheet      Kind = "sheet"
)

// Action is a native callback attached to a node.
type Action func(ctx context.Context) error

// Props holds the scalar arguments of a primitive.
type Props map[string]any

// Node is one native view.
type Node struct {
	Kind     Kind   `json:"kind"`
	Props    Props  `json:"props,omitempty"`
	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
	// Content holds views presented outside the normal hierarchy, such as
	// the body of a sheet.
	Content []Node `json:"content,omitempty"`

	actions map[string]Action
}

// Prop returns a property value.
func (n Node) Prop(key string) (any, bool) {
	v, ok := n.Props[key]
	return v, ok
}

// Child returns the single wrapped view of a modifier node.
func (n Node) Child() (Node, bool) {
	if len(n.Children) != 1 {
		return Node{}, false
	}
	return n.Children[0], true
}

// Actions lists registered action names.
func (n Node) Actions() []string {
	names := make([]string, 0, len(n.actions))
	for name := range n.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named action.
func (n Node) Invoke(ctx context.Context, name string) error {
	action, ok := n.actions[name]
	if !ok || action == nil {
		return fmt.Errorf("view: %s node has no %q action", n.Kind, name)
	}
	return action(ctx)
}

// WithAction returns a copy of n with the action registered.
func (n Node) WithAction(name string, action Action) Node {
	out := n.clone()
	if out.actions == nil {
		out.actions = make(map[string]Action, 1)
	}
	out.actions[name] = action
	return out
}

// WithProp returns a copy of n with the property set.
func (n Node) WithProp(key string, value any) Node {
	out := n.clone()
	if out.Props == nil {
		out.Props = make(Props, 1)
	}
	out.Props[key] = value
	return out
}

// Walk visits n and its descendants depth-first, children before content.
// Returning false stops the walk.
func (n Node) Walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	for _, child := range n.Content {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node of kind in walk order.
func (n Node) Find(kind Kind) (Node, bool) {
	var found Node
	var ok bool
	n.Walk(func(candidate Node) bool {
		if candidate.Kind == kind {
			found, ok = candidate, true
			return false
		}
		return true
	})
	return found, ok
}

// Encode returns the canonical JSON description of n. encoding/json sorts
// map keys, so identical trees always produce identical descriptions.
func Encode(n Node) ([]byte, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("view: encode %s node: %w", n.Kind, err)
	}
	return data, nil
}

// Describe is Encode for logs and test messages. Encoding failures are
// reported inline.
func Describe(n Node) string {
	data, err := Encode(n)
	if err != nil {
		return fmt.Sprintf(`{"kind":%q,"error":%q}`, n.Kind, err.Error())
	}
	return string(data)
}

func (n Node) clone() Node {
	out := n
	if n.Props != nil {
		out.Props = make(Props, len(n.Props))
		for k, v := range n.Props {
			out.Props[k] = v
		}
	}
	out.Children = cloneNodes(n.Children)
	out.Content = cloneNodes(n.Content)
	if n.actions != nil {
		out.actions = make(map[string]Action, len(n.actions))
		for k, v := range n.actions {
			out.actions[k] = v
		}
	}
	return out
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return out
}

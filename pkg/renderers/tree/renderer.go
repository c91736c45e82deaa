// Package tree renders view descriptions as a lipgloss tree for terminals.
package tree

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtree "github.com/charmbracelet/lipgloss/tree"

	"github.com/goliatone/go-nativeview/pkg/render"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// Theme holds the styles applied to each part of a line.
type Theme struct {
	Header lipgloss.Style
	Kind   lipgloss.Style
	Prop   lipgloss.Style
	Text   lipgloss.Style
	Branch lipgloss.Style
	Slot   lipgloss.Style
}

// DefaultTheme is used unless WithTheme or WithPlain is given.
func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Kind:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5AC8FA")),
		Prop:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93")),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color("#34C759")),
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3C")),
		Slot:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#FF9500")),
	}
}

// Option configures the renderer.
type Option func(*Renderer)

// WithTheme overrides the styles.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
		r.plain = false
	}
}

// WithPlain disables styling.
func WithPlain() Option {
	return func(r *Renderer) {
		r.plain = true
	}
}

// WithHeader prints RenderOptions.Header() above the tree.
func WithHeader() Option {
	return func(r *Renderer) {
		r.header = true
	}
}

// Renderer draws the tree.
type Renderer struct {
	theme  Theme
	plain  bool
	header bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{theme: DefaultTheme()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string        { return "tree" }
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, node view.Node, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var b strings.Builder
	if r.header {
		b.WriteString(r.style(r.theme.Header, options.Header()))
		b.WriteByte('\n')
	}
	// lipgloss pads every line of a joined block to the widest one.
	for _, line := range strings.Split(r.build(node).String(), "\n") {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// String renders node without options.
func (r *Renderer) String(node view.Node) string {
	out, _ := r.Render(context.Background(), node, render.RenderOptions{})
	return string(out)
}

// build converts node into a lipgloss tree. Sheet content hangs under a
// "content" slot after the regular children.
func (r *Renderer) build(node view.Node) *lgtree.Tree {
	t := lgtree.Root(r.Line(node))
	if !r.plain {
		t = t.EnumeratorStyle(r.theme.Branch.PaddingRight(1))
	}
	for _, child := range node.Children {
		t.Child(r.item(child))
	}
	if len(node.Content) > 0 {
		slot := lgtree.Root(r.style(r.theme.Slot, "◆ content"))
		if !r.plain {
			slot = slot.EnumeratorStyle(r.theme.Branch.PaddingRight(1))
		}
		for _, child := range node.Content {
			slot.Child(r.item(child))
		}
		t.Child(slot)
	}
	return t
}

func (r *Renderer) item(node view.Node) any {
	if len(node.Children) == 0 && len(node.Content) == 0 {
		return r.Line(node)
	}
	return r.build(node)
}

// Line renders the label of a single node.
func (r *Renderer) Line(n view.Node) string {
	parts := []string{r.style(r.theme.Kind, string(n.Kind))}
	if n.Text != "" {
		parts = append(parts, r.style(r.theme.Text, strconv.Quote(n.Text)))
	}
	keys := make([]string, 0, len(n.Props))
	for key := range n.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, r.style(r.theme.Prop, key+"="+formatValue(n.Props[key])))
	}
	if actions := n.Actions(); len(actions) > 0 {
		parts = append(parts, r.style(r.theme.Slot, "["+strings.Join(actions, ",")+"]"))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case []string:
		return "[" + strings.Join(value, " ") + "]"
	default:
		return fmt.Sprint(value)
	}
}

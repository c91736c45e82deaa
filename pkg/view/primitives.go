package view

import (
	"github.com/goliatone/go-nativeview/pkg/color"
	"github.com/goliatone/go-nativeview/pkg/enum"
)

// Text is a leaf text view.
func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Group holds children without layout semantics. Tag records the markup
// element it came from, when any.
func Group(tag string, children []Node) Node {
	n := Node{Kind: KindGroup, Children: cloneNodes(children)}
	if tag != "" {
		n.Props = Props{"tag": tag}
	}
	return n
}

// Axis orients a stack.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
	AxisDepth      Axis = "depth"
)

// Stack is an eager stack along axis.
func Stack(axis Axis, spacing *float64, children []Node) Node {
	props := Props{"axis": string(axis)}
	if spacing != nil {
		props["spacing"] = *spacing
	}
	return Node{Kind: KindStack, Props: props, Children: cloneNodes(children)}
}

// Button wraps a label with a tap target.
func Button(label []Node, event string) Node {
	n := Node{Kind: KindButton, Children: cloneNodes(label)}
	if event != "" {
		n.Props = Props{"event": event}
	}
	return n
}

// LazyHStack describes a horizontal lazy stack. A nil spacing means the
// system spacing.
func LazyHStack(alignment enum.VerticalAlignment, spacing *float64, pinned enum.PinnedViews, children []Node) Node {
	return lazyStack(KindLazyHStack, alignment.String(), spacing, pinned, children)
}

// LazyVStack describes a vertical lazy stack.
func LazyVStack(alignment enum.HorizontalAlignment, spacing *float64, pinned enum.PinnedViews, children []Node) Node {
	return lazyStack(KindLazyVStack, alignment.String(), spacing, pinned, children)
}

func lazyStack(kind Kind, alignment string, spacing *float64, pinned enum.PinnedViews, children []Node) Node {
	props := Props{
		"alignment":   alignment,
		"pinnedViews": pinned.Tokens(),
	}
	if spacing != nil {
		props["spacing"] = *spacing
	}
	return Node{Kind: kind, Props: props, Children: cloneNodes(children)}
}

// Shadow wraps content with a drop shadow.
func Shadow(content Node, c color.Color, radius, x, y float64) Node {
	return Node{
		Kind: KindShadow,
		Props: Props{
			"color":  c.Hex(),
			"radius": radius,
			"x":      x,
			"y":      y,
		},
		Children: []Node{content},
	}
}

// Opacity wraps content with an opacity factor. Values outside [0, 1] are
// kept as given.
func Opacity(content Node, opacity float64) Node {
	return Node{
		Kind:     KindOpacity,
		Props:    Props{"opacity": opacity},
		Children: []Node{content},
	}
}

// Hidden wraps content so it keeps its layout space but is not drawn.
func Hidden(content Node) Node {
	return Node{Kind: KindHidden, Children: []Node{content}}
}

// Sheet wraps content with a sheet presentation. The sheet body is only
// present while presented is true. dismiss is the callback the toolkit
// invokes when the user dismisses the sheet.
func Sheet(content Node, presented bool, body []Node, dismiss Action) Node {
	n := Node{
		Kind:     KindSheet,
		Props:    Props{"presented": presented},
		Children: []Node{content},
	}
	if presented {
		n.Content = cloneNodes(body)
	}
	if dismiss != nil {
		n = n.WithAction(ActionDismiss, dismiss)
	}
	return n
}

// ActionDismiss is the action name the toolkit calls on sheet dismissal.
const ActionDismiss = "dismiss"

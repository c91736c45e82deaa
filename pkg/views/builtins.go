package views

import (
	"strings"

	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/enum"
	"github.com/goliatone/go-nativeview/pkg/event"
	"github.com/goliatone/go-nativeview/pkg/view"
)

func spacingField() attr.Field {
	return attr.Optional("spacing", attr.KindFloat, nil).Describe("Gap between children; unset uses the system spacing.")
}

func pinnedField() attr.Field {
	return enum.PinnedViewsField("pinned-views").WithAliases("pinnedViews").
		Describe("Space or comma separated: section-headers, section-footers.")
}

func visibilityField() attr.Field {
	return enum.VisibilityField("visibility", false).
		Describe("automatic, visible or hidden. A hidden stack keeps its place but is not drawn.")
}

// LazyHStackSchema declares the lazy horizontal stack attributes.
var LazyHStackSchema = attr.Schema{
	Name: "lazyhstack",
	Doc:  "Horizontal stack that creates children on demand.",
	Fields: []attr.Field{
		enum.VerticalAlignmentField("alignment"),
		spacingField(),
		pinnedField(),
		visibilityField(),
	},
}

// LazyVStackSchema declares the lazy vertical stack attributes.
var LazyVStackSchema = attr.Schema{
	Name: "lazyvstack",
	Doc:  "Vertical stack that creates children on demand.",
	Fields: []attr.Field{
		enum.HorizontalAlignmentField("alignment"),
		spacingField(),
		pinnedField(),
		visibilityField(),
	},
}

var stackSchema = attr.Schema{Name: "stack", Fields: []attr.Field{spacingField(), visibilityField()}}

// ButtonSchema declares the button attributes.
var ButtonSchema = attr.Schema{
	Name:   "button",
	Fields: []attr.Field{event.Field("phx-click").WithAliases("event")},
}

// Builtins lists the shipped tag definitions.
func Builtins() []Definition {
	return []Definition{
		{Tag: "text", Build: buildText},
		{Tag: "lazyhstack", Schema: LazyHStackSchema, Build: buildLazyHStack},
		{Tag: "lazyvstack", Schema: LazyVStackSchema, Build: buildLazyVStack},
		{Tag: "hstack", Schema: stackSchema, Build: stack(view.AxisHorizontal)},
		{Tag: "vstack", Schema: stackSchema, Build: stack(view.AxisVertical)},
		{Tag: "zstack", Build: stack(view.AxisDepth)},
		{Tag: "button", Schema: ButtonSchema, Build: buildButton},
	}
}

func buildText(ctx Context, _ attr.Record) (view.Node, error) {
	el := ctx.Element()
	parts := make([]string, 0, len(el.Children))
	for _, child := range el.Children {
		if child.Template() != "" {
			continue
		}
		if s := child.TextContent(); s != "" {
			parts = append(parts, s)
		}
	}
	return view.Text(strings.Join(parts, " ")), nil
}

func buildLazyHStack(ctx Context, rec attr.Record) (view.Node, error) {
	children, err := ctx.Children("")
	if err != nil {
		return view.Node{}, err
	}
	alignment, _ := rec.Value("alignment").(enum.VerticalAlignment)
	pinned, _ := rec.Value("pinned-views").(enum.PinnedViews)
	return withVisibility(view.LazyHStack(alignment, rec.OptionalFloat("spacing"), pinned, children), rec), nil
}

func buildLazyVStack(ctx Context, rec attr.Record) (view.Node, error) {
	children, err := ctx.Children("")
	if err != nil {
		return view.Node{}, err
	}
	alignment, _ := rec.Value("alignment").(enum.HorizontalAlignment)
	pinned, _ := rec.Value("pinned-views").(enum.PinnedViews)
	return withVisibility(view.LazyVStack(alignment, rec.OptionalFloat("spacing"), pinned, children), rec), nil
}

func stack(axis view.Axis) BuildFunc {
	return func(ctx Context, rec attr.Record) (view.Node, error) {
		children, err := ctx.Children("")
		if err != nil {
			return view.Node{}, err
		}
		return withVisibility(view.Stack(axis, rec.OptionalFloat("spacing"), children), rec), nil
	}
}

// withVisibility records an explicit visibility on node. Hidden also wraps
// node in a hidden view.
func withVisibility(node view.Node, rec attr.Record) view.Node {
	visibility, _ := rec.Value("visibility").(enum.Visibility)
	if visibility == enum.VisibilityAutomatic {
		return node
	}
	node = node.WithProp("visibility", visibility.String())
	if visibility == enum.VisibilityHidden {
		return view.Hidden(node)
	}
	return node
}

func buildButton(ctx Context, rec attr.Record) (view.Node, error) {
	label, err := ctx.Children("")
	if err != nil {
		return view.Node{}, err
	}
	return view.Button(label, event.FromRecord(rec, "phx-click").Event), nil
}

package modifier

import (
	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/color"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// ShadowSchema declares the shadow arguments. All four are required.
var ShadowSchema = attr.Schema{
	Name: "shadow",
	Doc:  "Adds a drop shadow behind the view.",
	Fields: []attr.Field{
		attr.Required("color", attr.KindColor).Describe("Shadow color: theme token, system name, hex or CSS name."),
		attr.Required("radius", attr.KindFloat).Describe("Blur radius."),
		attr.Required("x", attr.KindFloat).Describe("Horizontal offset."),
		attr.Required("y", attr.KindFloat).Describe("Vertical offset."),
	},
}

// Shadow forwards its values to the toolkit shadow primitive unchanged.
type Shadow struct {
	Color  color.Color
	Radius float64
	X      float64
	Y      float64
}

func newShadow(rec attr.Record, _ Env) (Modifier, error) {
	return Shadow{
		Color:  rec.Color("color"),
		Radius: rec.Float("radius"),
		X:      rec.Float("x"),
		Y:      rec.Float("y"),
	}, nil
}

func (Shadow) Type() string { return ShadowSchema.Name }

func (s Shadow) Apply(v view.Node) view.Node {
	return view.Shadow(v, s.Color, s.Radius, s.X, s.Y)
}

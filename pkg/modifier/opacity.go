package modifier

import (
	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// OpacitySchema declares the opacity argument.
var OpacitySchema = attr.Schema{
	Name: "opacity",
	Doc:  "Sets the view opacity. Values outside [0, 1] pass through unclamped.",
	Fields: []attr.Field{
		attr.Required("opacity", attr.KindFloat),
	},
}

type Opacity struct {
	Value float64
}

func newOpacity(rec attr.Record, _ Env) (Modifier, error) {
	return Opacity{Value: rec.Float("opacity")}, nil
}

func (Opacity) Type() string { return OpacitySchema.Name }

func (o Opacity) Apply(v view.Node) view.Node {
	return view.Opacity(v, o.Value)
}

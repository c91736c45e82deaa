package modifier

import (
	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// HiddenSchema declares the hidden arguments.
var HiddenSchema = attr.Schema{
	Name: "hidden",
	Doc:  "Hides the view while keeping its layout space.",
	Fields: []attr.Field{
		attr.Required("is_active", attr.KindBool).WithAliases("isActive"),
	},
}

// Hidden wraps the view in the hidden form when active and returns it
// unchanged otherwise.
type Hidden struct {
	IsActive bool
}

func newHidden(rec attr.Record, _ Env) (Modifier, error) {
	return Hidden{IsActive: rec.Bool("is_active")}, nil
}

func (Hidden) Type() string { return HiddenSchema.Name }

func (h Hidden) Apply(v view.Node) view.Node {
	if !h.IsActive {
		return v
	}
	return view.Hidden(v)
}

package enum

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-nativeview/pkg/attr"
	"gopkg.in/yaml.v3"
)

// Visibility represents a hidden state.
type Visibility int

const (
	VisibilityAutomatic Visibility = iota
	VisibilityVisible
	VisibilityHidden
)

var visibilityTable = NewTable("Visibility",
	Entry[Visibility]{Token: "automatic", Value: VisibilityAutomatic},
	Entry[Visibility]{Token: "visible", Value: VisibilityVisible},
	Entry[Visibility]{Token: "hidden", Value: VisibilityHidden},
)

// VisibilityTable exposes the shared lookup.
func VisibilityTable() *Table[Visibility] {
	return visibilityTable
}

// ParseVisibility maps a token onto a Visibility.
func ParseVisibility(token string) (Visibility, error) {
	return decodeToken(visibilityTable, token)
}

// VisibilityFromAttribute decodes a single-valued attribute. An absent
// attribute yields attr.MissingFieldError, an unknown token
// attr.BadValueError.
func VisibilityFromAttribute(value string, present bool) (Visibility, error) {
	if !present {
		return VisibilityAutomatic, &attr.MissingFieldError{Modifier: visibilityTable.name}
	}
	return ParseVisibility(value)
}

// VisibilityField declares a visibility schema field.
func VisibilityField(key string, required bool) attr.Field {
	return Field(key, visibilityTable, required, VisibilityAutomatic)
}

func (v Visibility) String() string {
	if token, ok := visibilityTable.Token(v); ok {
		return token
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) {
	token, ok := visibilityTable.Token(v)
	if !ok {
		return nil, fmt.Errorf("enum: invalid Visibility %d", int(v))
	}
	return []byte(token), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(text []byte) error {
	parsed, err := ParseVisibility(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalJSON requires a JSON string.
func (v *Visibility) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return &attr.BadValueError{Modifier: visibilityTable.name, Value: string(data), Err: err}
	}
	return v.UnmarshalText([]byte(token))
}

// UnmarshalYAML requires a scalar node.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &attr.BadValueError{Modifier: visibilityTable.name, Value: node.Value, Err: fmt.Errorf("expected a scalar")}
	}
	return v.UnmarshalText([]byte(node.Value))
}

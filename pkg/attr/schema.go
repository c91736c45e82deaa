package attr

import "strings"

// Kind names the declared type of a field.
type Kind int

const (
	KindAny Kind = iota
	KindBool
	KindFloat
	KindString
	KindColor
	KindEnum
	KindSet
	KindEvent
)

var kindNames = map[Kind]string{
	KindAny:    "any",
	KindBool:   "bool",
	KindFloat:  "float",
	KindString: "string",
	KindColor:  "color",
	KindEnum:   "enum",
	KindSet:    "set",
	KindEvent:  "event",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseFunc converts a raw value for enum, set and event fields.
type ParseFunc func(raw any) (any, error)

// Field declares one key of a schema.
type Field struct {
	Key      string
	Aliases  []string
	Kind     Kind
	Required bool
	// Default is stored in the record when an optional key is absent. A nil
	// default leaves the key unset.
	Default any
	Parse   ParseFunc
	Doc     string
}

// Required declares a required field.
func Required(key string, kind Kind) Field {
	return Field{Key: key, Kind: kind, Required: true}
}

// Optional declares an optional field with a default.
func Optional(key string, kind Kind, def any) Field {
	return Field{Key: key, Kind: kind, Default: def}
}

// WithAliases returns a copy of f that also answers to aliases.
func (f Field) WithAliases(aliases ...string) Field {
	f.Aliases = append(append([]string(nil), f.Aliases...), aliases...)
	return f
}

// WithParse returns a copy of f using fn for conversion.
func (f Field) WithParse(fn ParseFunc) Field {
	f.Parse = fn
	return f
}

// Describe returns a copy of f carrying documentation.
func (f Field) Describe(doc string) Field {
	f.Doc = strings.TrimSpace(doc)
	return f
}

// Schema is an ordered list of fields decoded under one name.
type Schema struct {
	Name   string
	Fields []Field
	Doc    string
}

// NewSchema builds a schema.
func NewSchema(name string, fields ...Field) Schema {
	return Schema{Name: name, Fields: fields}
}

// Field returns the field declared under key.
func (s Schema) Field(key string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Keys lists the primary keys in declaration order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		keys = append(keys, field.Key)
	}
	return keys
}

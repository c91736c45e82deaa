package attr

import "github.com/goliatone/go-nativeview/pkg/color"

// Record holds the converted values of one Decode call. Accessors return the
// zero value for keys that were optional and absent without a default.
type Record struct {
	schema string
	values map[string]any
}

// Schema names the schema that produced the record.
func (r Record) Schema() string {
	return r.schema
}

// Has reports whether key holds a value.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Value returns the raw converted value.
func (r Record) Value(key string) any {
	return r.values[key]
}

func (r Record) Bool(key string) bool {
	v, _ := r.values[key].(bool)
	return v
}

func (r Record) Float(key string) float64 {
	v, _ := r.values[key].(float64)
	return v
}

// OptionalFloat returns nil when the key was absent.
func (r Record) OptionalFloat(key string) *float64 {
	v, ok := r.values[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

func (r Record) String(key string) string {
	v, _ := r.values[key].(string)
	return v
}

func (r Record) Color(key string) color.Color {
	v, _ := r.values[key].(color.Color)
	return v
}

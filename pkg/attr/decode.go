package attr

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-nativeview/pkg/color"
)

var (
	errNotBool   = errors.New("expected a boolean")
	errNotFloat  = errors.New("expected a number")
	errNotFinite = errors.New("expected a finite number")
	errNotString = errors.New("expected a string")
	errNoParser  = errors.New("field declares no parser")
)

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithColors sets the resolver used for KindColor fields.
func WithColors(resolver color.Resolver) DecoderOption {
	return func(d *Decoder) {
		if resolver != nil {
			d.colors = resolver
		}
	}
}

// Decoder interprets schemas against containers. It holds no per-call state
// and is safe for concurrent use when its color resolver is.
type Decoder struct {
	colors color.Resolver
}

// NewDecoder constructs a Decoder. The default color resolver knows system,
// hex and CSS colors but no theme tokens.
func NewDecoder(options ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.colors == nil {
		d.colors = color.NewResolver()
	}
	return d
}

// Colors exposes the configured resolver.
func (d *Decoder) Colors() color.Resolver {
	return d.colors
}

// Decode walks the schema fields in order and converts each one. The first
// failure is returned.
func (d *Decoder) Decode(schema Schema, c Container) (Record, error) {
	rec := Record{schema: schema.Name, values: make(map[string]any, len(schema.Fields))}
	for _, field := range schema.Fields {
		raw, ok := lookup(c, field)
		if !ok {
			if field.Required {
				return Record{}, &MissingFieldError{Modifier: schema.Name, Field: field.Key}
			}
			if field.Default != nil {
				rec.values[field.Key] = field.Default
			}
			continue
		}

		value, err := d.convert(field, raw)
		if err != nil {
			return Record{}, &BadValueError{Modifier: schema.Name, Field: field.Key, Value: raw, Err: err}
		}
		rec.values[field.Key] = value
	}
	return rec, nil
}

// Value converts a single raw value under field without a container. It is
// the entry point for single-value attributes such as visibility.
func (d *Decoder) Value(name string, field Field, raw any, present bool) (any, error) {
	if !present || raw == nil {
		return nil, &MissingFieldError{Modifier: name, Field: field.Key}
	}
	value, err := d.convert(field, raw)
	if err != nil {
		return nil, &BadValueError{Modifier: name, Field: field.Key, Value: raw, Err: err}
	}
	return value, nil
}

func lookup(c Container, field Field) (any, bool) {
	if c == nil {
		return nil, false
	}
	keys := append([]string{field.Key}, field.Aliases...)
	for _, key := range keys {
		raw, ok := c.Lookup(key)
		if !ok || raw == nil {
			continue
		}
		return raw, true
	}
	return nil, false
}

func (d *Decoder) convert(field Field, raw any) (any, error) {
	if field.Parse != nil {
		return field.Parse(raw)
	}
	switch field.Kind {
	case KindBool:
		return ToBool(raw)
	case KindFloat:
		return ToFloat(raw)
	case KindString:
		return ToString(raw)
	case KindColor:
		token, err := ToString(raw)
		if err != nil {
			return nil, err
		}
		return d.colors.Resolve(token)
	case KindEnum, KindSet, KindEvent:
		return nil, errNoParser
	default:
		return raw, nil
	}
}

// ToBool accepts booleans and the exact strings "true" and "false".
func ToBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, errNotBool
}

// ToFloat accepts Go numeric types, json.Number and numeric strings. NaN and
// infinities are rejected.
func ToFloat(raw any) (float64, error) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		return parseFloat(string(v))
	case string:
		return parseFloat(v)
	default:
		return 0, errNotFloat
	}
	return finite(f)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errNotFloat
	}
	return finite(f)
}

func finite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

// ToString accepts strings only.
func ToString(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w, got %T", errNotString, raw)
	}
	return s, nil
}

package enum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-nativeview/pkg/attr"
)

// ErrUnknownToken is wrapped by every token lookup failure.
var ErrUnknownToken = errors.New("enum: unknown token")

// Entry pairs a token with its value.
type Entry[T comparable] struct {
	Token string
	Value T
}

// Table is an immutable token lookup.
type Table[T comparable] struct {
	name    string
	tokens  []string
	values  map[string]T
	reverse map[T]string
}

// NewTable builds a table. Duplicate tokens panic: tables are declared at
// package level and a duplicate is a programming error.
func NewTable[T comparable](name string, entries ...Entry[T]) *Table[T] {
	t := &Table[T]{
		name:    name,
		tokens:  make([]string, 0, len(entries)),
		values:  make(map[string]T, len(entries)),
		reverse: make(map[T]string, len(entries)),
	}
	for _, entry := range entries {
		if _, exists := t.values[entry.Token]; exists {
			panic(fmt.Sprintf("enum: %s: duplicate token %q", name, entry.Token))
		}
		t.tokens = append(t.tokens, entry.Token)
		t.values[entry.Token] = entry.Value
		if _, exists := t.reverse[entry.Value]; !exists {
			t.reverse[entry.Value] = entry.Token
		}
	}
	return t
}

// Name returns the enumeration name used in errors.
func (t *Table[T]) Name() string {
	return t.name
}

// Lookup returns the value for token.
func (t *Table[T]) Lookup(token string) (T, bool) {
	v, ok := t.values[token]
	return v, ok
}

// Parse returns the value for token or an error wrapping ErrUnknownToken.
func (t *Table[T]) Parse(token string) (T, error) {
	v, ok := t.values[token]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w %q for %s (want one of %s)", ErrUnknownToken, token, t.name, strings.Join(t.tokens, ", "))
	}
	return v, nil
}

// Token returns the canonical token for v.
func (t *Table[T]) Token(v T) (string, bool) {
	token, ok := t.reverse[v]
	return token, ok
}

// Tokens lists the accepted tokens in declaration order.
func (t *Table[T]) Tokens() []string {
	return append([]string(nil), t.tokens...)
}

// ParseAny accepts a raw attribute value, which must be a string.
func (t *Table[T]) ParseAny(raw any) (any, error) {
	token, err := attr.ToString(raw)
	if err != nil {
		return nil, err
	}
	return t.Parse(token)
}

// Field declares a schema field backed by the table.
func Field[T comparable](key string, table *Table[T], required bool, def T) attr.Field {
	field := attr.Field{Key: key, Kind: attr.KindEnum, Required: required, Parse: table.ParseAny}
	if !required {
		field.Default = def
	}
	return field
}

// decodeToken is shared by the text, JSON and YAML entry points. Failures
// surface as attr.BadValueError so callers see one error shape regardless
// of where the token came from.
func decodeToken[T comparable](table *Table[T], token string) (T, error) {
	v, err := table.Parse(token)
	if err != nil {
		var zero T
		return zero, &attr.BadValueError{Modifier: table.name, Value: token, Err: err}
	}
	return v, nil
}

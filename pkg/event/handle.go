// Package event carries server-bound events out of the view layer.
//
// A Handle is the decoded reference to a server event as it appears in
// modifier arguments. A Dispatcher delivers a handle plus payload to the
// transport; the package ships a no-op, an in-memory recorder, and a NATS
// publisher.
package event

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-nativeview/pkg/attr"
)

// DefaultType is the event type used when a handle does not name one.
const DefaultType = "click"

// Handle references a server event.
type Handle struct {
	Event  string `json:"event"`
	Type   string `json:"type"`
	Target *int   `json:"target,omitempty"`
}

// IsZero reports whether h references no event.
func (h Handle) IsZero() bool {
	return h.Event == ""
}

// Named builds a handle of the default type.
func Named(name string) Handle {
	return Handle{Event: name, Type: DefaultType}
}

// Change builds the handle used for change-tracked bindings.
func Change(name string) Handle {
	return Handle{Event: name, Type: "change"}
}

var errEmptyEvent = errors.New("event name is required")

// ParseHandle accepts an event name or an object with "event", optional
// "type" and optional integer "target".
func ParseHandle(raw any) (Handle, error) {
	switch v := raw.(type) {
	case string:
		name := strings.TrimSpace(v)
		if name == "" {
			return Handle{}, errEmptyEvent
		}
		return Named(name), nil
	case map[string]any:
		name, err := attr.ToString(v["event"])
		if err != nil {
			return Handle{}, fmt.Errorf("event: %w", err)
		}
		h := Named(strings.TrimSpace(name))
		if h.Event == "" {
			return Handle{}, errEmptyEvent
		}
		if rawType, ok := v["type"]; ok && rawType != nil {
			typ, err := attr.ToString(rawType)
			if err != nil {
				return Handle{}, fmt.Errorf("type: %w", err)
			}
			if typ = strings.TrimSpace(typ); typ != "" {
				h.Type = typ
			}
		}
		if rawTarget, ok := v["target"]; ok && rawTarget != nil {
			f, err := attr.ToFloat(rawTarget)
			if err != nil || f != float64(int(f)) {
				return Handle{}, fmt.Errorf("target: expected an integer")
			}
			target := int(f)
			h.Target = &target
		}
		return h, nil
	}
	return Handle{}, fmt.Errorf("expected an event name or object, got %T", raw)
}

// Field declares an optional event-handle schema field.
func Field(key string) attr.Field {
	return attr.Field{
		Key:  key,
		Kind: attr.KindEvent,
		Parse: func(raw any) (any, error) {
			return ParseHandle(raw)
		},
	}
}

// FromRecord reads a handle decoded through Field; absent fields yield the
// zero handle.
func FromRecord(rec attr.Record, key string) Handle {
	h, _ := rec.Value(key).(Handle)
	return h
}

package attr

import "strings"

// Container is a keyed source of raw attribute values. Values are either
// strings (markup attributes) or structured values as produced by JSON or
// YAML decoding.
type Container interface {
	Lookup(key string) (any, bool)
}

// Map is a structured container.
type Map map[string]any

// Lookup implements Container.
func (m Map) Lookup(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// Strings adapts plain markup attributes. The markup parser lower-cases
// attribute names, so lookups fall back to the lower-cased key.
type Strings map[string]string

// Lookup implements Container.
func (s Strings) Lookup(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	if !ok {
		v, ok = s[strings.ToLower(key)]
	}
	if !ok {
		return nil, false
	}
	return v, true
}

// ContainerFunc adapts a lookup function into a Container.
type ContainerFunc func(key string) (any, bool)

// Lookup delegates to the underlying function.
func (fn ContainerFunc) Lookup(key string) (any, bool) {
	return fn(key)
}

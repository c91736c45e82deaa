package markup

import (
	"strings"

	"github.com/goliatone/go-nativeview/pkg/attr"
)

// Bind wraps c so that string values of the form "@name" resolve against
// assigns. "@@text" escapes to the literal "@text". References to unknown
// assigns read as absent.
func Bind(c attr.Container, assigns map[string]any) attr.Container {
	if c == nil {
		return nil
	}
	return attr.ContainerFunc(func(key string) (any, bool) {
		raw, ok := c.Lookup(key)
		if !ok {
			return nil, false
		}
		return Interpolate(raw, assigns)
	})
}

// Interpolate resolves one raw value.
func Interpolate(raw any, assigns map[string]any) (any, bool) {
	s, ok := raw.(string)
	if !ok || !strings.HasPrefix(s, "@") {
		return raw, true
	}
	if strings.HasPrefix(s, "@@") {
		return s[1:], true
	}
	v, ok := assigns[s[1:]]
	return v, ok
}

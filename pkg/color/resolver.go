package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when no lookup stage recognises a token.
var ErrUnknownColor = errors.New("color: unknown color")

// Resolver converts a color token into a Color.
type Resolver interface {
	Resolve(token string) (Color, error)
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(token string) (Color, error)

// Resolve delegates to the underlying function.
func (fn ResolverFunc) Resolve(token string) (Color, error) {
	return fn(token)
}

// system mirrors the named colors of the native toolkit. Values follow the
// light appearance.
var system = map[string]Color{
	"clear":     {},
	"black":     RGB(0, 0, 0),
	"white":     RGB(255, 255, 255),
	"gray":      RGB(142, 142, 147),
	"red":       RGB(255, 59, 48),
	"orange":    RGB(255, 149, 0),
	"yellow":    RGB(255, 204, 0),
	"green":     RGB(52, 199, 89),
	"mint":      RGB(0, 199, 190),
	"teal":      RGB(48, 176, 199),
	"cyan":      RGB(50, 173, 230),
	"blue":      RGB(0, 122, 255),
	"indigo":    RGB(88, 86, 214),
	"purple":    RGB(175, 82, 222),
	"pink":      RGB(255, 45, 85),
	"brown":     RGB(162, 132, 94),
	"primary":   RGB(0, 0, 0),
	"secondary": {R: 60, G: 60, B: 67, A: 153},
}

// Option configures a Palette.
type Option func(*Palette)

// WithTokens registers theme tokens. Token values are themselves resolved
// through the non-token stages, so a token may point at a hex literal or a
// color name but never at another token.
func WithTokens(tokens map[string]string) Option {
	return func(p *Palette) {
		for name, value := range tokens {
			name = normalizeToken(name)
			if name == "" {
				continue
			}
			p.tokens[name] = strings.TrimSpace(value)
		}
	}
}

// WithoutSystemColors disables the native named colors so CSS names win.
func WithoutSystemColors() Option {
	return func(p *Palette) {
		p.system = false
	}
}

// Palette is the default Resolver.
type Palette struct {
	mu     sync.RWMutex
	tokens map[string]string
	system bool
}

// NewResolver constructs a Palette applying the provided options.
func NewResolver(options ...Option) *Palette {
	p := &Palette{
		tokens: make(map[string]string),
		system: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// SetToken adds or replaces a theme token.
func (p *Palette) SetToken(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens[normalizeToken(name)] = strings.TrimSpace(value)
}

// Resolve implements Resolver.
func (p *Palette) Resolve(token string) (Color, error) {
	name := normalizeToken(token)
	if name == "" {
		return Color{}, fmt.Errorf("%w: empty token", ErrUnknownColor)
	}

	p.mu.RLock()
	value, isToken := p.tokens[name]
	p.mu.RUnlock()
	if isToken {
		resolved, err := p.resolveLiteral(value)
		if err != nil {
			return Color{}, fmt.Errorf("color: theme token %q: %w", name, err)
		}
		return resolved, nil
	}
	return p.resolveLiteral(name)
}

func (p *Palette) resolveLiteral(name string) (Color, error) {
	name = normalizeToken(name)
	if p.system {
		if c, ok := system[name]; ok {
			return c, nil
		}
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return FromRGBA(c), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// parseHex accepts #rgb, #rrggbb and #rrggbbaa.
func parseHex(raw string) (Color, error) {
	alpha := uint8(0xFF)
	literal := raw
	if len(raw) == 9 {
		a, err := strconv.ParseUint(raw[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, raw)
		}
		alpha = uint8(a)
		literal = raw[:7]
	}
	parsed, err := colorful.Hex(literal)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, raw)
	}
	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

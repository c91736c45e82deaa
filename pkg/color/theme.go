package color

import (
	"fmt"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// TokensFromSelection flattens the manifest tokens of a go-theme selection,
// letting the selected variant override the base manifest.
func TokensFromSelection(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	out := make(map[string]string, len(selection.Manifest.Tokens))
	for name, value := range selection.Manifest.Tokens {
		out[name] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for name, value := range variant.Tokens {
			out[name] = value
		}
	}
	return out
}

// WithSelection registers the tokens of a go-theme selection.
func WithSelection(selection *theme.Selection) Option {
	return WithTokens(TokensFromSelection(selection))
}

// WithThemeSelector resolves the named theme/variant through selector and
// registers its tokens. Selection failures leave the palette untouched; use
// Select directly when the error matters.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(p *Palette) {
		if selector == nil {
			return
		}
		selection, err := selector.Select(name, variant)
		if err != nil {
			return
		}
		WithSelection(selection)(p)
	}
}

// ManifestSelector is a minimal theme.ThemeSelector over in-memory manifests.
type ManifestSelector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

// NewManifestSelector builds a selector that falls back to defaultTheme and
// defaultVariant when Select receives empty names.
func NewManifestSelector(defaultTheme, defaultVariant string) *ManifestSelector {
	return &ManifestSelector{
		manifests:      make(map[string]*theme.Manifest),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
}

// Register adds a manifest keyed by its Name.
func (s *ManifestSelector) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return fmt.Errorf("color: manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return fmt.Errorf("color: manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("color: theme %q already registered", name)
	}
	s.manifests[name] = manifest
	return nil
}

// Select implements theme.ThemeSelector.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if strings.TrimSpace(name) == "" {
		name = s.defaultTheme
	}
	if strings.TrimSpace(variant) == "" {
		variant = s.defaultVariant
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("color: theme %q not found", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("color: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

package color

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestPalette_ResolveOrder(t *testing.T) {
	p := NewResolver(WithTokens(map[string]string{
		"brand": "#123456",
		"gray":  "#010203",
	}))

	cases := []struct {
		token string
		want  Color
	}{
		{token: "brand", want: Color{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}},
		{token: ":brand", want: Color{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}},
		{token: "gray", want: Color{R: 1, G: 2, B: 3, A: 0xFF}},
		{token: "red", want: system["red"]},
		{token: "#f00", want: RGB(255, 0, 0)},
		{token: "#00ff0080", want: Color{G: 255, A: 0x80}},
		{token: "cornflowerblue", want: RGB(100, 149, 237)},
		{token: "clear", want: Color{}},
	}
	for _, tc := range cases {
		got, err := p.Resolve(tc.token)
		if err != nil {
			t.Fatalf("resolve %q: %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("resolve %q: want %s, got %s", tc.token, tc.want, got)
		}
	}
}

func TestPalette_UnknownColor(t *testing.T) {
	p := NewResolver()
	for _, token := range []string{"", "not-a-color", "#zzzzzz"} {
		if _, err := p.Resolve(token); !errors.Is(err, ErrUnknownColor) {
			t.Fatalf("resolve %q: expected ErrUnknownColor, got %v", token, err)
		}
	}
}

func TestPalette_WithoutSystemColors(t *testing.T) {
	p := NewResolver(WithoutSystemColors())
	got, err := p.Resolve("gray")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != RGB(128, 128, 128) {
		t.Fatalf("expected css gray, got %s", got)
	}
}

func TestManifestSelector_VariantTokensOverride(t *testing.T) {
	selector := NewManifestSelector("acme", "")
	err := selector.Register(&theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456", "accent": "orange"},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#654321"}},
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	p := NewResolver(WithThemeSelector(selector, "", "dark"))
	brand, err := p.Resolve("brand")
	if err != nil {
		t.Fatalf("resolve brand: %v", err)
	}
	if brand.Hex() != "#654321ff" {
		t.Fatalf("variant token not applied: %s", brand)
	}
	accent, err := p.Resolve("accent")
	if err != nil {
		t.Fatalf("resolve accent: %v", err)
	}
	if accent != system["orange"] {
		t.Fatalf("base token not applied: %s", accent)
	}

	if _, err := selector.Select("acme", "sepia"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}

func TestColor_MarshalText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#0a0b0c")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	text, _ := c.MarshalText()
	if string(text) != "#0a0b0cff" {
		t.Fatalf("unexpected text: %s", text)
	}
}

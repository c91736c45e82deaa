package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nativeview/pkg/markup"
)

// Transformer mutates a Document before its view is built. Implementations can
// inject assigns, rewrite markup, or perform arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, doc *markup.Document) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *markup.Document) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, doc *markup.Document) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, doc)
}

// PresetTransformer applies declarative overrides loaded from a YAML or JSON
// document:
//
//	defaults:            # only set when the document lacks the assign
//	  title: Untitled
//	assigns:             # always override
//	  show: true
//	templates:           # appended to the markup
//	  - <text template="extra">More</text>
type PresetTransformer struct {
	preset presetDocument
}

type presetDocument struct {
	Defaults  map[string]any `yaml:"defaults" json:"defaults"`
	Assigns   map[string]any `yaml:"assigns" json:"assigns"`
	Templates []string       `yaml:"templates" json:"templates"`
}

// NewPresetTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var preset presetDocument
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	for i, tpl := range preset.Templates {
		if _, err := markup.ParseString(tpl); err != nil {
			return nil, fmt.Errorf("preset transformer: template %d: %w", i, err)
		}
	}
	return &PresetTransformer{preset: preset}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the preset onto doc.
func (t *PresetTransformer) Transform(ctx context.Context, doc *markup.Document) error {
	if doc == nil {
		return errors.New("preset transformer: document is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	assigns := make(map[string]any, len(doc.Assigns)+len(t.preset.Defaults)+len(t.preset.Assigns))
	for key, value := range t.preset.Defaults {
		assigns[key] = value
	}
	maps.Copy(assigns, doc.Assigns)
	maps.Copy(assigns, t.preset.Assigns)
	doc.Assigns = assigns

	if len(t.preset.Templates) > 0 {
		doc.Markup = strings.Join(append([]string{doc.Markup}, t.preset.Templates...), "\n")
	}
	return nil
}

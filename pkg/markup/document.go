package markup

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document pairs markup with the assigns it interpolates.
type Document struct {
	Markup  string         `json:"markup" yaml:"markup"`
	Assigns map[string]any `json:"assigns,omitempty" yaml:"assigns,omitempty"`
	Source  string         `json:"-" yaml:"-"`
}

// Elements parses the document markup.
func (d Document) Elements() ([]*Element, error) {
	elements, err := ParseString(d.Markup)
	if err != nil {
		if d.Source != "" {
			return nil, fmt.Errorf("%s: %w", d.Source, err)
		}
		return nil, err
	}
	return elements, nil
}

// WithAssigns returns a copy with overrides merged over the assigns.
func (d Document) WithAssigns(overrides map[string]any) Document {
	if len(overrides) == 0 {
		return d
	}
	merged := make(map[string]any, len(d.Assigns)+len(overrides))
	for k, v := range d.Assigns {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	d.Assigns = merged
	return d
}

// LoadDocument decodes JSON first and falls back to YAML.
func LoadDocument(data []byte, source string) (Document, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return Document{}, fmt.Errorf("markup: parse %s: %w", source, err)
	}
	if strings.TrimSpace(doc.Markup) == "" {
		return Document{}, fmt.Errorf("markup: %s: markup is required", source)
	}
	doc.Source = source
	return doc, nil
}

func parseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	var yamlDoc Document
	if err := yaml.Unmarshal(data, &yamlDoc); err != nil {
		return Document{}, err
	}
	return yamlDoc, nil
}

// LoadDocumentFS reads name from fsys. Files with an .html extension hold
// bare markup with no assigns.
func LoadDocumentFS(fsys fs.FS, name string) (Document, error) {
	if fsys == nil {
		return Document{}, fmt.Errorf("markup: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("markup: read %s: %w", name, err)
	}
	if ext := strings.ToLower(path.Ext(name)); ext == ".html" || ext == ".htm" {
		return Document{Markup: string(data), Source: name}, nil
	}
	return LoadDocument(data, name)
}

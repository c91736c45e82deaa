// Package html renders view descriptions as a static HTML preview page using
// pongo2 templates. Text content is sanitised with bluemonday.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-nativeview/pkg/color"
	"github.com/goliatone/go-nativeview/pkg/render"
	rendertemplate "github.com/goliatone/go-nativeview/pkg/render/template"
	"github.com/goliatone/go-nativeview/pkg/render/template/pongo"
	"github.com/goliatone/go-nativeview/pkg/view"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       *string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the embedded stylesheet. An empty string omits it.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithName("nativeview-html"),
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}
	return &Renderer{templates: renderer, stylesheet: stylesheet}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, node view.Node, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	body, err := r.fragment(ctx, node)
	if err != nil {
		return nil, err
	}
	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"title":      options.Header(),
		"session":    options.Session,
		"stylesheet": r.stylesheet,
		"body":       body,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render page: %w", err)
	}
	return []byte(result), nil
}

// Fragment renders node without the page chrome.
func (r *Renderer) Fragment(ctx context.Context, node view.Node) (string, error) {
	return r.fragment(ctx, node)
}

func (r *Renderer) fragment(ctx context.Context, node view.Node) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	children, err := r.fragments(ctx, node.Children)
	if err != nil {
		return "", err
	}
	content, err := r.fragments(ctx, node.Content)
	if err != nil {
		return "", err
	}
	presented, _ := node.Props["presented"].(bool)

	out, err := r.templates.RenderTemplate("templates/node.tmpl", map[string]any{
		"kind":      string(node.Kind),
		"text":      sanitizeText(node.Text),
		"attrs":     dataAttributes(node),
		"style":     inlineStyle(node),
		"presented": presented,
		"children":  children,
		"content":   content,
	})
	if err != nil {
		return "", fmt.Errorf("html renderer: render %s: %w", node.Kind, err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func (r *Renderer) fragments(ctx context.Context, nodes []view.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		out, err := r.fragment(ctx, n)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips every tag and escapes what remains.
func sanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy.Sanitize(raw)
}

type attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func dataAttributes(node view.Node) []attribute {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]attribute, 0, len(keys))
	for _, key := range keys {
		out = append(out, attribute{Name: kebab(key), Value: formatValue(node.Props[key])})
	}
	return out
}

func inlineStyle(node view.Node) string {
	props := node.Props
	var rules []string
	switch node.Kind {
	case view.KindOpacity:
		rules = append(rules, "opacity: "+formatValue(props["opacity"]))
	case view.KindHidden:
		rules = append(rules, "visibility: hidden")
	case view.KindShadow:
		hex, _ := props["color"].(string)
		c, err := color.NewResolver(color.WithoutSystemColors()).Resolve(hex)
		if err == nil {
			rules = append(rules, fmt.Sprintf("filter: drop-shadow(%spx %spx %spx rgba(%d, %d, %d, %s))",
				formatValue(props["x"]), formatValue(props["y"]), formatValue(props["radius"]),
				c.R, c.G, c.B, strconv.FormatFloat(float64(c.A)/255, 'f', 2, 64)))
		}
	case view.KindStack:
		switch props["axis"] {
		case string(view.AxisVertical):
			rules = append(rules, "flex-direction: column")
		case string(view.AxisDepth):
			rules = append(rules, "display: grid")
		}
	}
	if spacing, ok := props["spacing"]; ok {
		rules = append(rules, "gap: "+formatValue(spacing)+"px")
	}
	return strings.Join(rules, "; ")
}

func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case []string:
		return strings.Join(value, " ")
	default:
		return fmt.Sprint(value)
	}
}

func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

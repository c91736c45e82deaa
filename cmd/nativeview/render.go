package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/orchestrator"
	"github.com/goliatone/go-nativeview/pkg/render"
	"github.com/goliatone/go-nativeview/pkg/renderers/tui"
)

type renderFlags struct {
	renderer    string
	output      string
	title       string
	preset      string
	set         []string
	interactive bool
}

func newRenderCmd(c *cli) *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Build a document and render it",
		Long: `Build a markup document (YAML, JSON or bare .html markup) into a native
view description and render it with the named renderer (json, tree, html, tui).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.render(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.renderer, "renderer", "r", "", "renderer to use (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&flags.title, "title", "", "title for renderers that show one")
	cmd.Flags().StringVar(&flags.preset, "preset", "", "YAML or JSON preset applied before building")
	cmd.Flags().StringArrayVar(&flags.set, "set", nil, "override an assign (key=value, value parsed as YAML)")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "prompt for assign values before building")
	return cmd
}

func (c *cli) render(cmd *cobra.Command, path string, flags renderFlags) error {
	ctx := cmd.Context()
	registry, err := c.registry()
	if err != nil {
		return err
	}
	orch, err := c.orchestrator(registry)
	if err != nil {
		return err
	}

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	assigns, err := parseAssigns(flags.set)
	if err != nil {
		return err
	}
	doc = doc.WithAssigns(assigns)

	if flags.preset != "" {
		preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(flags.preset)), filepath.Base(flags.preset))
		if err != nil {
			return err
		}
		if err := preset.Transform(ctx, &doc); err != nil {
			return err
		}
	}

	if flags.interactive {
		prompted, err := tui.PromptAssigns(ctx, tui.NewSurveyDriver(), doc.Assigns)
		if err != nil {
			return err
		}
		doc.Assigns = prompted
	}

	title := flags.title
	if title == "" {
		title = c.cfg.Render.Title
	}
	output, err := orch.Generate(ctx, orchestrator.Request{
		Document:      &doc,
		Renderer:      flags.renderer,
		RenderOptions: render.RenderOptions{Title: title},
	})
	if err != nil {
		return err
	}
	c.logger.Debug("rendered", "source", doc.Source, "renderer", flags.renderer, "bytes", len(output))

	if flags.output == "" {
		_, err := cmd.OutOrStdout().Write(output)
		return err
	}
	if err := os.WriteFile(flags.output, output, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "View written to %s\n", flags.output)
	return nil
}

func loadDocument(path string) (markup.Document, error) {
	return markup.LoadDocumentFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// parseAssigns reads key=value pairs. Values are YAML scalars, so "true"
// is a bool and "8" a number.
func parseAssigns(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assign %q: want key=value", pair)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("assign %s: %w", key, err)
		}
		if n, ok := value.(int); ok {
			value = float64(n)
		}
		out[key] = value
	}
	return out, nil
}

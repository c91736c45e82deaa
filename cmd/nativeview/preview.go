package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/orchestrator"
	"github.com/goliatone/go-nativeview/pkg/renderers/tree"
	"github.com/goliatone/go-nativeview/pkg/view"
)

func newPreviewCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <document>",
		Short: "Interactively preview a document in the terminal",
		Long: `Preview renders the view tree and rebuilds it as assigns change.

Keys: d dismiss the presented sheet, tab select a bool assign,
space or p toggle it, r rebuild, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := c.registry()
			if err != nil {
				return err
			}
			orch, err := c.orchestrator(registry)
			if err != nil {
				return err
			}
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			m := newPreviewModel(cmd.Context(), orch, doc, tree.New())
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

type previewModel struct {
	ctx      context.Context
	orch     *orchestrator.Orchestrator
	doc      markup.Document
	renderer *tree.Renderer

	boolKeys []string
	cursor   int

	node   view.Node
	status string
	err    error
}

func newPreviewModel(ctx context.Context, orch *orchestrator.Orchestrator, doc markup.Document, renderer *tree.Renderer) *previewModel {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &previewModel{ctx: ctx, orch: orch, doc: doc, renderer: renderer}
	for key, value := range doc.Assigns {
		if _, ok := value.(bool); ok {
			m.boolKeys = append(m.boolKeys, key)
		}
	}
	sort.Strings(m.boolKeys)
	m.rebuild()
	return m
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "d":
		m.dismiss()
	case "tab":
		if len(m.boolKeys) > 0 {
			m.cursor = (m.cursor + 1) % len(m.boolKeys)
		}
	case " ", "p":
		m.toggle()
	case "r":
		m.rebuild()
	}
	return m, nil
}

func (m *previewModel) View() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderer.String(m.node))
	}
	b.WriteString("\n")
	if len(m.boolKeys) > 0 {
		parts := make([]string, 0, len(m.boolKeys))
		for i, key := range m.boolKeys {
			item := fmt.Sprintf("%s=%v", key, m.doc.Assigns[key])
			if i == m.cursor {
				item = cursorStyle.Render(item)
			}
			parts = append(parts, item)
		}
		b.WriteString("assigns: " + strings.Join(parts, "  ") + "\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("d dismiss • tab next • space toggle • r rebuild • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *previewModel) rebuild() {
	node, _, err := m.orch.Build(m.ctx, orchestrator.Request{Document: &m.doc})
	if err != nil {
		m.err = err
		return
	}
	m.node, m.err = node, nil
}

func (m *previewModel) dismiss() {
	sheet, ok := presentedSheet(m.node)
	if !ok {
		m.status = "no sheet is presented"
		return
	}
	if err := sheet.Invoke(m.ctx, view.ActionDismiss); err != nil {
		m.err = err
		return
	}
	m.status = "sheet dismissed"
	m.rebuild()
}

func (m *previewModel) toggle() {
	if len(m.boolKeys) == 0 {
		m.status = "no bool assigns to toggle"
		return
	}
	key := m.boolKeys[m.cursor]
	current, _ := m.doc.Assigns[key].(bool)
	m.doc = m.doc.WithAssigns(map[string]any{key: !current})
	m.status = fmt.Sprintf("%s set to %v", key, !current)
	m.rebuild()
}

func presentedSheet(node view.Node) (view.Node, bool) {
	var found view.Node
	var ok bool
	node.Walk(func(n view.Node) bool {
		if n.Kind != view.KindSheet {
			return true
		}
		if presented, _ := n.Prop("presented"); presented == true {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

package tui

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-nativeview/pkg/view"
)

// Interaction records one prompt the renderer offered.
type Interaction struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Action   string `json:"action"`
	Label    string `json:"label,omitempty"`
	Accepted bool   `json:"accepted"`
}

// State collects interactions in prompt order.
type State struct {
	interactions []Interaction
}

// NewState returns an empty state.
func NewState() *State {
	return &State{}
}

// Record appends an interaction.
func (s *State) Record(i Interaction) {
	s.interactions = append(s.interactions, i)
}

// Interactions returns a copy of the log.
func (s *State) Interactions() []Interaction {
	return append([]Interaction(nil), s.interactions...)
}

// Accepted counts the accepted interactions.
func (s *State) Accepted() int {
	n := 0
	for _, i := range s.interactions {
		if i.Accepted {
			n++
		}
	}
	return n
}

// target is a node offering an interaction, addressed by child indexes.
type target struct {
	path string
	node view.Node
}

// collectTargets walks n depth-first, children before sheet content, and
// returns every presented sheet and every button bound to an event.
func collectTargets(n view.Node, path string, out []target) []target {
	switch n.Kind {
	case view.KindSheet:
		if presented, _ := n.Props["presented"].(bool); presented {
			out = append(out, target{path: path, node: n})
		}
	case view.KindButton:
		if ev, _ := n.Props["event"].(string); ev != "" {
			out = append(out, target{path: path, node: n})
		}
	}
	for i, child := range n.Children {
		out = collectTargets(child, path+"."+strconv.Itoa(i), out)
	}
	for i, child := range n.Content {
		out = collectTargets(child, path+".content."+strconv.Itoa(i), out)
	}
	return out
}

func label(n view.Node) string {
	var parts []string
	n.Walk(func(c view.Node) bool {
		if c.Kind == view.KindText && c.Text != "" {
			parts = append(parts, c.Text)
		}
		return true
	})
	return strings.Join(parts, " ")
}

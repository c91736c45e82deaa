package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/color"
	"github.com/goliatone/go-nativeview/pkg/event"
	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/orchestrator"
	"github.com/goliatone/go-nativeview/pkg/render"
	"github.com/goliatone/go-nativeview/pkg/renderers/jsonview"
	"github.com/goliatone/go-nativeview/pkg/session"
	"github.com/goliatone/go-nativeview/pkg/testsupport"
	"github.com/goliatone/go-nativeview/pkg/view"
)

func TestOrchestrator_GenerateDefaultRenderer(t *testing.T) {
	orch := orchestrator.New()

	output, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Path: filepath.Join("testdata", "sheet.yaml"),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	golden := filepath.Join("testdata", "sheet_json.golden.json")
	if testsupport.WriteMaybeGolden(t, golden, output) {
		return
	}
	var want, got any
	if err := json.Unmarshal(testsupport.MustReadGolden(t, golden), &want); err != nil {
		t.Fatalf("decode golden: %v", err)
	}
	if err := json.Unmarshal(output, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_NamedRenderers(t *testing.T) {
	orch := orchestrator.New()
	ctx := testsupport.Context()

	for _, name := range []string{"json", "tree", "html"} {
		t.Run(name, func(t *testing.T) {
			output, err := orch.Generate(ctx, orchestrator.Request{
				Path:     filepath.Join("testdata", "sheet.yaml"),
				Renderer: name,
			})
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if !strings.Contains(string(output), "Sheet body") {
				t.Fatalf("%s output missing sheet content:\n%s", name, output)
			}
		})
	}

	if _, err := orch.Generate(ctx, orchestrator.Request{
		Path:     filepath.Join("testdata", "sheet.yaml"),
		Renderer: "swiftui",
	}); err == nil || !strings.Contains(err.Error(), "swiftui") {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestOrchestrator_DefaultRendererFallback(t *testing.T) {
	registry := render.NewRegistry(jsonview.New(jsonview.WithIndent("")))
	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("missing"),
	)

	doc := markup.Document{Markup: `<text>hi</text>`}
	output, err := orch.Generate(testsupport.Context(), orchestrator.Request{Document: &doc})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(output) != `{"kind":"text","text":"hi"}` {
		t.Fatalf("unexpected output %s", output)
	}
}

func TestOrchestrator_FSAndAssignOverrides(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "sheet.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	fsys := fstest.MapFS{"views/sheet.yaml": {Data: data}}
	orch := orchestrator.New()

	node, _, err := orch.Build(testsupport.Context(), orchestrator.Request{
		FS:      fsys,
		Path:    "views/sheet.yaml",
		Assigns: map[string]any{"show": false},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	sheet, ok := node.Find(view.KindSheet)
	if !ok {
		t.Fatalf("sheet missing from %s", view.Describe(node))
	}
	if len(sheet.Content) != 0 {
		t.Fatalf("dismissed sheet should have no content, got %+v", sheet.Content)
	}
}

func TestOrchestrator_Errors(t *testing.T) {
	orch := orchestrator.New()
	ctx := testsupport.Context()

	if _, err := orch.Generate(ctx, orchestrator.Request{}); err == nil {
		t.Fatalf("expected error for empty request")
	}

	_, err := orch.Generate(ctx, orchestrator.Request{Path: filepath.Join("testdata", "missing.yaml")})
	if err == nil || !strings.Contains(err.Error(), "orchestrator: load document") {
		t.Fatalf("expected load error, got %v", err)
	}

	doc := markup.Document{Markup: `<text modifiers='[{"type":"shadow","radius":2,"x":0,"y":1}]'>x</text>`}
	_, err = orch.Generate(ctx, orchestrator.Request{Document: &doc})
	if err == nil || !strings.Contains(err.Error(), "orchestrator: build view") {
		t.Fatalf("expected build error, got %v", err)
	}

	infinite := markup.Document{Markup: `<text modifiers='[{"type":"opacity","opacity":"Inf"}]'>x</text>`}
	out, err := orch.Generate(ctx, orchestrator.Request{Document: &infinite, Renderer: "json"})
	if !errors.Is(err, attr.ErrBadValue) {
		t.Fatalf("expected bad opacity, got %v (%s)", err, out)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := orch.Generate(cancelled, orchestrator.Request{Document: &doc}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestOrchestrator_AppliesTransformer(t *testing.T) {
	called := false
	transformer := orchestrator.TransformerFunc(func(ctx context.Context, doc *markup.Document) error {
		called = true
		doc.Markup = `<text>rewritten</text>`
		return nil
	})
	orch := orchestrator.New(orchestrator.WithTransformer(transformer))

	node, _, err := orch.Build(testsupport.Context(), orchestrator.Request{
		Path: filepath.Join("testdata", "sheet.yaml"),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !called {
		t.Fatalf("expected transformer to be invoked")
	}
	if node.Text != "rewritten" {
		t.Fatalf("transformer mutation missing: %s", view.Describe(node))
	}

	failing := orchestrator.New(orchestrator.WithTransformer(orchestrator.TransformerFunc(
		func(context.Context, *markup.Document) error { return errors.New("boom") },
	)))
	_, _, err = failing.Build(testsupport.Context(), orchestrator.Request{
		Path: filepath.Join("testdata", "sheet.yaml"),
	})
	if err == nil || !strings.Contains(err.Error(), "orchestrator: transform document: boom") {
		t.Fatalf("expected transform error, got %v", err)
	}
}

func TestPresetTransformerFromFS(t *testing.T) {
	preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS("testdata"), "preset.yaml")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	doc := markup.Document{Markup: `<text>a</text>`, Assigns: map[string]any{"title": "Kept"}}
	if err := preset.Transform(testsupport.Context(), &doc); err != nil {
		t.Fatalf("transform: %v", err)
	}

	want := map[string]any{"show": false, "title": "Kept"}
	if diff := cmp.Diff(want, doc.Assigns); diff != "" {
		t.Fatalf("assigns mismatch (-want +got):\n%s", diff)
	}
	elements, err := doc.Elements()
	if err != nil {
		t.Fatalf("elements: %v", err)
	}
	if len(elements) != 2 || elements[1].Template() != "unused" {
		t.Fatalf("expected appended template, got %d roots", len(elements))
	}

	if _, err := orchestrator.NewPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected empty document error")
	}
	if _, err := orchestrator.NewPresetTransformer([]byte("templates:\n  - <text>")); err == nil {
		t.Fatalf("expected invalid template error")
	}
}

func TestOrchestrator_SessionKeepsDismissal(t *testing.T) {
	ctx := testsupport.Context()
	store, err := session.New(session.WithID("nvs-orch"))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	recorder := &event.Recorder{}
	orch := orchestrator.New(
		orchestrator.WithSession(store),
		orchestrator.WithDispatcher(recorder),
	)
	req := orchestrator.Request{Path: filepath.Join("testdata", "sheet.yaml")}

	node, _, err := orch.Build(ctx, req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	sheet, _ := node.Find(view.KindSheet)
	if err := sheet.Invoke(ctx, view.ActionDismiss); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if recorder.Count("closed") != 1 || recorder.Count("sheet_changed") != 1 {
		t.Fatalf("unexpected events %+v", recorder.Events())
	}

	node, _, err = orch.Build(ctx, req)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	sheet, _ = node.Find(view.KindSheet)
	if len(sheet.Content) != 0 {
		t.Fatalf("expected sheet to stay dismissed, got %s", view.Describe(sheet))
	}

	output, err := orch.Generate(ctx, orchestrator.Request{
		Path:     req.Path,
		Renderer: "json",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Contains(string(output), "Sheet body") {
		t.Fatalf("dismissed sheet rendered content:\n%s", output)
	}
	if orch.Session() != store {
		t.Fatalf("expected injected session store")
	}
}

func TestOrchestrator_ThemeSelector(t *testing.T) {
	selector := color.NewManifestSelector("acme", "")
	if err := selector.Register(&theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#112233"},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#445566"}},
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	orch := orchestrator.New(
		orchestrator.WithThemeSelector(selector, "acme", ""),
		orchestrator.WithColorTokens(map[string]string{"ink": "black"}),
	)
	doc := markup.Document{Markup: `<text modifiers='[{"type":"shadow","color":"brand","radius":2,"x":0,"y":1}]'>x</text>`}

	cases := []struct {
		variant string
		want    string
	}{
		{variant: "", want: "#112233ff"},
		{variant: "dark", want: "#445566ff"},
	}
	for _, tc := range cases {
		node, _, err := orch.Build(testsupport.Context(), orchestrator.Request{Document: &doc, ThemeVariant: tc.variant})
		if err != nil {
			t.Fatalf("build %q: %v", tc.variant, err)
		}
		if got, _ := node.Prop("color"); got != tc.want {
			t.Fatalf("variant %q: expected %s, got %v", tc.variant, tc.want, got)
		}
	}

	if _, _, err := orch.Build(testsupport.Context(), orchestrator.Request{Document: &doc, ThemeVariant: "sepia"}); err == nil {
		t.Fatalf("expected theme selection error")
	}
}

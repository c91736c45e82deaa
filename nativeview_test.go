package nativeview

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "nativeview.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected stylesheet content")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"templates/page.tmpl", "templates/node.tmpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	out, err := Generate(context.Background(), filepath.Join("testdata", "sheet.yaml"), "tree")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "Sheet body") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestBuildFromLoadedDocument(t *testing.T) {
	doc, err := LoadDocument(os.DirFS("testdata"), "sheet.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	doc = doc.WithAssigns(map[string]any{"show": false})
	node, err := Build(context.Background(), doc)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(Describe(node), "Sheet body") {
		t.Fatalf("hidden sheet rendered its content: %s", Describe(node))
	}

	out, err := GenerateFromDocument(context.Background(), doc, "json")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `"presented": false`) {
		t.Fatalf("expected dismissed sheet in json output:\n%s", out)
	}
}

func TestParseMarkup(t *testing.T) {
	roots, err := ParseMarkup(`<vstack><text>a</text><text>b</text></vstack>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(roots) != 1 || len(roots[0].Children) != 2 {
		t.Fatalf("unexpected roots %+v", roots)
	}
}

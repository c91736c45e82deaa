// Package testsupport holds fixture and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// LoadDocument reads a markup document fixture.
func LoadDocument(t *testing.T, path string) markup.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (markup.Document, error) {
	if path == "" {
		return markup.Document{}, errors.New("testsupport: document path is required")
	}
	doc, err := markup.LoadDocumentFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return markup.Document{}, fmt.Errorf("testsupport: %w", err)
	}
	return doc, nil
}

// MustParse parses inline markup.
func MustParse(t *testing.T, src string) []*markup.Element {
	t.Helper()

	roots, err := markup.ParseString(src)
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return roots
}

// CompareDescription diffs two view descriptions as decoded JSON so that
// formatting differences do not count.
func CompareDescription(t *testing.T, want []byte, got view.Node) string {
	t.Helper()

	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		t.Fatalf("decode expected description: %v", err)
	}
	if err := json.Unmarshal([]byte(view.Describe(got)), &gotValue); err != nil {
		t.Fatalf("decode description: %v", err)
	}
	return cmp.Diff(wantValue, gotValue)
}

// IndentDescription pretty-prints a view description for golden files.
func IndentDescription(n view.Node) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(view.Describe(n)), "", "  "); err != nil {
		return []byte(view.Describe(n))
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

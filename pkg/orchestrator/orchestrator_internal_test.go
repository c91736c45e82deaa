package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-nativeview/pkg/markup"
	"github.com/goliatone/go-nativeview/pkg/view"
)

func TestRenderReportsInitialiseError(t *testing.T) {
	initErr := errors.New("orchestrator: session: entropy unavailable")
	o := &Orchestrator{initialiseErr: initErr}

	out, err := o.Render(context.Background(), view.Text("hi"), markup.Document{}, Request{Renderer: "json"})
	if !errors.Is(err, initErr) {
		t.Fatalf("expected initialise error, got %v (%s)", err, out)
	}
}

func TestApplyDefaultsKeepsRegistryWithoutSession(t *testing.T) {
	o := &Orchestrator{}
	o.applyDefaults()
	if o.registry == nil {
		t.Fatalf("expected default registry")
	}
	if o.dispatcher == nil || o.logger == nil {
		t.Fatalf("expected default dispatcher and logger")
	}
}

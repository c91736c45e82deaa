package session

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nativeview/internal/idgen"
)

func TestStoreServerWinsOnChange(t *testing.T) {
	store, err := New(WithID("nvs-fixed"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if store.ID() != "nvs-fixed" {
		t.Fatalf("unexpected id %q", store.ID())
	}

	b := store.Bool("0/sheet.is_presented", true)
	if !b.Get() {
		t.Fatalf("expected initial server value")
	}

	b.Set(false)
	if b.Get() {
		t.Fatalf("expected local write to hold")
	}

	// Same server value again: local write persists.
	b = store.Bool("0/sheet.is_presented", true)
	if b.Get() {
		t.Fatalf("expected local value to survive unchanged server value")
	}

	// Server flips: server wins.
	b = store.Bool("0/sheet.is_presented", false)
	if b.Get() {
		t.Fatalf("expected server false")
	}
	b = store.Bool("0/sheet.is_presented", true)
	if !b.Get() {
		t.Fatalf("expected server true after change")
	}
}

func TestStoreObserverAndSnapshot(t *testing.T) {
	var seen []string
	store, err := New(WithObserver(func(key string, v bool) {
		if v {
			seen = append(seen, key+"=true")
			return
		}
		seen = append(seen, key+"=false")
	}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !strings.HasPrefix(store.ID(), idgen.SessionPrefix) {
		t.Fatalf("unexpected generated id %q", store.ID())
	}

	store.Bool("b", true).Set(false)
	store.Bool("a", false)

	if diff := cmp.Diff([]string{"b=false"}, seen); diff != "" {
		t.Fatalf("observer mismatch (-want +got):\n%s", diff)
	}

	want := []Entry{
		{Key: "a", Server: false, Local: false},
		{Key: "b", Server: true, Local: false},
	}
	if diff := cmp.Diff(want, store.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	store.Forget("b")
	if _, ok := store.Value("b"); ok {
		t.Fatalf("expected b to be forgotten")
	}
	if !store.Bool("b", true).Get() {
		t.Fatalf("expected fresh server value after forget")
	}
}

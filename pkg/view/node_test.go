package view

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-nativeview/pkg/color"
	"github.com/goliatone/go-nativeview/pkg/enum"
)

func TestWrappersDoNotMutateInput(t *testing.T) {
	base := Stack(AxisVertical, nil, []Node{Text("a"), Text("b")})
	before := Describe(base)

	_ = Shadow(base, color.RGB(1, 2, 3), 2, 1, 1)
	_ = Opacity(base, 0.5)
	_ = Hidden(base)
	_ = Sheet(base, true, []Node{Text("body")}, nil)

	if after := Describe(base); after != before {
		t.Fatalf("input mutated:\nbefore %s\nafter  %s", before, after)
	}
}

func TestDescribeIsDeterministic(t *testing.T) {
	build := func() Node {
		spacing := 8.0
		return Shadow(
			LazyHStack(enum.VerticalTop, &spacing, enum.PinnedSectionHeaders, []Node{Text("1"), Text("2")}),
			color.RGB(128, 128, 128), 2, 2, 2,
		)
	}
	first, second := Describe(build()), Describe(build())
	if first != second {
		t.Fatalf("descriptions differ:\n%s\n%s", first, second)
	}
	want := `{"kind":"shadow","props":{"color":"#808080ff","radius":2,"x":2,"y":2},"children":[{"kind":"lazy-hstack","props":{"alignment":"top","pinnedViews":["section-headers"],"spacing":8},"children":[{"kind":"text","text":"1"},{"kind":"text","text":"2"}]}]}`
	if first != want {
		t.Fatalf("unexpected description:\n%s", first)
	}
}

func TestOpacityKeepsOutOfRangeValues(t *testing.T) {
	for _, value := range []float64{-1, 0, 0.5, 1, 2.5} {
		n := Opacity(Text("x"), value)
		if got, _ := n.Prop("opacity"); got != value {
			t.Fatalf("opacity %v stored as %v", value, got)
		}
	}
}

func TestSheetContentOnlyWhenPresented(t *testing.T) {
	hidden := Sheet(Text("anchor"), false, []Node{Text("body")}, nil)
	if len(hidden.Content) != 0 {
		t.Fatalf("dismissed sheet should carry no content")
	}
	shown := Sheet(Text("anchor"), true, []Node{Text("body")}, nil)
	if diff := cmp.Diff([]Node{Text("body")}, shown.Content, cmpopts.IgnoreUnexported(Node{})); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestActions(t *testing.T) {
	calls := 0
	n := Sheet(Text("anchor"), true, nil, func(context.Context) error {
		calls++
		return nil
	})
	if diff := cmp.Diff([]string{ActionDismiss}, n.Actions()); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
	if err := n.Invoke(context.Background(), ActionDismiss); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	if err := Text("x").Invoke(context.Background(), ActionDismiss); err == nil {
		t.Fatalf("expected error for missing action")
	}

	wrapped := Opacity(n, 1)
	found, ok := wrapped.Find(KindSheet)
	if !ok {
		t.Fatalf("sheet not found")
	}
	if err := found.Invoke(context.Background(), ActionDismiss); err != nil || calls != 2 {
		t.Fatalf("action lost through wrapping: calls=%d err=%v", calls, err)
	}
}

func TestGroupAndButton(t *testing.T) {
	g := Group("custom", []Node{Button([]Node{Text("Go")}, "go")})
	if tag, _ := g.Prop("tag"); tag != "custom" {
		t.Fatalf("tag prop missing: %v", g.Props)
	}
	b, ok := g.Find(KindButton)
	if !ok {
		t.Fatalf("button not found")
	}
	if event, _ := b.Prop("event"); event != "go" {
		t.Fatalf("event prop missing: %v", b.Props)
	}
}

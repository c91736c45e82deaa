package modifier

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/binding"
	"github.com/goliatone/go-nativeview/pkg/color"
	"github.com/goliatone/go-nativeview/pkg/event"
	"github.com/goliatone/go-nativeview/pkg/view"
)

func TestShadowRequiresEveryField(t *testing.T) {
	reg := NewRegistry()
	full := attr.Map{"color": "red", "radius": 4.0, "x": 1.0, "y": -2.0}

	for _, missing := range []string{"color", "radius", "x", "y"} {
		args := attr.Map{}
		for k, v := range full {
			if k != missing {
				args[k] = v
			}
		}
		_, err := reg.Build("shadow", args, Env{})
		var mf *attr.MissingFieldError
		if !errors.As(err, &mf) {
			t.Fatalf("missing %s: expected MissingFieldError, got %v", missing, err)
		}
		if mf.Field != missing || mf.Modifier != "shadow" {
			t.Fatalf("missing %s: unexpected error %+v", missing, mf)
		}
	}

	m, err := reg.Build("shadow", full, Env{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := Shadow{Color: color.RGB(255, 59, 48), Radius: 4, X: 1, Y: -2}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("shadow mismatch (-want +got):\n%s", diff)
	}
}

func TestShadowBadValue(t *testing.T) {
	_, err := NewRegistry().Build("shadow", attr.Map{"color": "red", "radius": "wide", "x": 1.0, "y": 1.0}, Env{})
	var bv *attr.BadValueError
	if !errors.As(err, &bv) || bv.Field != "radius" {
		t.Fatalf("expected bad radius, got %v", err)
	}
	if !errors.Is(err, attr.ErrBadValue) {
		t.Fatalf("expected ErrBadValue sentinel")
	}
}

func TestHiddenTwoCases(t *testing.T) {
	reg := NewRegistry()
	content := view.Text("hello")

	on, err := reg.Build("hidden", attr.Strings{"is_active": "true"}, Env{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := on.Apply(content)
	if diff := cmp.Diff(view.Hidden(content), got, cmp.AllowUnexported(view.Node{})); diff != "" {
		t.Fatalf("hidden mismatch (-want +got):\n%s", diff)
	}

	off, err := reg.Build("hidden", attr.Map{"is_active": false}, Env{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff(content, off.Apply(content), cmp.AllowUnexported(view.Node{})); diff != "" {
		t.Fatalf("inactive hidden changed the view (-want +got):\n%s", diff)
	}

	if _, err := reg.Build("hidden", attr.Map{}, Env{}); !errors.Is(err, attr.ErrMissingField) {
		t.Fatalf("expected missing is_active, got %v", err)
	}
}

func TestOpacityPassesThrough(t *testing.T) {
	reg := NewRegistry()
	for _, value := range []float64{0.5, -0.25, 1.5} {
		rec, err := reg.Decode("opacity", attr.Map{"opacity": value})
		if err != nil {
			t.Fatalf("decode %v: %v", value, err)
		}
		if got := rec.Float("opacity"); got != value {
			t.Fatalf("expected %v, got %v", value, got)
		}
		m, err := reg.Build("opacity", attr.Map{"opacity": value}, Env{})
		if err != nil {
			t.Fatalf("build %v: %v", value, err)
		}
		out := m.Apply(view.Text("x"))
		if got, _ := out.Prop("opacity"); got != value {
			t.Fatalf("expected applied opacity %v, got %v", value, got)
		}
	}
}

func TestDecodeApplyDeterministic(t *testing.T) {
	reg := NewRegistry()
	args := attr.Map{"color": "#112233", "radius": 3.0, "x": 0.0, "y": 1.0}
	describe := func() string {
		m, err := reg.Build("shadow", args, Env{})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		o, err := reg.Build("opacity", attr.Map{"opacity": 0.3}, Env{})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		return view.Describe(Apply(view.Text("a"), m, o))
	}
	first := describe()
	for i := 0; i < 5; i++ {
		if got := describe(); got != first {
			t.Fatalf("non-deterministic output:\n%s\n%s", first, got)
		}
	}
}

type countingResolver struct {
	calls []string
}

func (r *countingResolver) Resolve(template string) []view.Node {
	r.calls = append(r.calls, template)
	return []view.Node{view.Text("sheet body")}
}

func TestSheetPresentDismiss(t *testing.T) {
	presented := binding.NewVariable(false)
	resolver := &countingResolver{}
	recorder := &event.Recorder{}
	sheet := NewSheet(presented.Binding(), "details", WithResolver(resolver), WithDispatcher(recorder))
	sheet.Change = "sheet_changed"
	sheet.OnDismiss = event.Named("sheet_closed")

	out := sheet.Apply(view.Text("anchor"))
	if len(resolver.calls) != 0 {
		t.Fatalf("resolved content while not presented")
	}
	if out.Content != nil {
		t.Fatalf("unexpected sheet content %+v", out.Content)
	}

	presented.Store(true)
	out = sheet.Apply(view.Text("anchor"))
	if diff := cmp.Diff([]string{"details"}, resolver.calls); diff != "" {
		t.Fatalf("resolution mismatch (-want +got):\n%s", diff)
	}
	if len(out.Content) != 1 || out.Content[0].Text != "sheet body" {
		t.Fatalf("expected sheet body, got %+v", out.Content)
	}

	// Content is resolved again on every apply while presented.
	sheet.Apply(view.Text("anchor"))
	if len(resolver.calls) != 2 {
		t.Fatalf("expected fresh resolution, got %d calls", len(resolver.calls))
	}

	ctx := context.Background()
	if err := out.Invoke(ctx, view.ActionDismiss); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if presented.Value() {
		t.Fatalf("expected binding written back to false")
	}
	if presented.Writes != 1 {
		t.Fatalf("expected one write, got %d", presented.Writes)
	}
	if got := recorder.Count("sheet_closed"); got != 1 {
		t.Fatalf("expected on_dismiss once, got %d", got)
	}

	// A second dismissal is a no-op.
	if err := out.Invoke(ctx, view.ActionDismiss); err != nil {
		t.Fatalf("second dismiss: %v", err)
	}
	if got := recorder.Count("sheet_closed"); got != 1 {
		t.Fatalf("expected on_dismiss still once, got %d", got)
	}

	want := []event.Dispatched{
		{Handle: event.Change("sheet_changed"), Payload: map[string]any{PayloadKey: false}},
		{Handle: event.Named("sheet_closed")},
	}
	if diff := cmp.Diff(want, recorder.Events()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestSheetDismissSurvivesChangeFailure(t *testing.T) {
	presented := binding.NewVariable(true)
	transportDown := errors.New("transport down")
	var dismissals int
	dispatcher := event.DispatcherFunc(func(_ context.Context, h event.Handle, _ map[string]any) error {
		if h.Type == "change" {
			return transportDown
		}
		dismissals++
		return nil
	})
	sheet := NewSheet(presented.Binding(), "details", WithDispatcher(dispatcher))
	sheet.Change = "sheet_changed"
	sheet.OnDismiss = event.Named("sheet_closed")

	err := sheet.Dismiss(context.Background())
	if !errors.Is(err, transportDown) {
		t.Fatalf("expected change failure to be reported, got %v", err)
	}
	if presented.Value() {
		t.Fatalf("expected binding written back to false")
	}
	if dismissals != 1 {
		t.Fatalf("expected on_dismiss once despite change failure, got %d", dismissals)
	}

	if err := sheet.Dismiss(context.Background()); err != nil {
		t.Fatalf("second dismiss: %v", err)
	}
	if dismissals != 1 {
		t.Fatalf("expected on_dismiss still once, got %d", dismissals)
	}
}

type mapBindings map[string]*binding.Variable[bool]

func (m mapBindings) Bool(key string, server bool) binding.Bool {
	v, ok := m[key]
	if !ok {
		v = binding.NewVariable(server)
		m[key] = v
	}
	return v.Binding()
}

func TestSheetFromRegistry(t *testing.T) {
	bindings := mapBindings{}
	recorder := &event.Recorder{}
	resolver := &countingResolver{}
	env := Env{Key: "0/1", Content: resolver, Bindings: bindings, Dispatcher: recorder}

	m, err := NewRegistry().Build("sheet", attr.Map{
		"is_presented": true,
		"onDismiss":    map[string]any{"event": "closed", "type": "dismiss"},
		"content":      "details",
	}, env)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	sheet, ok := m.(*Sheet)
	if !ok {
		t.Fatalf("expected *Sheet, got %T", m)
	}
	if sheet.OnDismiss.Event != "closed" || sheet.OnDismiss.Type != "dismiss" {
		t.Fatalf("unexpected on_dismiss %+v", sheet.OnDismiss)
	}
	if _, ok := bindings["0/1.is_presented"]; !ok {
		t.Fatalf("expected binding keyed by element, got %v", bindings)
	}

	out := m.Apply(view.Text("anchor"))
	if presented, _ := out.Prop("presented"); presented != true {
		t.Fatalf("expected presented sheet")
	}
	if err := out.Invoke(context.Background(), view.ActionDismiss); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if bindings["0/1.is_presented"].Value() {
		t.Fatalf("binding not written back")
	}
	if got := len(recorder.Events()); got != 1 {
		t.Fatalf("expected only on_dismiss without change event, got %d", got)
	}

	for _, args := range []attr.Map{
		{"content": "details"},
		{"is_presented": true},
	} {
		if _, err := NewRegistry().Build("sheet", args, env); !errors.Is(err, attr.ErrMissingField) {
			t.Fatalf("expected missing field for %v, got %v", args, err)
		}
	}
}

func TestSheetReadOnlyBinding(t *testing.T) {
	sheet := NewSheet(binding.Constant(true), "details")
	if err := sheet.Dismiss(context.Background()); err == nil {
		t.Fatalf("expected read-only error")
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	if diff := cmp.Diff([]string{"hidden", "opacity", "shadow", "sheet"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if err := reg.Register(Definition{Schema: OpacitySchema, Factory: newOpacity}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if _, err := reg.Build("blur", attr.Map{}, Env{}); !errors.Is(err, ErrUnknownModifier) {
		t.Fatalf("expected unknown modifier, got %v", err)
	}
	if len(NewRegistry(WithoutBuiltins()).List()) != 0 {
		t.Fatalf("expected empty registry")
	}
	if len(reg.Schemas()) != 4 || reg.Schemas()[3].Name != "sheet" {
		t.Fatalf("unexpected schemas")
	}
}

package modifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-nativeview/pkg/attr"
	"github.com/goliatone/go-nativeview/pkg/binding"
	"github.com/goliatone/go-nativeview/pkg/event"
	"github.com/goliatone/go-nativeview/pkg/view"
)

// SheetSchema declares the sheet arguments.
var SheetSchema = attr.Schema{
	Name: "sheet",
	Doc:  "Presents a child template as a sheet while is_presented is true.",
	Fields: []attr.Field{
		attr.Required("is_presented", attr.KindBool).WithAliases("isPresented").
			Describe("Server value of the presentation binding."),
		attr.Optional("change", attr.KindString, nil).
			Describe("Event sent with the new value when the client writes the binding."),
		event.Field("on_dismiss").WithAliases("onDismiss").
			Describe("Event sent once when the sheet is dismissed from the client."),
		attr.Required("content", attr.KindString).
			Describe("Name of the child template rendered inside the sheet."),
	},
}

// PayloadKey names the bound value in change event payloads.
const PayloadKey = "is_presented"

// Sheet presents a child template driven by a two-way boolean binding.
type Sheet struct {
	Presented binding.Bool
	Change    string
	OnDismiss event.Handle
	Content   string

	resolver   ContentResolver
	dispatcher event.Dispatcher
	logger     *slog.Logger
}

// SheetOption customizes a sheet built with NewSheet.
type SheetOption func(*Sheet)

// WithResolver sets the content resolver.
func WithResolver(resolver ContentResolver) SheetOption {
	return func(s *Sheet) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithDispatcher sets the event dispatcher.
func WithDispatcher(dispatcher event.Dispatcher) SheetOption {
	return func(s *Sheet) {
		if dispatcher != nil {
			s.dispatcher = dispatcher
		}
	}
}

// NewSheet builds a sheet outside of a registry.
func NewSheet(presented binding.Bool, content string, opts ...SheetOption) *Sheet {
	env := Env{}.withDefaults()
	s := &Sheet{
		Presented:  presented,
		Content:    content,
		resolver:   env.Content,
		dispatcher: env.Dispatcher,
		logger:     env.Logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func newSheet(rec attr.Record, env Env) (Modifier, error) {
	server := rec.Bool("is_presented")
	presented := binding.NewVariable(server).Binding()
	if env.Bindings != nil {
		presented = env.Bindings.Bool(bindingKey(env.Key, "is_presented"), server)
	}
	return &Sheet{
		Presented:  presented,
		Change:     rec.String("change"),
		OnDismiss:  event.FromRecord(rec, "on_dismiss"),
		Content:    rec.String("content"),
		resolver:   env.Content,
		dispatcher: env.Dispatcher,
		logger:     env.Logger,
	}, nil
}

func bindingKey(key, field string) string {
	if key == "" {
		return SheetSchema.Name + "." + field
	}
	return key + "." + field
}

func (*Sheet) Type() string { return SheetSchema.Name }

// Apply resolves the content template on every call while presented.
func (s *Sheet) Apply(v view.Node) view.Node {
	presented := s.Presented.Get()
	var body []view.Node
	if presented {
		body = s.resolver.Resolve(s.Content)
	}
	return view.Sheet(v, presented, body, s.Dismiss)
}

// Dismiss handles a client-driven dismissal. It writes false through the
// binding, sends the change event and then on_dismiss. Once the binding is
// written on_dismiss is always sent, so a failed change dispatch is joined
// with any on_dismiss error. Dismissing a sheet that is not presented does
// nothing.
func (s *Sheet) Dismiss(ctx context.Context) error {
	if !s.Presented.Get() {
		return nil
	}
	err := s.SetPresented(ctx, false)
	if s.Presented.Get() || s.OnDismiss.IsZero() {
		return err
	}
	if dispatchErr := s.dispatcher.Dispatch(ctx, s.OnDismiss, nil); dispatchErr != nil {
		s.logger.Error("sheet on_dismiss dispatch failed", "event", s.OnDismiss.Event, "error", dispatchErr)
		err = errors.Join(err, fmt.Errorf("modifier: sheet on_dismiss %s: %w", s.OnDismiss.Event, dispatchErr))
	}
	return err
}

// SetPresented writes v through the binding and sends the change event when
// one is configured. Writing the current value does nothing.
func (s *Sheet) SetPresented(ctx context.Context, v bool) error {
	if s.Presented.Get() == v {
		return nil
	}
	if s.Presented.ReadOnly() {
		return errReadOnly
	}
	s.Presented.Set(v)
	s.logger.Debug("sheet presentation changed", "content", s.Content, "presented", v)
	if s.Change == "" {
		return nil
	}
	if err := s.dispatcher.Dispatch(ctx, event.Change(s.Change), map[string]any{PayloadKey: v}); err != nil {
		s.logger.Error("sheet change dispatch failed", "event", s.Change, "error", err)
		return fmt.Errorf("modifier: sheet change %s: %w", s.Change, err)
	}
	return nil
}

var errReadOnly = errors.New("modifier: sheet binding is read-only")

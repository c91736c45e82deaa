package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/goliatone/go-nativeview/internal/idgen"
)

// DefaultSubjectPrefix is prepended to every event subject.
const DefaultSubjectPrefix = "nativeview.events"

// Envelope is the wire form of a dispatched event.
type Envelope struct {
	ID      string         `json:"id"`
	Session string         `json:"session,omitempty"`
	Event   string         `json:"event"`
	Type    string         `json:"type"`
	Target  *int           `json:"target,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
	SentAt  time.Time      `json:"sent_at"`
}

// NATSOption customizes a NATSDispatcher.
type NATSOption func(*NATSDispatcher)

// WithSubjectPrefix overrides DefaultSubjectPrefix.
func WithSubjectPrefix(prefix string) NATSOption {
	return func(d *NATSDispatcher) {
		if prefix = strings.Trim(strings.TrimSpace(prefix), "."); prefix != "" {
			d.prefix = prefix
		}
	}
}

// WithSession stamps every envelope with the session identifier.
func WithSession(id string) NATSOption {
	return func(d *NATSDispatcher) {
		d.session = id
	}
}

// WithClock overrides the envelope timestamp source.
func WithClock(now func() time.Time) NATSOption {
	return func(d *NATSDispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// NATSDispatcher publishes JSON envelopes to "<prefix>.<event>".
type NATSDispatcher struct {
	conn    *nats.Conn
	prefix  string
	session string
	now     func() time.Time
}

// NewNATSDispatcher connects to url with automatic reconnection.
func NewNATSDispatcher(url string, opts ...NATSOption) (*NATSDispatcher, error) {
	nc, err := nats.Connect(url, nats.MaxReconnects(-1), nats.ReconnectWait(time.Second))
	if err != nil {
		return nil, fmt.Errorf("event: connecting to NATS at %s: %w", url, err)
	}
	return NewNATSDispatcherConn(nc, opts...), nil
}

// NewNATSDispatcherConn wraps an existing connection. Close closes it.
func NewNATSDispatcherConn(nc *nats.Conn, opts ...NATSOption) *NATSDispatcher {
	d := &NATSDispatcher{
		conn:   nc,
		prefix: DefaultSubjectPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Subject returns the subject the named event is published to.
func (d *NATSDispatcher) Subject(name string) string {
	return d.prefix + "." + subjectToken(name)
}

// Dispatch implements Dispatcher.
func (d *NATSDispatcher) Dispatch(ctx context.Context, h Handle, payload map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.IsZero() {
		return fmt.Errorf("event: dispatch: %w", errEmptyEvent)
	}
	id, err := idgen.Generate(idgen.EventPrefix)
	if err != nil {
		return fmt.Errorf("event: dispatch %s: %w", h.Event, err)
	}
	typ := h.Type
	if typ == "" {
		typ = DefaultType
	}
	data, err := json.Marshal(Envelope{
		ID:      id,
		Session: d.session,
		Event:   h.Event,
		Type:    typ,
		Target:  h.Target,
		Payload: payload,
		SentAt:  d.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("event: marshaling %s: %w", h.Event, err)
	}
	if err := d.conn.Publish(d.Subject(h.Event), data); err != nil {
		return fmt.Errorf("event: publishing %s: %w", h.Event, err)
	}
	return nil
}

// Flush waits for published events to reach the server.
func (d *NATSDispatcher) Flush() error {
	return d.conn.Flush()
}

// Close closes the underlying connection.
func (d *NATSDispatcher) Close() error {
	d.conn.Close()
	return nil
}

// subjectToken keeps event names from introducing subject separators or
// wildcards.
func subjectToken(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, name)
}

// Package session owns the client-side state that outlives a single render
// pass: the locally written values of two-way bindings.
//
// The server is authoritative whenever it sends a new value. A local write
// (a native-driven dismissal, for instance) holds until the next render in
// which the server value differs from the one last seen.
package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-nativeview/internal/idgen"
	"github.com/goliatone/go-nativeview/pkg/binding"
)

// Observer sees every local write.
type Observer func(key string, value bool)

// Option configures a Store.
type Option func(*Store)

// WithID fixes the session identifier.
func WithID(id string) Option {
	return func(s *Store) {
		if id != "" {
			s.id = id
		}
	}
}

// WithObserver registers fn for local writes.
func WithObserver(fn Observer) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

type tracked struct {
	server bool
	local  bool
}

// Store tracks bound values keyed by element path and field.
type Store struct {
	mu        sync.Mutex
	id        string
	values    map[string]*tracked
	observers []Observer
}

// New constructs a Store with a generated identifier.
func New(opts ...Option) (*Store, error) {
	s := &Store{values: make(map[string]*tracked)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.id == "" {
		id, err := idgen.Generate(idgen.SessionPrefix)
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		s.id = id
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Store) ID() string {
	return s.id
}

// Bool returns the binding for key given the value the server sent in this
// render pass.
func (s *Store) Bool(key string, server bool) binding.Bool {
	s.mu.Lock()
	t, ok := s.values[key]
	switch {
	case !ok:
		s.values[key] = &tracked{server: server, local: server}
	case t.server != server:
		t.server = server
		t.local = server
	}
	s.mu.Unlock()

	return binding.New(
		func() bool { return s.get(key) },
		func(v bool) { s.set(key, v) },
	)
}

func (s *Store) get(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.values[key]; ok {
		return t.local
	}
	return false
}

func (s *Store) set(key string, v bool) {
	s.mu.Lock()
	t, ok := s.values[key]
	if !ok {
		t = &tracked{server: v}
		s.values[key] = t
	}
	t.local = v
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(key, v)
	}
}

// Value reports the current local value of key.
func (s *Store) Value(key string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.values[key]
	if !ok {
		return false, false
	}
	return t.local, true
}

// Entry is one tracked value.
type Entry struct {
	Key    string `json:"key"`
	Server bool   `json:"server"`
	Local  bool   `json:"local"`
}

// Snapshot lists tracked values sorted by key.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.values))
	for key, t := range s.values {
		out = append(out, Entry{Key: key, Server: t.server, Local: t.local})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Forget drops key; the next Bool call starts from the server value.
func (s *Store) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

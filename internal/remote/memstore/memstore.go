// Package memstore is an in-process remote.Store. Subscribers are notified
// synchronously from the writing goroutine, which makes sync behaviour
// deterministic in tests.
package memstore

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/remote"
)

type subscriber struct {
	fn func(*document.Document)
}

type Store struct {
	mu   sync.Mutex
	docs map[document.Identity]document.Raw
	subs map[document.Identity]map[*subscriber]struct{}

	// hooks for tests
	updates map[document.Identity][]document.Patch
	failGet map[document.Identity]error
	failUpd map[document.Identity]error
}

func New() *Store {
	return &Store{
		docs:    make(map[document.Identity]document.Raw),
		subs:    make(map[document.Identity]map[*subscriber]struct{}),
		updates: make(map[document.Identity][]document.Patch),
		failGet: make(map[document.Identity]error),
		failUpd: make(map[document.Identity]error),
	}
}

var _ remote.Store = (*Store)(nil)

// Put stores d as-is, bypassing update accounting and subscribers.
func (s *Store) Put(d *document.Document) error {
	r, err := document.Encode(d)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[d.Identity] = r
	s.mu.Unlock()
	return nil
}

func (s *Store) Get(ctx context.Context, id document.Identity) (*document.Document, error) {
	s.mu.Lock()
	if err := s.failGet[id]; err != nil {
		s.mu.Unlock()
		return nil, err
	}
	r, ok := s.docs[id]
	s.mu.Unlock()

	if !ok {
		return nil, remote.ErrNotFound
	}
	return r.Decode()
}

func (s *Store) Exists(ctx context.Context, id document.Identity) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failGet[id]; err != nil {
		return false, err
	}
	_, ok := s.docs[id]
	return ok, nil
}

func (s *Store) Update(ctx context.Context, id document.Identity, patch document.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if err := s.failUpd[id]; err != nil {
		s.mu.Unlock()
		return err
	}
	merged := s.docs[id].Apply(patch)
	s.docs[id] = merged
	s.updates[id] = append(s.updates[id], patch)
	fns := s.listeners(id)
	s.mu.Unlock()

	s.notify(merged, fns)
	return nil
}

// Subscribe registers fn until the returned function is called or ctx ends.
func (s *Store) Subscribe(ctx context.Context, id document.Identity, fn func(*document.Document)) (remote.Unsubscribe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sub := &subscriber{fn: fn}

	s.mu.Lock()
	if s.subs[id] == nil {
		s.subs[id] = make(map[*subscriber]struct{})
	}
	s.subs[id][sub] = struct{}{}
	current, ok := s.docs[id]
	s.mu.Unlock()

	if ok {
		s.notify(current, []func(*document.Document){fn})
	}

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs[id], sub)
			s.mu.Unlock()
		})
	}
	stop := context.AfterFunc(ctx, unsub)
	return func() {
		stop()
		unsub()
	}, nil
}

// Updates returns the patches written to id, oldest first.
func (s *Store) Updates(id document.Identity) []document.Patch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]document.Patch, len(s.updates[id]))
	copy(out, s.updates[id])
	return out
}

// Subscribers returns the number of live subscriptions to id.
func (s *Store) Subscribers(id document.Identity) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs[id])
}

// FailGet makes Get and Exists for id return err until cleared with nil.
func (s *Store) FailGet(id document.Identity, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failGet, id)
		return
	}
	s.failGet[id] = err
}

// FailUpdate makes Update for id return err until cleared with nil.
func (s *Store) FailUpdate(id document.Identity, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failUpd, id)
		return
	}
	s.failUpd[id] = err
}

func (s *Store) listeners(id document.Identity) []func(*document.Document) {
	fns := make([]func(*document.Document), 0, len(s.subs[id]))
	for sub := range s.subs[id] {
		fns = append(fns, sub.fn)
	}
	return fns
}

func (s *Store) notify(r document.Raw, fns []func(*document.Document)) {
	for _, fn := range fns {
		d, err := r.Decode()
		if err != nil {
			continue
		}
		fn(d)
	}
}

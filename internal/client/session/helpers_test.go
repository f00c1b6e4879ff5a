package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/remote/memstore"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: t0} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type harness struct {
	t     *testing.T
	store *memstore.Store
	clock *fakeClock
	ids   *seqIDs
}

func newHarness(t *testing.T) *harness {
	return &harness{t: t, store: memstore.New(), clock: newFakeClock(), ids: &seqIDs{}}
}

// seed stores a fresh document for id.
func (h *harness) seed(id document.Identity, mutate ...func(d *document.Document)) *document.Document {
	h.t.Helper()
	d := document.New(id, string(id), h.clock.Now())
	for _, fn := range mutate {
		fn(d)
	}
	require.NoError(h.t, h.store.Put(d))
	return d
}

// signIn starts a session whose debounced persist only fires on Flush.
func (h *harness) signIn(id document.Identity, opts ...Option) *Session {
	h.t.Helper()
	base := []Option{
		WithClock(h.clock.Now),
		WithIDGenerator(h.ids.Next),
		WithDebounceInterval(time.Hour),
		WithSweepInterval(time.Hour),
	}
	s, err := SignIn(context.Background(), h.store, id, string(id), append(base, opts...)...)
	require.NoError(h.t, err)
	h.t.Cleanup(func() { _ = s.SignOut(context.Background()) })
	return s
}

func (h *harness) remote(id document.Identity) *document.Document {
	h.t.Helper()
	d, err := h.store.Get(context.Background(), id)
	require.NoError(h.t, err)
	return d
}

func flush(t *testing.T, s *Session) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Flush(ctx))
}

func snapshot(t *testing.T, s *Session) Snapshot {
	t.Helper()
	snap, err := s.Snapshot()
	require.NoError(t, err)
	return snap
}

func textNote(title, text string) NoteInput {
	return NoteInput{Title: title, Kind: document.NoteText, Text: text}
}

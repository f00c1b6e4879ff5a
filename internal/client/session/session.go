// Package session is the client's sync core. A Session is created at sign-in
// and owns everything that lives until sign-out: the local mirror of the
// user's document and a read-only copy of the partner's, the subscriptions
// feeding them, the debounced persistence timer, the remote write queue and
// the retention sweep.
//
// Mutations are applied to the mirror synchronously and reach the store
// asynchronously. Remote failures never roll a local change back; they are
// logged and exposed through Status.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/logging"
	"github.com/dmitrijs2005/duosync/internal/remote"
	"github.com/google/uuid"
)

const (
	DefaultDebounceInterval = 2 * time.Second
	DefaultMessageTTL       = 24 * time.Hour
	DefaultSweepInterval    = time.Hour
)

// Snapshot is a point-in-time copy of the mirror for display.
type Snapshot struct {
	Own     *document.Document
	Partner *document.Document
	Status  Status
}

// Status is the passive sync indicator.
type Status struct {
	Identity      document.Identity
	Partner       document.Identity
	PendingWrites int
	LastSyncAt    time.Time
	LastError     string
}

type options struct {
	clock         func() time.Time
	newID         func() string
	logger        logging.Logger
	debounce      time.Duration
	messageTTL    time.Duration
	sweepInterval time.Duration
	onChange      func(Snapshot)
}

type Option func(*options)

func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithDebounceInterval(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

func WithMessageTTL(d time.Duration) Option {
	return func(o *options) { o.messageTTL = d }
}

func WithSweepInterval(d time.Duration) Option {
	return func(o *options) { o.sweepInterval = d }
}

// WithOnChange registers a callback invoked after every local or remote
// change of the mirror. It runs on the goroutine that caused the change and
// must not call back into the session synchronously.
func WithOnChange(fn func(Snapshot)) Option {
	return func(o *options) { o.onChange = fn }
}

type Session struct {
	store    remote.Store
	opts     options
	logger   logging.Logger
	identity document.Identity

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	queue    *writeQueue
	debounce *debouncer

	mu         sync.Mutex
	own        *document.Document
	partner    *document.Document
	ownSub     remote.Unsubscribe
	partnerSub remote.Unsubscribe
	closed     bool
	lastSyncAt time.Time
	lastError  string
}

// SignIn loads (or creates) the document of id, subscribes to it and to the
// linked partner's document, and starts the background sweep.
func SignIn(ctx context.Context, store remote.Store, id document.Identity, email string, opts ...Option) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty identity", ErrInvalidInput)
	}

	o := options{
		clock:         func() time.Time { return time.Now().UTC() },
		newID:         uuid.NewString,
		logger:        logging.Nop(),
		debounce:      DefaultDebounceInterval,
		messageTTL:    DefaultMessageTTL,
		sweepInterval: DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		store:    store,
		opts:     o,
		logger:   o.logger.With("module", "session", "identity", string(id)),
		identity: id,
		queue:    newWriteQueue(),
	}
	s.debounce = newDebouncer(o.debounce, func() { s.enqueuePersist(document.DebouncedFields()...) })

	doc, err := store.Get(ctx, id)
	switch {
	case errors.Is(err, remote.ErrNotFound):
		doc = document.New(id, email, s.now())
		patch, err := document.NewPatch(doc, document.Fields()...)
		if err != nil {
			return nil, err
		}
		if err := store.Update(ctx, id, patch); err != nil {
			return nil, remoteError("create document", err)
		}
		s.logger.Info(ctx, "created document")
	case err != nil:
		return nil, remoteError("load document", err)
	}
	s.own = doc

	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.queue.run(s.ctx, s.writeDone)
	}()

	if _, err := s.Sweep(); err != nil {
		return nil, err
	}

	ownSub, err := store.Subscribe(s.ctx, id, s.ownListener())
	if err != nil {
		s.shutdown()
		return nil, remoteError("subscribe", err)
	}
	s.mu.Lock()
	s.ownSub = ownSub
	partner := s.own.PartnerIdentity
	s.mu.Unlock()

	if partner != "" {
		s.followPartner(ctx, partner)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.sweepLoop(s.ctx)
	}()

	return s, nil
}

// Identity returns the signed-in identity.
func (s *Session) Identity() document.Identity { return s.identity }

// CurrentIdentity implements remote.IdentityProvider.
func (s *Session) CurrentIdentity() (document.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false
	}
	return s.identity, true
}

// SignOut pushes pending local changes (bounded by ctx), then unsubscribes,
// stops background work and discards the mirror. Writes still running when
// ctx ends are abandoned.
func (s *Session) SignOut(ctx context.Context) error {
	flushErr := s.Flush(ctx)
	if errors.Is(flushErr, ErrNotSignedIn) {
		return nil
	}
	s.shutdown()
	return flushErr
}

func (s *Session) shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := []remote.Unsubscribe{s.ownSub, s.partnerSub}
	s.ownSub, s.partnerSub = nil, nil
	s.own, s.partner = nil, nil
	s.mu.Unlock()

	for _, unsub := range subs {
		if unsub != nil {
			unsub()
		}
	}
	s.debounce.stop()
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.logger.Info(context.Background(), "signed out")
}

// Flush runs a pending debounced persist immediately and waits until every
// queued remote write has finished.
func (s *Session) Flush(ctx context.Context) error {
	if !s.signedIn() {
		return ErrNotSignedIn
	}
	s.debounce.flush()
	return s.queue.wait(ctx)
}

func (s *Session) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Snapshot{}, ErrNotSignedIn
	}
	return Snapshot{
		Own:     s.own.Clone(),
		Partner: s.partner.Clone(),
		Status:  s.statusLocked(),
	}, nil
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Session) statusLocked() Status {
	st := Status{
		Identity:      s.identity,
		PendingWrites: s.queue.len(),
		LastSyncAt:    s.lastSyncAt,
		LastError:     s.lastError,
	}
	if s.own != nil {
		st.Partner = s.own.PartnerIdentity
	}
	if s.debounce.pending() {
		st.PendingWrites++
	}
	return st
}

func (s *Session) signedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *Session) now() time.Time {
	return s.opts.clock()
}

// stampLocked marks d as changed by the signed-in user. The stamp never
// moves backward even if the wall clock does.
func (s *Session) stampLocked(d *document.Document) {
	d.LastUpdatedAt = nextStamp(s.now(), d.LastUpdatedAt)
	d.LastUpdatedByIdentity = s.identity
}

func nextStamp(now, prev time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}

func (s *Session) changed() {
	if s.opts.onChange == nil {
		return
	}
	snap, err := s.Snapshot()
	if err != nil {
		return
	}
	s.opts.onChange(snap)
}

func remoteError(op string, err error) error {
	if errors.Is(err, ErrRemoteUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrRemoteUnavailable, err)
}

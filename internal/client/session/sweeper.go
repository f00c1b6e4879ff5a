package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
)

// Sweep drops messages older than the message TTL from the mirror. When
// anything was dropped the shorter list is committed like any private-field
// change: the document is stamped and a debounced persist is scheduled.
// It returns the number of evicted messages.
func (s *Session) Sweep() (int, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrNotSignedIn
	}
	dropped := s.evictLocked()
	s.mu.Unlock()

	if dropped > 0 {
		s.logger.Debug(context.Background(), "expired messages evicted", "count", dropped)
		s.debounce.trigger()
		s.changed()
	}
	return dropped, nil
}

func (s *Session) evictLocked() int {
	kept, dropped := document.FilterExpiredMessages(s.own.Messages, s.cutoff())
	if dropped == 0 {
		return 0
	}
	work := s.own.Clone()
	work.Messages = kept
	s.stampLocked(work)
	s.own = work
	messagesEvictedTotal.Add(float64(dropped))
	return dropped
}

func (s *Session) cutoff() time.Time {
	return s.now().Add(-s.opts.messageTTL)
}

func (s *Session) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(s.opts.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(); err != nil {
				return
			}
		}
	}
}

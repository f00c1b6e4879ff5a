package session

import (
	"context"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/remote"
)

// OnRemoteChange merges a snapshot pushed by the store.
//
// A snapshot of the own document replaces the mirror only when its
// lastUpdatedAt is strictly newer; anything else is an echo of an earlier
// write or a late arrival and is discarded. Expired messages are filtered
// out of an accepted snapshot before it becomes visible. A snapshot of the
// partner's document always replaces the cached copy.
func (s *Session) OnRemoteChange(owner document.Identity, doc *document.Document) {
	if doc == nil {
		return
	}
	ctx := context.Background()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	switch owner {
	case s.identity:
		if !doc.LastUpdatedAt.After(s.own.LastUpdatedAt) {
			current := s.own.LastUpdatedAt
			s.mu.Unlock()
			staleMergesTotal.Inc()
			s.logger.Debug(ctx, "stale merge discarded", "remote", doc.LastUpdatedAt, "local", current)
			return
		}

		prevPartner := s.own.PartnerIdentity
		s.own = doc
		dropped := s.evictLocked()
		partner := s.own.PartnerIdentity
		var released remote.Unsubscribe
		if partner != prevPartner && partner == "" {
			s.partner = nil
			released, s.partnerSub = s.partnerSub, nil
		}
		s.mu.Unlock()

		if released != nil {
			released()
		}

		if dropped > 0 {
			s.debounce.trigger()
		}
		if partner != prevPartner && partner != "" {
			s.goFollowPartner(partner)
		}

	case s.own.PartnerIdentity:
		s.partner = doc
		s.mu.Unlock()

	default:
		s.mu.Unlock()
		s.logger.Debug(ctx, "change for unrelated document ignored", "owner", string(owner))
		return
	}

	s.changed()
}

func (s *Session) ownListener() func(*document.Document) {
	id := s.identity
	return func(d *document.Document) { s.OnRemoteChange(id, d) }
}

// followPartner loads id's document into the partner cache and replaces the
// partner subscription. It gives up quietly if the session ended or the
// partner changed again meanwhile.
func (s *Session) followPartner(ctx context.Context, id document.Identity) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Warn(ctx, "partner snapshot unavailable", "partner", string(id), "error", err)
	}

	sub, err := s.store.Subscribe(s.ctx, id, func(d *document.Document) { s.OnRemoteChange(id, d) })
	if err != nil {
		s.logger.Warn(ctx, "partner subscription failed", "partner", string(id), "error", err)
		sub = nil
	}

	s.mu.Lock()
	if s.closed || s.own.PartnerIdentity != id {
		s.mu.Unlock()
		if sub != nil {
			sub()
		}
		return
	}
	old := s.partnerSub
	s.partnerSub = sub
	if doc != nil && (s.partner == nil || s.partner.Identity != id || doc.LastUpdatedAt.After(s.partner.LastUpdatedAt)) {
		s.partner = doc
	}
	s.mu.Unlock()

	if old != nil {
		old()
	}
	s.changed()
}

func (s *Session) goFollowPartner(id document.Identity) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.followPartner(s.ctx, id)
	}()
}

// restartOwnSubscription replaces the subscription to the own document.
func (s *Session) restartOwnSubscription() error {
	sub, err := s.store.Subscribe(s.ctx, s.identity, s.ownListener())
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sub()
		return ErrNotSignedIn
	}
	old := s.ownSub
	s.ownSub = sub
	s.mu.Unlock()

	if old != nil {
		old()
	}
	return nil
}

var _ remote.IdentityProvider = (*Session)(nil)

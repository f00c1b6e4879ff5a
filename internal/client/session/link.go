package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/remote"
)

// LinkPartner points the user's document at candidate's. The link is
// directional: candidate's document is not modified, and candidate has to
// link back to see this user.
//
// On success the partner snapshot is loaded and both subscriptions are
// restarted. ErrPartnerNotFound is returned when candidate has no document.
func (s *Session) LinkPartner(ctx context.Context, candidate document.Identity) error {
	if !s.signedIn() {
		return ErrNotSignedIn
	}
	if candidate == "" || candidate == s.identity {
		return ErrPartnerNotFound
	}

	ok, err := s.store.Exists(ctx, candidate)
	if err != nil {
		return remoteError("check partner", err)
	}
	if !ok {
		return ErrPartnerNotFound
	}

	partner, err := s.store.Get(ctx, candidate)
	if errors.Is(err, remote.ErrNotFound) {
		return ErrPartnerNotFound
	}
	if err != nil {
		return remoteError("fetch partner", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrNotSignedIn
	}
	work := s.own.Clone()
	now := s.now()
	work.PartnerIdentity = candidate
	work.ConnectedAt = &now
	s.stampLocked(work)
	s.own = work
	s.partner = partner
	s.mu.Unlock()

	s.enqueuePersist(document.FieldPartnerIdentity, document.FieldConnectedAt)

	if err := s.restartOwnSubscription(); err != nil {
		s.logger.Warn(ctx, "own subscription restart failed", "error", err)
	}
	s.followPartner(ctx, candidate)

	s.logger.Info(ctx, "partner linked", "partner", string(candidate))
	return nil
}

package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/duosync/internal/document"
)

// Mutation is one change to a single document field.
//
// Transform is applied to the local mirror. For mirrored fields Mirror is
// then applied to a fresh copy of the partner's document; when Mirror is nil
// Transform is used for both. Transforms must address records by id so that
// they converge both copies.
//
// For the mailbox field, Recipient selects whose inbox is written. An empty
// Recipient (or the signed-in identity) means the user's own inbox.
type Mutation struct {
	Field     document.Field
	Transform func(d *document.Document) error
	Mirror    func(d *document.Document) error
	Recipient document.Identity
}

// Apply commits m to the mirror and schedules its remote writes according
// to the class of the field:
//
//   - private: debounced persist of the private data fields;
//   - mirrored: immediate persist of the field, then a fan-out into the
//     partner's document if one is linked;
//   - mailbox: delivery into the recipient's document only, or an immediate
//     persist when the user edits their own inbox.
//
// Remote failures are not reported here.
func (s *Session) Apply(ctx context.Context, m Mutation) error {
	if m.Transform == nil || !m.Field.Known() {
		return fmt.Errorf("%w: mutation of %q", ErrInvalidInput, m.Field)
	}

	class := m.Field.Class()
	if class == document.ClassMailbox && m.Recipient != "" && m.Recipient != s.identity {
		return s.deliver(m)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrNotSignedIn
	}
	work := s.own.Clone()
	if err := m.Transform(work); err != nil {
		s.mu.Unlock()
		return err
	}
	s.stampLocked(work)
	s.own = work
	partner := work.PartnerIdentity
	s.mu.Unlock()

	switch class {
	case document.ClassPrivate:
		s.debounce.trigger()
	case document.ClassMirrored:
		s.enqueuePersist(m.Field)
		if partner != "" {
			mirror := m.Mirror
			if mirror == nil {
				mirror = m.Transform
			}
			s.enqueueForeign(writeMirror, partner, m.Field, mirror)
		}
	case document.ClassMailbox:
		s.enqueuePersist(m.Field)
	}

	s.changed()
	return nil
}

func (s *Session) deliver(m Mutation) error {
	if !s.signedIn() {
		return ErrNotSignedIn
	}
	s.enqueueForeign(writeDeliver, m.Recipient, m.Field, m.Transform)
	return nil
}

// enqueuePersist writes the given fields of the own document, plus the
// stamps, as they are when the write runs.
func (s *Session) enqueuePersist(fields ...document.Field) {
	fields = append(fields, document.FieldLastUpdatedAt, document.FieldLastUpdatedByIdentity)

	s.queue.submit(writeTask{kind: writePersist, run: func(ctx context.Context) error {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return nil
		}
		patch, err := document.NewPatch(s.own, fields...)
		s.mu.Unlock()
		if err != nil {
			return err
		}
		return s.store.Update(ctx, s.identity, patch)
	}})
}

// enqueueForeign refetches target's document, applies transform and writes
// the field back attributed to the signed-in user. There is no
// compare-and-swap: a concurrent write to the same field by target can be
// lost.
func (s *Session) enqueueForeign(kind writeKind, target document.Identity, field document.Field, transform func(*document.Document) error) {
	s.queue.submit(writeTask{kind: kind, run: func(ctx context.Context) error {
		doc, err := s.store.Get(ctx, target)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", target, err)
		}
		if err := transform(doc); err != nil {
			return err
		}
		doc.LastUpdatedAt = nextStamp(s.now(), doc.LastUpdatedAt)
		doc.LastUpdatedByIdentity = s.identity

		patch, err := document.NewPatch(doc, field, document.FieldLastUpdatedAt, document.FieldLastUpdatedByIdentity)
		if err != nil {
			return err
		}
		if err := s.store.Update(ctx, target, patch); err != nil {
			return fmt.Errorf("update %s: %w", target, err)
		}
		return nil
	}})
}

func (s *Session) writeDone(t writeTask, err error) {
	ctx := context.Background()

	if err == nil {
		remoteWritesTotal.WithLabelValues(string(t.kind), "ok").Inc()
		s.mu.Lock()
		s.lastSyncAt = s.now()
		s.lastError = ""
		s.mu.Unlock()
		return
	}

	remoteWritesTotal.WithLabelValues(string(t.kind), "error").Inc()
	s.mu.Lock()
	closed := s.closed
	s.lastError = err.Error()
	s.mu.Unlock()
	if closed {
		return
	}

	switch t.kind {
	case writeMirror:
		partialMirrorFailuresTotal.Inc()
		s.logger.Warn(ctx, "partial mirror failure", "error", err)
	default:
		s.logger.Warn(ctx, "remote write failed", "kind", string(t.kind), "error", err)
	}
	s.changed()
}

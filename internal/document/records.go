package document

import (
	"slices"
	"time"
)

// Record is anything stored in an id-keyed collection.
type Record interface {
	RecordID() string
}

func (n Note) RecordID() string          { return n.ID }
func (m Message) RecordID() string       { return m.ID }
func (e CalendarEvent) RecordID() string { return e.ID }
func (p PinnedDate) RecordID() string    { return p.ID }
func (n Notification) RecordID() string  { return n.ID }
func (p Photo) RecordID() string         { return p.ID }

// IndexOf returns the position of the record with id, or -1.
func IndexOf[T Record](list []T, id string) int {
	return slices.IndexFunc(list, func(r T) bool { return r.RecordID() == id })
}

// Upsert replaces the record sharing rec's id, or appends rec when there is
// none. Ids are the join key between both copies of a mirrored collection,
// so the same call converges either document.
func Upsert[T Record](list []T, rec T) []T {
	if i := IndexOf(list, rec.RecordID()); i >= 0 {
		list[i] = rec
		return list
	}
	return append(list, rec)
}

// Remove deletes the record with id. Removing an absent id is a no-op and
// reports false.
func Remove[T Record](list []T, id string) ([]T, bool) {
	i := IndexOf(list, id)
	if i < 0 {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}

// FilterExpiredMessages keeps messages created strictly after cutoff and
// reports how many were dropped. The input slice is not modified.
func FilterExpiredMessages(msgs []Message, cutoff time.Time) ([]Message, int) {
	kept := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.CreatedAt.After(cutoff) {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	return kept, len(msgs) - len(kept)
}

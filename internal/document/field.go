package document

import "slices"

// Field names a top-level member of a Document as it appears on the wire.
type Field string

const (
	FieldIdentity              Field = "identity"
	FieldEmail                 Field = "email"
	FieldPartnerIdentity       Field = "partnerIdentity"
	FieldConnectedAt           Field = "connectedAt"
	FieldMoods                 Field = "moods"
	FieldNotes                 Field = "notes"
	FieldSharedNotes           Field = "sharedNotes"
	FieldMessages              Field = "messages"
	FieldSharedCalendarEvents  Field = "sharedCalendarEvents"
	FieldPinnedDates           Field = "pinnedDates"
	FieldNotifications         Field = "notifications"
	FieldPhotos                Field = "photos"
	FieldLocation              Field = "location"
	FieldSettings              Field = "settings"
	FieldCreatedAt             Field = "createdAt"
	FieldLastUpdatedAt         Field = "lastUpdatedAt"
	FieldLastUpdatedByIdentity Field = "lastUpdatedByIdentity"
)

// Class tells the writer how a mutation of the field reaches the other party.
type Class int

const (
	// ClassPrivate fields live in the owner's document only and are persisted
	// through the debounced write.
	ClassPrivate Class = iota
	// ClassMirrored fields are copied by record id into the partner's document.
	ClassMirrored
	// ClassMailbox fields are written by the sender into the recipient's
	// document only.
	ClassMailbox
)

func (c Class) String() string {
	switch c {
	case ClassMirrored:
		return "mirrored"
	case ClassMailbox:
		return "mailbox"
	default:
		return "private"
	}
}

var allFields = []Field{
	FieldIdentity, FieldEmail, FieldPartnerIdentity, FieldConnectedAt,
	FieldMoods, FieldNotes, FieldSharedNotes, FieldMessages,
	FieldSharedCalendarEvents, FieldPinnedDates, FieldNotifications,
	FieldPhotos, FieldLocation, FieldSettings,
	FieldCreatedAt, FieldLastUpdatedAt, FieldLastUpdatedByIdentity,
}

// Fields returns every known document field.
func Fields() []Field {
	return slices.Clone(allFields)
}

// Known reports whether f is a document field.
func (f Field) Known() bool {
	return slices.Contains(allFields, f)
}

func (f Field) Class() Class {
	switch f {
	case FieldSharedNotes, FieldSharedCalendarEvents, FieldPinnedDates:
		return ClassMirrored
	case FieldNotifications:
		return ClassMailbox
	default:
		return ClassPrivate
	}
}

// ForeignWritable reports whether somebody other than the document owner may
// write f: mirrored collections, the mailbox, and the attribution stamps that
// accompany those writes.
func ForeignWritable(f Field) bool {
	switch f {
	case FieldLastUpdatedAt, FieldLastUpdatedByIdentity:
		return true
	}
	return f.Class() != ClassPrivate
}

// DebouncedFields are the fields the owner writes back in a debounced
// persist: private data only. The identity keys and the link fields are
// written by the operations that change them, and mirrored and mailbox
// fields are written per mutation since other users write them too.
func DebouncedFields() []Field {
	out := make([]Field, 0, len(allFields))
	for _, f := range allFields {
		if f.Class() != ClassPrivate {
			continue
		}
		switch f {
		case FieldIdentity, FieldEmail, FieldPartnerIdentity, FieldConnectedAt,
			FieldCreatedAt, FieldLastUpdatedAt, FieldLastUpdatedByIdentity:
			continue
		}
		out = append(out, f)
	}
	return out
}

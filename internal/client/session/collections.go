package session

import (
	"github.com/dmitrijs2005/duosync/internal/document"
)

// collection selects an id-keyed slice inside a document.
type collection[T document.Record] func(d *document.Document) *[]T

var (
	notesOf         collection[document.Note]          = func(d *document.Document) *[]document.Note { return &d.Notes }
	sharedNotesOf   collection[document.Note]          = func(d *document.Document) *[]document.Note { return &d.SharedNotes }
	eventsOf        collection[document.CalendarEvent] = func(d *document.Document) *[]document.CalendarEvent { return &d.SharedCalendarEvents }
	pinnedDatesOf   collection[document.PinnedDate]    = func(d *document.Document) *[]document.PinnedDate { return &d.PinnedDates }
	notificationsOf collection[document.Notification]  = func(d *document.Document) *[]document.Notification { return &d.Notifications }
	photosOf        collection[document.Photo]         = func(d *document.Document) *[]document.Photo { return &d.Photos }
)

func upsertRecord[T document.Record](field document.Field, col collection[T], rec T) Mutation {
	return Mutation{
		Field: field,
		Transform: func(d *document.Document) error {
			p := col(d)
			*p = document.Upsert(*p, rec)
			return nil
		},
	}
}

// updateRecord edits an existing local record with edit. The partner copy
// receives the edited record as an upsert, so a record missing on that side
// is recreated under the same id. The edited record is stored in *out.
func updateRecord[T document.Record](field document.Field, col collection[T], id string, edit func(*T) error, out *T) Mutation {
	return Mutation{
		Field: field,
		Transform: func(d *document.Document) error {
			p := col(d)
			i := document.IndexOf(*p, id)
			if i < 0 {
				return ErrRecordNotFound
			}
			rec := (*p)[i]
			if err := edit(&rec); err != nil {
				return err
			}
			(*p)[i] = rec
			*out = rec
			return nil
		},
		Mirror: func(d *document.Document) error {
			p := col(d)
			*p = document.Upsert(*p, *out)
			return nil
		},
	}
}

// deleteRecord removes id locally, failing if it is unknown, and removes it
// from the partner copy if present there.
func deleteRecord[T document.Record](field document.Field, col collection[T], id string) Mutation {
	return Mutation{
		Field: field,
		Transform: func(d *document.Document) error {
			p := col(d)
			var ok bool
			if *p, ok = document.Remove(*p, id); !ok {
				return ErrRecordNotFound
			}
			return nil
		},
		Mirror: func(d *document.Document) error {
			p := col(d)
			*p, _ = document.Remove(*p, id)
			return nil
		},
	}
}

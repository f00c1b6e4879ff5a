package session

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
)

// NoteInput carries the editable part of a note. Only the content member
// matching Kind is kept.
type NoteInput struct {
	Title   string
	Kind    document.NoteKind
	Text    string
	Items   []document.ChecklistItem
	Drawing string
}

func (in NoteInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: note title is required", ErrInvalidInput)
	}
	if !in.Kind.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, document.ErrUnknownNoteKind)
	}
	return nil
}

func (s *Session) applyNoteInput(n *document.Note, in NoteInput) {
	n.Title = strings.TrimSpace(in.Title)
	n.Kind = in.Kind
	n.Text, n.Items, n.Drawing = "", nil, ""
	switch in.Kind {
	case document.NoteText:
		n.Text = in.Text
	case document.NoteChecklist:
		n.Items = slices.Clone(in.Items)
		for i := range n.Items {
			if n.Items[i].ID == "" {
				n.Items[i].ID = s.opts.newID()
			}
		}
	case document.NoteDrawing:
		n.Drawing = in.Drawing
	}
	n.LastModifiedAt = s.now()
}

func (s *Session) newNote(in NoteInput) (document.Note, error) {
	if err := in.validate(); err != nil {
		return document.Note{}, err
	}
	n := document.Note{
		ID:             s.opts.newID(),
		AuthorIdentity: s.identity,
		CreatedAt:      s.now(),
	}
	s.applyNoteInput(&n, in)
	return n, nil
}

// SetMood records mood for an ISO date; a nil mood clears the date.
func (s *Session) SetMood(ctx context.Context, date string, mood *document.Mood) error {
	if err := document.ValidateDate(date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if mood != nil {
		if _, err := document.ParseMood(string(*mood)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return s.Apply(ctx, Mutation{
		Field: document.FieldMoods,
		Transform: func(d *document.Document) error {
			if mood == nil {
				delete(d.Moods, date)
				return nil
			}
			if d.Moods == nil {
				d.Moods = make(map[string]document.Mood)
			}
			d.Moods[date] = *mood
			return nil
		},
	})
}

func (s *Session) AddNote(ctx context.Context, in NoteInput) (document.Note, error) {
	n, err := s.newNote(in)
	if err != nil {
		return document.Note{}, err
	}
	return n, s.Apply(ctx, upsertRecord(document.FieldNotes, notesOf, n))
}

func (s *Session) UpdateNote(ctx context.Context, id string, in NoteInput) (document.Note, error) {
	if err := in.validate(); err != nil {
		return document.Note{}, err
	}
	var out document.Note
	m := updateRecord(document.FieldNotes, notesOf, id, func(n *document.Note) error {
		s.applyNoteInput(n, in)
		return nil
	}, &out)
	return out, s.Apply(ctx, m)
}

func (s *Session) DeleteNote(ctx context.Context, id string) error {
	return s.Apply(ctx, deleteRecord(document.FieldNotes, notesOf, id))
}

// AddSharedNote adds a note to the user's shared notes and mirrors it, under
// the same id, into the partner's document.
func (s *Session) AddSharedNote(ctx context.Context, in NoteInput) (document.Note, error) {
	n, err := s.newNote(in)
	if err != nil {
		return document.Note{}, err
	}
	return n, s.Apply(ctx, upsertRecord(document.FieldSharedNotes, sharedNotesOf, n))
}

func (s *Session) UpdateSharedNote(ctx context.Context, id string, in NoteInput) (document.Note, error) {
	if err := in.validate(); err != nil {
		return document.Note{}, err
	}
	var out document.Note
	m := updateRecord(document.FieldSharedNotes, sharedNotesOf, id, func(n *document.Note) error {
		s.applyNoteInput(n, in)
		return nil
	}, &out)
	return out, s.Apply(ctx, m)
}

func (s *Session) DeleteSharedNote(ctx context.Context, id string) error {
	return s.Apply(ctx, deleteRecord(document.FieldSharedNotes, sharedNotesOf, id))
}

// ToggleChecklistItem flips one item of a shared checklist note.
func (s *Session) ToggleChecklistItem(ctx context.Context, noteID, itemID string) (document.Note, error) {
	var out document.Note
	m := updateRecord(document.FieldSharedNotes, sharedNotesOf, noteID, func(n *document.Note) error {
		if n.Kind != document.NoteChecklist {
			return fmt.Errorf("%w: note %s is not a checklist", ErrInvalidInput, noteID)
		}
		i := slices.IndexFunc(n.Items, func(it document.ChecklistItem) bool { return it.ID == itemID })
		if i < 0 {
			return ErrRecordNotFound
		}
		n.Items = slices.Clone(n.Items)
		n.Items[i].Completed = !n.Items[i].Completed
		n.LastModifiedAt = s.now()
		return nil
	}, &out)
	return out, s.Apply(ctx, m)
}

type CalendarEventInput struct {
	Title       string
	Date        string
	Time        string
	Description string
}

func (in CalendarEventInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	if err := document.ValidateDate(in.Date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (s *Session) AddCalendarEvent(ctx context.Context, in CalendarEventInput) (document.CalendarEvent, error) {
	if err := in.validate(); err != nil {
		return document.CalendarEvent{}, err
	}
	now := s.now()
	ev := document.CalendarEvent{
		ID:             s.opts.newID(),
		Title:          strings.TrimSpace(in.Title),
		Date:           in.Date,
		Time:           in.Time,
		Description:    in.Description,
		AuthorIdentity: s.identity,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
	return ev, s.Apply(ctx, upsertRecord(document.FieldSharedCalendarEvents, eventsOf, ev))
}

func (s *Session) UpdateCalendarEvent(ctx context.Context, id string, in CalendarEventInput) (document.CalendarEvent, error) {
	if err := in.validate(); err != nil {
		return document.CalendarEvent{}, err
	}
	var out document.CalendarEvent
	m := updateRecord(document.FieldSharedCalendarEvents, eventsOf, id, func(ev *document.CalendarEvent) error {
		ev.Title = strings.TrimSpace(in.Title)
		ev.Date = in.Date
		ev.Time = in.Time
		ev.Description = in.Description
		ev.LastModifiedAt = s.now()
		return nil
	}, &out)
	return out, s.Apply(ctx, m)
}

func (s *Session) DeleteCalendarEvent(ctx context.Context, id string) error {
	return s.Apply(ctx, deleteRecord(document.FieldSharedCalendarEvents, eventsOf, id))
}

func (s *Session) AddPinnedDate(ctx context.Context, title, date string) (document.PinnedDate, error) {
	if strings.TrimSpace(title) == "" {
		return document.PinnedDate{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := document.ValidateDate(date); err != nil {
		return document.PinnedDate{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	p := document.PinnedDate{
		ID:             s.opts.newID(),
		Title:          strings.TrimSpace(title),
		Date:           date,
		AuthorIdentity: s.identity,
		CreatedAt:      s.now(),
	}
	return p, s.Apply(ctx, upsertRecord(document.FieldPinnedDates, pinnedDatesOf, p))
}

func (s *Session) DeletePinnedDate(ctx context.Context, id string) error {
	return s.Apply(ctx, deleteRecord(document.FieldPinnedDates, pinnedDatesOf, id))
}

// SendMessage appends a message to the user's own document, where the
// partner reads it. Expired messages are dropped in the same commit.
func (s *Session) SendMessage(ctx context.Context, text string) (document.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return document.Message{}, fmt.Errorf("%w: empty message", ErrInvalidInput)
	}
	msg := document.Message{
		ID:             s.opts.newID(),
		Text:           text,
		SenderIdentity: s.identity,
		CreatedAt:      s.now(),
	}

	var dropped int
	err := s.Apply(ctx, Mutation{
		Field: document.FieldMessages,
		Transform: func(d *document.Document) error {
			d.Messages = append(d.Messages, msg)
			d.Messages, dropped = document.FilterExpiredMessages(d.Messages, s.cutoff())
			return nil
		},
	})
	if err == nil && dropped > 0 {
		messagesEvictedTotal.Add(float64(dropped))
	}
	return msg, err
}

// SendNotificationToPartner drops a notification into the partner's inbox.
func (s *Session) SendNotificationToPartner(ctx context.Context, title, message string) (document.Notification, error) {
	if strings.TrimSpace(title) == "" {
		return document.Notification{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return document.Notification{}, ErrNotSignedIn
	}
	partner := s.own.PartnerIdentity
	s.mu.Unlock()
	if partner == "" {
		return document.Notification{}, ErrNoPartner
	}

	n := document.Notification{
		ID:           s.opts.newID(),
		Title:        strings.TrimSpace(title),
		Message:      message,
		FromIdentity: s.identity,
		CreatedAt:    s.now(),
	}
	m := upsertRecord(document.FieldNotifications, notificationsOf, n)
	m.Recipient = partner
	return n, s.Apply(ctx, m)
}

func (s *Session) MarkNotificationRead(ctx context.Context, id string) error {
	var out document.Notification
	return s.Apply(ctx, updateRecord(document.FieldNotifications, notificationsOf, id, func(n *document.Notification) error {
		n.Read = true
		return nil
	}, &out))
}

func (s *Session) DeleteNotification(ctx context.Context, id string) error {
	return s.Apply(ctx, deleteRecord(document.FieldNotifications, notificationsOf, id))
}

// UpdateLocation overwrites the stored location. A zero CapturedAt is set to
// the current time.
func (s *Session) UpdateLocation(ctx context.Context, loc document.Location) error {
	if math.Abs(loc.Latitude) > 90 || math.Abs(loc.Longitude) > 180 || loc.Accuracy < 0 {
		return fmt.Errorf("%w: location out of range", ErrInvalidInput)
	}
	if loc.CapturedAt.IsZero() {
		loc.CapturedAt = s.now()
	}
	return s.Apply(ctx, Mutation{
		Field: document.FieldLocation,
		Transform: func(d *document.Document) error {
			d.Location = &loc
			return nil
		},
	})
}

// SettingsPatch lists settings to change; nil members are left alone.
type SettingsPatch struct {
	DisplayName          *string
	DashboardWidgets     []string
	NotificationsEnabled *bool
	Theme                *string
}

func (s *Session) UpdateSettings(ctx context.Context, p SettingsPatch) error {
	return s.Apply(ctx, Mutation{
		Field: document.FieldSettings,
		Transform: func(d *document.Document) error {
			if p.DisplayName != nil {
				d.Settings.DisplayName = strings.TrimSpace(*p.DisplayName)
			}
			if p.DashboardWidgets != nil {
				d.Settings.DashboardWidgets = slices.Compact(slices.Clone(p.DashboardWidgets))
			}
			if p.NotificationsEnabled != nil {
				d.Settings.NotificationsEnabled = *p.NotificationsEnabled
			}
			if p.Theme != nil {
				d.Settings.Theme = *p.Theme
			}
			return nil
		},
	})
}

type PhotoInput struct {
	StorageKey string
	Filename   string
	Size       int64
	Location   *document.Location
}

// AddPhoto records an uploaded photo.
func (s *Session) AddPhoto(ctx context.Context, in PhotoInput) (document.Photo, error) {
	if in.StorageKey == "" {
		return document.Photo{}, fmt.Errorf("%w: storage key is required", ErrInvalidInput)
	}
	p := document.Photo{
		ID:             s.opts.newID(),
		StorageKey:     in.StorageKey,
		Filename:       in.Filename,
		Size:           in.Size,
		Location:       in.Location,
		AuthorIdentity: s.identity,
		CreatedAt:      s.now(),
	}
	return p, s.Apply(ctx, upsertRecord(document.FieldPhotos, photosOf, p))
}

func (s *Session) DeletePhoto(ctx context.Context, id string) error {
	return s.Apply(ctx, deleteRecord(document.FieldPhotos, photosOf, id))
}

// recentMessages merges both users' messages, oldest first, skipping
// expired ones.
func recentMessages(own, partner *document.Document, cutoff time.Time) []document.Message {
	var all []document.Message
	for _, d := range []*document.Document{own, partner} {
		if d == nil {
			continue
		}
		kept, _ := document.FilterExpiredMessages(d.Messages, cutoff)
		all = append(all, kept...)
	}
	slices.SortStableFunc(all, func(a, b document.Message) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return all
}

// Conversation returns the live messages of both users in time order.
func (s *Session) Conversation() ([]document.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrNotSignedIn
	}
	return recentMessages(s.own, s.partner, s.cutoff()), nil
}

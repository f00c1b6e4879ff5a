// Package document defines the per-user document shared by the sync client
// and the document store: its records, field classification, and the
// top-level patch format used for partial updates.
package document

import (
	"errors"
	"maps"
	"slices"
	"time"
)

var (
	ErrUnknownMood     = errors.New("unknown mood")
	ErrInvalidDate     = errors.New("invalid date, want YYYY-MM-DD")
	ErrUnknownNoteKind = errors.New("unknown note kind")
)

// DateLayout is the format of calendar-date keys and fields.
const DateLayout = "2006-01-02"

// DefaultWidget is enabled on the dashboard of every new document.
const DefaultWidget = "mood"

// Document is one user's entire synced state.
type Document struct {
	Identity        Identity   `json:"identity"`
	Email           string     `json:"email,omitempty"`
	PartnerIdentity Identity   `json:"partnerIdentity,omitempty"`
	ConnectedAt     *time.Time `json:"connectedAt,omitempty"`

	Moods                map[string]Mood `json:"moods,omitempty"`
	Notes                []Note          `json:"notes,omitempty"`
	SharedNotes          []Note          `json:"sharedNotes,omitempty"`
	Messages             []Message       `json:"messages,omitempty"`
	SharedCalendarEvents []CalendarEvent `json:"sharedCalendarEvents,omitempty"`
	PinnedDates          []PinnedDate    `json:"pinnedDates,omitempty"`
	Notifications        []Notification  `json:"notifications,omitempty"`
	Photos               []Photo         `json:"photos,omitempty"`
	Location             *Location       `json:"location,omitempty"`
	Settings             Settings        `json:"settings"`

	CreatedAt             time.Time `json:"createdAt"`
	LastUpdatedAt         time.Time `json:"lastUpdatedAt"`
	LastUpdatedByIdentity Identity  `json:"lastUpdatedByIdentity,omitempty"`
}

// New returns the document created on a user's first sign-in.
func New(id Identity, email string, now time.Time) *Document {
	return &Document{
		Identity: id,
		Email:    email,
		Settings: Settings{
			DashboardWidgets:     []string{DefaultWidget},
			NotificationsEnabled: true,
			Theme:                "light",
		},
		CreatedAt:             now,
		LastUpdatedAt:         now,
		LastUpdatedByIdentity: id,
	}
}

type Message struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	SenderIdentity Identity  `json:"senderIdentity"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CalendarEvent struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	Time           string    `json:"time,omitempty"`
	Description    string    `json:"description,omitempty"`
	AuthorIdentity Identity  `json:"authorIdentity"`
	CreatedAt      time.Time `json:"createdAt"`
	LastModifiedAt time.Time `json:"lastModifiedAt"`
}

type PinnedDate struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	AuthorIdentity Identity  `json:"authorIdentity"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Notification struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	FromIdentity Identity  `json:"fromIdentity"`
	CreatedAt    time.Time `json:"createdAt"`
	Read         bool      `json:"read"`
}

type Location struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	CapturedAt time.Time `json:"capturedAt"`
}

// Photo is the metadata of an uploaded image; the bytes live in object
// storage under StorageKey.
type Photo struct {
	ID             string    `json:"id"`
	StorageKey     string    `json:"storageKey"`
	Filename       string    `json:"filename,omitempty"`
	Size           int64     `json:"size,omitempty"`
	Location       *Location `json:"location,omitempty"`
	AuthorIdentity Identity  `json:"authorIdentity"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Settings struct {
	DisplayName          string   `json:"displayName,omitempty"`
	DashboardWidgets     []string `json:"dashboardWidgets,omitempty"`
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	Theme                string   `json:"theme,omitempty"`
}

// Mood is one of a fixed set of tags recorded per calendar date.
type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodMeh      Mood = "meh"
	MoodDown     Mood = "down"
	MoodSad      Mood = "sad"
	MoodTerrible Mood = "terrible"
	MoodTired    Mood = "tired"
	MoodSick     Mood = "sick"
	MoodStressed Mood = "stressed"
	MoodLoved    Mood = "loved"
	MoodAmazing  Mood = "amazing"
)

var moods = []Mood{
	MoodGreat, MoodGood, MoodOkay, MoodMeh, MoodDown, MoodSad,
	MoodTerrible, MoodTired, MoodSick, MoodStressed, MoodLoved, MoodAmazing,
}

// Moods lists every valid mood in display order.
func Moods() []Mood { return slices.Clone(moods) }

func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !slices.Contains(moods, m) {
		return "", ErrUnknownMood
	}
	return m, nil
}

// ValidateDate checks that s is an ISO calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.ConnectedAt = clonePtr(d.ConnectedAt)
	c.Moods = maps.Clone(d.Moods)
	c.Notes = cloneNotes(d.Notes)
	c.SharedNotes = cloneNotes(d.SharedNotes)
	c.Messages = slices.Clone(d.Messages)
	c.SharedCalendarEvents = slices.Clone(d.SharedCalendarEvents)
	c.PinnedDates = slices.Clone(d.PinnedDates)
	c.Notifications = slices.Clone(d.Notifications)
	c.Location = clonePtr(d.Location)
	c.Settings.DashboardWidgets = slices.Clone(d.Settings.DashboardWidgets)

	if d.Photos != nil {
		c.Photos = make([]Photo, len(d.Photos))
		for i, p := range d.Photos {
			p.Location = clonePtr(p.Location)
			c.Photos[i] = p
		}
	}
	return &c
}

func cloneNotes(in []Note) []Note {
	if in == nil {
		return nil
	}
	out := make([]Note, len(in))
	for i, n := range in {
		n.Items = slices.Clone(n.Items)
		out[i] = n
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

package document

import (
	"encoding/json"
	"fmt"
	"time"
)

type NoteKind string

const (
	NoteText      NoteKind = "text"
	NoteChecklist NoteKind = "checklist"
	NoteDrawing   NoteKind = "drawing"
)

func (k NoteKind) Valid() bool {
	switch k {
	case NoteText, NoteChecklist, NoteDrawing:
		return true
	}
	return false
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Note is a private or shared note. Exactly one content member is
// meaningful, selected by Kind: Text for text notes, Items for checklists,
// Drawing (an encoded image, usually a data URL) for drawings. On the wire
// they all travel in a single "content" member.
type Note struct {
	ID             string
	Title          string
	Kind           NoteKind
	Text           string
	Items          []ChecklistItem
	Drawing        string
	AuthorIdentity Identity
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

type noteWire struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Kind           NoteKind        `json:"kind"`
	Content        json.RawMessage `json:"content"`
	AuthorIdentity Identity        `json:"authorIdentity"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastModifiedAt time.Time       `json:"lastModifiedAt"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	var content any
	switch n.Kind {
	case NoteText:
		content = n.Text
	case NoteChecklist:
		items := n.Items
		if items == nil {
			items = []ChecklistItem{}
		}
		content = items
	case NoteDrawing:
		content = n.Drawing
	default:
		return nil, fmt.Errorf("note %s: %w: %q", n.ID, ErrUnknownNoteKind, n.Kind)
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}

	return json.Marshal(noteWire{
		ID:             n.ID,
		Title:          n.Title,
		Kind:           n.Kind,
		Content:        raw,
		AuthorIdentity: n.AuthorIdentity,
		CreatedAt:      n.CreatedAt,
		LastModifiedAt: n.LastModifiedAt,
	})
}

func (n *Note) UnmarshalJSON(b []byte) error {
	var w noteWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*n = Note{
		ID:             w.ID,
		Title:          w.Title,
		Kind:           w.Kind,
		AuthorIdentity: w.AuthorIdentity,
		CreatedAt:      w.CreatedAt,
		LastModifiedAt: w.LastModifiedAt,
	}

	if len(w.Content) == 0 || string(w.Content) == "null" {
		if !w.Kind.Valid() {
			return fmt.Errorf("note %s: %w: %q", w.ID, ErrUnknownNoteKind, w.Kind)
		}
		return nil
	}

	switch w.Kind {
	case NoteText:
		return json.Unmarshal(w.Content, &n.Text)
	case NoteChecklist:
		return json.Unmarshal(w.Content, &n.Items)
	case NoteDrawing:
		return json.Unmarshal(w.Content, &n.Drawing)
	default:
		return fmt.Errorf("note %s: %w: %q", w.ID, ErrUnknownNoteKind, w.Kind)
	}
}

// ContentEqual reports whether two notes carry the same kind and content.
func (n Note) ContentEqual(o Note) bool {
	if n.Kind != o.Kind || n.Text != o.Text || n.Drawing != o.Drawing || len(n.Items) != len(o.Items) {
		return false
	}
	for i := range n.Items {
		if n.Items[i] != o.Items[i] {
			return false
		}
	}
	return true
}

package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_ContentShapeFollowsKind(t *testing.T) {
	tests := []struct {
		name    string
		note    Note
		content string
	}{
		{
			name:    "text",
			note:    Note{ID: "n1", Title: "Trip", Kind: NoteText, Text: "Paris"},
			content: `"Paris"`,
		},
		{
			name: "checklist",
			note: Note{ID: "n2", Title: "Packing", Kind: NoteChecklist, Items: []ChecklistItem{
				{ID: "i1", Text: "passport", Completed: true},
			}},
			content: `[{"id":"i1","text":"passport","completed":true}]`,
		},
		{
			name:    "empty checklist",
			note:    Note{ID: "n3", Kind: NoteChecklist},
			content: `[]`,
		},
		{
			name:    "drawing",
			note:    Note{ID: "n4", Kind: NoteDrawing, Drawing: "data:image/png;base64,AAAA"},
			content: `"data:image/png;base64,AAAA"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.note)
			require.NoError(t, err)

			var wire map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(b, &wire))
			assert.JSONEq(t, tt.content, string(wire["content"]))

			var back Note
			require.NoError(t, json.Unmarshal(b, &back))
			assert.True(t, tt.note.ContentEqual(back))
			assert.Equal(t, tt.note.ID, back.ID)
		})
	}
}

func TestNote_UnknownKind(t *testing.T) {
	_, err := json.Marshal(Note{ID: "x", Kind: "voice"})
	assert.ErrorIs(t, err, ErrUnknownNoteKind)

	var n Note
	err = json.Unmarshal([]byte(`{"id":"x","kind":"voice","content":"?"}`), &n)
	assert.ErrorIs(t, err, ErrUnknownNoteKind)
}

func TestNote_ContentEqual(t *testing.T) {
	a := Note{Kind: NoteChecklist, Items: []ChecklistItem{{ID: "1", Text: "a"}}}
	b := Note{Kind: NoteChecklist, Items: []ChecklistItem{{ID: "1", Text: "a", Completed: true}}}

	assert.True(t, a.ContentEqual(a))
	assert.False(t, a.ContentEqual(b))
	assert.False(t, a.ContentEqual(Note{Kind: NoteText}))
}

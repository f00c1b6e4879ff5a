package document

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	d := New("a@x", "a@x", t0)

	assert.Equal(t, Identity("a@x"), d.Identity)
	assert.Equal(t, []string{DefaultWidget}, d.Settings.DashboardWidgets)
	assert.True(t, d.CreatedAt.Equal(t0))
	assert.True(t, d.LastUpdatedAt.Equal(t0))
	assert.Equal(t, Identity("a@x"), d.LastUpdatedByIdentity)
	assert.Empty(t, d.PartnerIdentity)
}

func TestParseMood(t *testing.T) {
	for _, m := range Moods() {
		got, err := ParseMood(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Len(t, Moods(), 12)

	_, err := ParseMood("ecstatic")
	assert.ErrorIs(t, err, ErrUnknownMood)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-02-14"))
	assert.ErrorIs(t, ValidateDate("14/02/2026"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("2026-02-30"), ErrInvalidDate)
}

func TestClone_IsDeep(t *testing.T) {
	connected := t0
	d := New("a@x", "a@x", t0)
	d.ConnectedAt = &connected
	d.Moods = map[string]Mood{"2026-02-14": MoodLoved}
	d.SharedNotes = []Note{{ID: "n1", Kind: NoteChecklist, Items: []ChecklistItem{{ID: "i1", Text: "tickets"}}}}
	d.Messages = []Message{{ID: "m1", Text: "hi"}}
	d.Location = &Location{Latitude: 1}
	d.Photos = []Photo{{ID: "p1", Location: &Location{Latitude: 2}}}

	c := d.Clone()
	require.Equal(t, d, c)

	c.Moods["2026-02-15"] = MoodSad
	c.SharedNotes[0].Items[0].Completed = true
	c.Messages[0].Text = "changed"
	c.Location.Latitude = 9
	c.Photos[0].Location.Latitude = 9
	c.Settings.DashboardWidgets[0] = "photos"
	*c.ConnectedAt = t0.Add(time.Hour)

	assert.Len(t, d.Moods, 1)
	assert.False(t, d.SharedNotes[0].Items[0].Completed)
	assert.Equal(t, "hi", d.Messages[0].Text)
	assert.Equal(t, 1.0, d.Location.Latitude)
	assert.Equal(t, 2.0, d.Photos[0].Location.Latitude)
	assert.Equal(t, DefaultWidget, d.Settings.DashboardWidgets[0])
	assert.True(t, d.ConnectedAt.Equal(t0))

	var nilDoc *Document
	assert.Nil(t, nilDoc.Clone())
}

func TestDocument_JSONShape(t *testing.T) {
	d := New("a@x", "a@x", t0)
	d.PartnerIdentity = "b@x"

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	assert.Equal(t, "b@x", m["partnerIdentity"])
	assert.Equal(t, "a@x", m["lastUpdatedByIdentity"])
	assert.Contains(t, m, "lastUpdatedAt")
	assert.NotContains(t, m, "messages", "empty collections are omitted")
}

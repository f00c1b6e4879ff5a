package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpsert(t *testing.T) {
	list := []PinnedDate{{ID: "1", Title: "first date"}}

	list = Upsert(list, PinnedDate{ID: "2", Title: "moved in"})
	assert.Len(t, list, 2)

	list = Upsert(list, PinnedDate{ID: "1", Title: "first kiss"})
	assert.Len(t, list, 2)
	assert.Equal(t, "first kiss", list[0].Title)
}

func TestRemove(t *testing.T) {
	list := []CalendarEvent{{ID: "1"}, {ID: "2"}}

	list, ok := Remove(list, "1")
	assert.True(t, ok)
	assert.Equal(t, []CalendarEvent{{ID: "2"}}, list)

	list, ok = Remove(list, "missing")
	assert.False(t, ok)
	assert.Len(t, list, 1)
}

func TestFilterExpiredMessages(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-24 * time.Hour)

	msgs := []Message{
		{ID: "1", CreatedAt: now.Add(-30 * time.Hour)},
		{ID: "2", CreatedAt: now.Add(-time.Hour)},
		{ID: "3", CreatedAt: cutoff},
	}

	kept, dropped := FilterExpiredMessages(msgs, cutoff)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, []Message{{ID: "2", CreatedAt: now.Add(-time.Hour)}}, kept)
	assert.Len(t, msgs, 3, "input must not be modified")

	kept, dropped = FilterExpiredMessages(nil, cutoff)
	assert.Nil(t, kept)
	assert.Zero(t, dropped)
}

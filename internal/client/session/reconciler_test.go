package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnRemoteChange_StaleSnapshotDiscarded(t *testing.T) {
	h := newHarness(t)
	h.seed("a@x")
	a := h.signIn("a@x")

	_, err := a.SendMessage(context.Background(), "local")
	require.NoError(t, err)
	local := snapshot(t, a).Own

	for _, stamp := range []time.Time{local.LastUpdatedAt, local.LastUpdatedAt.Add(-time.Second)} {
		before := testutil.ToFloat64(staleMergesTotal)

		old := document.New("a@x", "a@x", t0)
		old.LastUpdatedAt = stamp
		old.Settings.DisplayName = "stale"
		a.OnRemoteChange("a@x", old)

		assert.Equal(t, local, snapshot(t, a).Own)
		assert.Equal(t, before+1, testutil.ToFloat64(staleMergesTotal))
	}
}

func TestOnRemoteChange_NewerSnapshotReplacesMirror(t *testing.T) {
	h := newHarness(t)
	h.seed("a@x")
	a := h.signIn("a@x")

	newer := document.New("a@x", "a@x", t0)
	newer.LastUpdatedAt = t0.Add(time.Minute)
	newer.LastUpdatedByIdentity = "b@x"
	newer.PinnedDates = []document.PinnedDate{{ID: "p1", Title: "Anniversary", Date: "2024-05-01"}}

	a.OnRemoteChange("a@x", newer)

	own := snapshot(t, a).Own
	assert.Equal(t, newer, own)

	a.OnRemoteChange("a@x", newer.Clone())
	assert.Equal(t, own, snapshot(t, a).Own, "replaying the same snapshot is a no-op")
	assert.False(t, a.debounce.pending())
}

func TestOnRemoteChange_FiltersExpiredMessages(t *testing.T) {
	h := newHarness(t)
	h.seed("a@x")
	a := h.signIn("a@x")

	incoming := document.New("a@x", "a@x", t0)
	incoming.LastUpdatedAt = t0.Add(time.Minute)
	incoming.Messages = []document.Message{
		{ID: "old", Text: "yesterday", SenderIdentity: "a@x", CreatedAt: t0.Add(-25 * time.Hour)},
		{ID: "new", Text: "today", SenderIdentity: "a@x", CreatedAt: t0.Add(-time.Hour)},
	}

	a.OnRemoteChange("a@x", incoming)

	own := snapshot(t, a).Own
	require.Len(t, own.Messages, 1)
	assert.Equal(t, "new", own.Messages[0].ID)
	assert.True(t, own.LastUpdatedAt.After(incoming.LastUpdatedAt))
	assert.True(t, a.debounce.pending(), "eviction is persisted")

	flush(t, a)
	require.Len(t, h.remote("a@x").Messages, 1)
}

func TestOnRemoteChange_PartnerSnapshotAlwaysReplaces(t *testing.T) {
	h := newHarness(t)
	h.seed("b@x")
	h.seed("a@x", func(d *document.Document) { d.PartnerIdentity = "b@x" })
	a := h.signIn("a@x")

	older := document.New("b@x", "b@x", t0.Add(-time.Hour))
	older.Settings.DisplayName = "Bea"
	a.OnRemoteChange("b@x", older)

	snap := snapshot(t, a)
	require.NotNil(t, snap.Partner)
	assert.Equal(t, "Bea", snap.Partner.Settings.DisplayName)
}

func TestOnRemoteChange_UnrelatedOwnerIgnored(t *testing.T) {
	h := newHarness(t)
	h.seed("a@x")
	a := h.signIn("a@x")
	before := snapshot(t, a)

	a.OnRemoteChange("c@x", document.New("c@x", "c@x", t0.Add(time.Hour)))
	a.OnRemoteChange("a@x", nil)

	after := snapshot(t, a)
	assert.Equal(t, before.Own, after.Own)
	assert.Nil(t, after.Partner)
}

func TestOnRemoteChange_PartnerChangedElsewhere(t *testing.T) {
	h := newHarness(t)
	h.seed("c@x", func(d *document.Document) { d.Settings.DisplayName = "Cy" })
	h.seed("a@x")
	a := h.signIn("a@x")

	linked := document.New("a@x", "a@x", t0)
	linked.PartnerIdentity = "c@x"
	linked.LastUpdatedAt = t0.Add(time.Minute)
	a.OnRemoteChange("a@x", linked)

	require.Eventually(t, func() bool {
		snap, err := a.Snapshot()
		return err == nil && snap.Partner != nil && snap.Partner.Settings.DisplayName == "Cy"
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, h.store.Subscribers("c@x"))

	unlinked := linked.Clone()
	unlinked.PartnerIdentity = ""
	unlinked.LastUpdatedAt = t0.Add(2 * time.Minute)
	a.OnRemoteChange("a@x", unlinked)
	assert.Nil(t, snapshot(t, a).Partner)
	require.Eventually(t, func() bool { return h.store.Subscribers("c@x") == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestTwoSessionsConverge(t *testing.T) {
	h := newHarness(t)
	h.seed("a@x", func(d *document.Document) { d.PartnerIdentity = "b@x" })
	h.seed("b@x", func(d *document.Document) { d.PartnerIdentity = "a@x" })
	a := h.signIn("a@x")
	b := h.signIn("b@x")
	ctx := context.Background()

	note, err := a.AddSharedNote(ctx, NoteInput{
		Title: "Packing",
		Kind:  document.NoteChecklist,
		Items: []document.ChecklistItem{{ID: "i1", Text: "passports"}, {ID: "i2", Text: "charger"}},
	})
	require.NoError(t, err)
	flush(t, a)

	bOwn := snapshot(t, b).Own
	require.Len(t, bOwn.SharedNotes, 1)
	assert.Equal(t, note.ID, bOwn.SharedNotes[0].ID)

	_, err = b.ToggleChecklistItem(ctx, note.ID, "i2")
	require.NoError(t, err)
	flush(t, b)

	for _, s := range []*Session{a, b} {
		own := snapshot(t, s).Own
		require.Len(t, own.SharedNotes, 1)
		assert.False(t, own.SharedNotes[0].Items[0].Completed)
		assert.True(t, own.SharedNotes[0].Items[1].Completed)
	}

	require.NoError(t, b.DeleteSharedNote(ctx, note.ID))
	flush(t, b)
	assert.Empty(t, snapshot(t, a).Own.SharedNotes)
	assert.Empty(t, h.remote("a@x").SharedNotes)

	_, err = a.SendMessage(ctx, "see you soon")
	require.NoError(t, err)
	flush(t, a)

	conv, err := b.Conversation()
	require.NoError(t, err)
	require.Len(t, conv, 1)
	assert.Equal(t, "see you soon", conv[0].Text)
}

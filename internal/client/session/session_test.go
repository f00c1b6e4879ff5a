package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn_CreatesMissingDocument(t *testing.T) {
	h := newHarness(t)

	s := h.signIn("a@x")

	snap := snapshot(t, s)
	assert.Equal(t, document.Identity("a@x"), snap.Own.Identity)
	assert.Nil(t, snap.Partner)
	assert.True(t, snap.Own.LastUpdatedAt.Equal(t0))

	stored := h.remote("a@x")
	assert.Equal(t, "a@x", stored.Email)
	assert.Equal(t, []string{document.DefaultWidget}, stored.Settings.DashboardWidgets)
	assert.True(t, stored.CreatedAt.Equal(t0))
}

func TestSignIn_LoadsExistingDocument(t *testing.T) {
	h := newHarness(t)
	h.seed("a@x", func(d *document.Document) {
		d.Moods = map[string]document.Mood{"2026-02-13": document.MoodGood}
	})

	s := h.signIn("a@x")

	assert.Equal(t, document.MoodGood, snapshot(t, s).Own.Moods["2026-02-13"])
	assert.Empty(t, h.store.Updates("a@x"), "loading must not write")
	assert.Equal(t, 1, h.store.Subscribers("a@x"))
}

func TestSignIn_FollowsLinkedPartner(t *testing.T) {
	h := newHarness(t)
	h.seed("b@x", func(d *document.Document) { d.Settings.DisplayName = "Bea" })
	h.seed("a@x", func(d *document.Document) { d.PartnerIdentity = "b@x" })

	s := h.signIn("a@x")

	snap := snapshot(t, s)
	require.NotNil(t, snap.Partner)
	assert.Equal(t, "Bea", snap.Partner.Settings.DisplayName)
	assert.Equal(t, 1, h.store.Subscribers("b@x"))
}

func TestSignIn_Errors(t *testing.T) {
	h := newHarness(t)

	_, err := SignIn(context.Background(), h.store, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	h.store.FailGet("a@x", remote.ErrUnavailable)
	_, err = SignIn(context.Background(), h.store, "a@x", "a@x")
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.ErrorIs(t, err, remote.ErrUnavailable)
}

func TestSignOut_DisposesEverything(t *testing.T) {
	h := newHarness(t)
	h.seed("b@x")
	h.seed("a@x", func(d *document.Document) { d.PartnerIdentity = "b@x" })
	s := h.signIn("a@x")

	mood := document.MoodLoved
	require.NoError(t, s.SetMood(context.Background(), "2026-02-14", &mood))

	require.NoError(t, s.SignOut(context.Background()))

	assert.Zero(t, h.store.Subscribers("a@x"))
	assert.Zero(t, h.store.Subscribers("b@x"))
	assert.Equal(t, document.MoodLoved, h.remote("a@x").Moods["2026-02-14"], "pending persist is pushed on sign-out")

	_, err := s.Snapshot()
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.ErrorIs(t, s.SetMood(context.Background(), "2026-02-14", nil), ErrNotSignedIn)
	assert.ErrorIs(t, s.Flush(context.Background()), ErrNotSignedIn)
	_, ok := s.CurrentIdentity()
	assert.False(t, ok)

	assert.NoError(t, s.SignOut(context.Background()), "second sign-out is a no-op")
}

func TestSignOut_LateRemoteChangeIsNoop(t *testing.T) {
	h := newHarness(t)
	s := h.signIn("a@x")
	require.NoError(t, s.SignOut(context.Background()))

	doc := document.New("a@x", "a@x", t0.Add(time.Hour))
	assert.NotPanics(t, func() { s.OnRemoteChange("a@x", doc) })
}

func TestOnChange_CalledAfterLocalCommit(t *testing.T) {
	h := newHarness(t)

	var seen []Snapshot
	s := h.signIn("a@x", WithOnChange(func(snap Snapshot) { seen = append(seen, snap) }))

	_, err := s.SendMessage(context.Background(), "hello")
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	last := seen[len(seen)-1]
	require.Len(t, last.Own.Messages, 1)
	assert.Equal(t, "hello", last.Own.Messages[0].Text)
}

func TestStatus_TracksPendingAndErrors(t *testing.T) {
	h := newHarness(t)
	h.seed("a@x")
	s := h.signIn("a@x")

	require.NoError(t, s.UpdateSettings(context.Background(), SettingsPatch{Theme: ptr("dark")}))
	assert.Equal(t, 1, s.Status().PendingWrites)

	h.store.FailUpdate("a@x", remote.ErrUnavailable)
	flush(t, s)

	st := s.Status()
	assert.Zero(t, st.PendingWrites)
	assert.Contains(t, st.LastError, remote.ErrUnavailable.Error())
	assert.Equal(t, "dark", snapshot(t, s).Own.Settings.Theme, "local change survives remote failure")

	h.store.FailUpdate("a@x", nil)
	require.NoError(t, s.UpdateSettings(context.Background(), SettingsPatch{Theme: ptr("light")}))
	flush(t, s)
	assert.Empty(t, s.Status().LastError)
	assert.False(t, s.Status().LastSyncAt.IsZero())
}

func TestNextStamp(t *testing.T) {
	assert.Equal(t, t0.Add(time.Second), nextStamp(t0.Add(time.Second), t0))
	assert.Equal(t, t0.Add(time.Microsecond), nextStamp(t0, t0))
	assert.Equal(t, t0.Add(time.Microsecond), nextStamp(t0.Add(-time.Hour), t0))
}

func ptr[T any](v T) *T { return &v }

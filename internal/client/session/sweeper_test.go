package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msgAt(id string, at time.Time) document.Message {
	return document.Message{ID: id, Text: id, SenderIdentity: "a@x", CreatedAt: at}
}

func TestSweep_OnLoad(t *testing.T) {
	tests := []struct {
		name string
		msgs []document.Message
		want []string
	}{
		{
			name: "older than ttl dropped",
			msgs: []document.Message{msgAt("m25", t0.Add(-25*time.Hour)), msgAt("m23", t0.Add(-23*time.Hour))},
			want: []string{"m23"},
		},
		{
			name: "only recent kept",
			msgs: []document.Message{msgAt("m30", t0.Add(-30*time.Hour)), msgAt("m1", t0.Add(-time.Hour))},
			want: []string{"m1"},
		},
		{
			name: "exactly at cutoff dropped",
			msgs: []document.Message{msgAt("edge", t0.Add(-24*time.Hour))},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.seed("a@x", func(d *document.Document) { d.Messages = tt.msgs })

			a := h.signIn("a@x")

			var got []string
			for _, m := range snapshot(t, a).Own.Messages {
				got = append(got, m.ID)
			}
			assert.Equal(t, tt.want, got)

			flush(t, a)
			assert.Len(t, h.remote("a@x").Messages, len(tt.want))
		})
	}
}

func TestSweep_NothingToDo(t *testing.T) {
	h := newHarness(t)
	h.seed("a@x", func(d *document.Document) { d.Messages = []document.Message{msgAt("m1", t0)} })
	a := h.signIn("a@x")
	stamp := snapshot(t, a).Own.LastUpdatedAt

	n, err := a.Sweep()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, stamp, snapshot(t, a).Own.LastUpdatedAt)
	assert.False(t, a.debounce.pending())
}

func TestSweep_AfterTimePasses(t *testing.T) {
	h := newHarness(t)
	a := h.signIn("a@x")

	_, err := a.SendMessage(context.Background(), "good morning")
	require.NoError(t, err)

	h.clock.Advance(23 * time.Hour)
	n, err := a.Sweep()
	require.NoError(t, err)
	assert.Zero(t, n)

	h.clock.Advance(2 * time.Hour)
	n, err = a.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, snapshot(t, a).Own.Messages)

	require.NoError(t, a.SignOut(context.Background()))
	_, err = a.Sweep()
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestSweep_Periodic(t *testing.T) {
	h := newHarness(t)
	a := h.signIn("a@x", WithSweepInterval(10*time.Millisecond))

	_, err := a.SendMessage(context.Background(), "hello")
	require.NoError(t, err)
	h.clock.Advance(25 * time.Hour)

	require.Eventually(t, func() bool {
		snap, err := a.Snapshot()
		return err == nil && len(snap.Own.Messages) == 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSendMessage_FiltersInline(t *testing.T) {
	h := newHarness(t)
	a := h.signIn("a@x")
	ctx := context.Background()

	_, err := a.SendMessage(ctx, "first")
	require.NoError(t, err)
	h.clock.Advance(25 * time.Hour)
	second, err := a.SendMessage(ctx, "second")
	require.NoError(t, err)

	msgs := snapshot(t, a).Own.Messages
	require.Len(t, msgs, 1)
	assert.Equal(t, second.ID, msgs[0].ID)

	_, err = a.SendMessage(ctx, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConversation_MergesBothSides(t *testing.T) {
	h := newHarness(t)
	h.seed("b@x", func(d *document.Document) {
		d.Messages = []document.Message{
			{ID: "b-old", SenderIdentity: "b@x", CreatedAt: t0.Add(-48 * time.Hour)},
			{ID: "b1", SenderIdentity: "b@x", CreatedAt: t0.Add(-2 * time.Hour)},
		}
	})
	h.seed("a@x", func(d *document.Document) {
		d.PartnerIdentity = "b@x"
		d.Messages = []document.Message{{ID: "a1", SenderIdentity: "a@x", CreatedAt: t0.Add(-time.Hour)}}
	})
	a := h.signIn("a@x")

	conv, err := a.Conversation()
	require.NoError(t, err)
	var ids []string
	for _, m := range conv {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"b1", "a1"}, ids)
}

package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/duosync/internal/client/session"
	"github.com/dmitrijs2005/duosync/internal/document"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func displayName(d *document.Document) string {
	if d == nil {
		return ""
	}
	if d.Settings.DisplayName != "" {
		return d.Settings.DisplayName
	}
	if d.Email != "" {
		return d.Email
	}
	return string(d.Identity)
}

func renderStatus(w io.Writer, st session.Status, mode Mode) {
	fmt.Fprintf(w, "Identity:  %s\n", st.Identity)
	if st.Partner != "" {
		fmt.Fprintf(w, "Partner:   %s\n", st.Partner)
	} else {
		fmt.Fprintln(w, "Partner:   not linked")
	}
	fmt.Fprintf(w, "Mode:      %s\n", mode)
	fmt.Fprintf(w, "Pending:   %d\n", st.PendingWrites)
	if !st.LastSyncAt.IsZero() {
		fmt.Fprintf(w, "Last sync: %s\n", st.LastSyncAt.Local().Format(time.DateTime))
	}
	if st.LastError != "" {
		fmt.Fprintf(w, "Error:     %s\n", st.LastError)
	}
}

func renderDashboard(w io.Writer, snap session.Snapshot, today string) {
	own, partner := snap.Own, snap.Partner
	fmt.Fprintf(w, "Hello, %s\n", displayName(own))
	if partner == nil {
		fmt.Fprintln(w, "No partner linked, use 'link <email>'")
	} else {
		fmt.Fprintf(w, "Partner: %s\n", displayName(partner))
	}

	for _, widget := range own.Settings.DashboardWidgets {
		switch widget {
		case "mood":
			fmt.Fprintf(w, "Mood today: you %s", moodOrDash(own, today))
			if partner != nil {
				fmt.Fprintf(w, ", partner %s", moodOrDash(partner, today))
			}
			fmt.Fprintln(w)
		case "location":
			if partner != nil && partner.Location != nil {
				l := partner.Location
				fmt.Fprintf(w, "Partner location: %.5f, %.5f (%s)\n", l.Latitude, l.Longitude, l.CapturedAt.Local().Format(time.DateTime))
			}
		case "calendar":
			upcoming := 0
			for _, ev := range own.SharedCalendarEvents {
				if ev.Date >= today {
					upcoming++
				}
			}
			fmt.Fprintf(w, "Upcoming events: %d\n", upcoming)
		case "notes":
			fmt.Fprintf(w, "Shared notes: %d\n", len(own.SharedNotes))
		case "photos":
			fmt.Fprintf(w, "Photos: %d\n", len(own.Photos))
		}
	}

	unread := 0
	for _, n := range own.Notifications {
		if !n.Read {
			unread++
		}
	}
	if unread > 0 {
		fmt.Fprintf(w, "Unread notifications: %d\n", unread)
	}
}

func moodOrDash(d *document.Document, date string) string {
	if m, ok := d.Moods[date]; ok {
		return string(m)
	}
	return "-"
}

// renderMoods prints both users' moods for the last days days.
func renderMoods(w io.Writer, snap session.Snapshot, now time.Time, days int) {
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tYOU\tPARTNER")
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -i).Format(document.DateLayout)
		partner := "-"
		if snap.Partner != nil {
			partner = moodOrDash(snap.Partner, date)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", date, moodOrDash(snap.Own, date), partner)
	}
	tw.Flush()
}

func renderNotes(w io.Writer, notes []document.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes")
		return
	}
	for _, n := range notes {
		fmt.Fprintf(w, "[%s] %s (%s, %s)\n", shortID(n.ID), n.Title, n.Kind, n.LastModifiedAt.Local().Format(time.DateTime))
		switch n.Kind {
		case document.NoteText:
			for _, line := range strings.Split(n.Text, "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
		case document.NoteChecklist:
			for _, it := range n.Items {
				mark := " "
				if it.Completed {
					mark = "x"
				}
				fmt.Fprintf(w, "    [%s] %s  (%s)\n", mark, it.Text, shortID(it.ID))
			}
		case document.NoteDrawing:
			fmt.Fprintf(w, "    <drawing, %d bytes>\n", len(n.Drawing))
		}
	}
}

func renderEvents(w io.Writer, events []document.CalendarEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events")
		return
	}
	sorted := slices.Clone(events)
	slices.SortFunc(sorted, func(a, b document.CalendarEvent) int {
		return strings.Compare(a.Date+a.Time, b.Date+b.Time)
	})
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tTIME\tTITLE")
	for _, ev := range sorted {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(ev.ID), ev.Date, ev.Time, ev.Title)
	}
	tw.Flush()
}

func renderPinned(w io.Writer, pins []document.PinnedDate, now time.Time) {
	if len(pins) == 0 {
		fmt.Fprintln(w, "No pinned dates")
		return
	}
	today, _ := time.Parse(document.DateLayout, now.Format(document.DateLayout))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tTITLE\tDAYS")
	for _, p := range pins {
		days := ""
		if d, err := time.Parse(document.DateLayout, p.Date); err == nil {
			days = fmt.Sprintf("%+d", int(d.Sub(today).Hours()/24))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(p.ID), p.Date, p.Title, days)
	}
	tw.Flush()
}

func renderMessages(w io.Writer, msgs []document.Message, me document.Identity) {
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No messages in the last day")
		return
	}
	for _, m := range msgs {
		who := "partner"
		if m.SenderIdentity == me {
			who = "you"
		}
		fmt.Fprintf(w, "%s %-7s %s\n", m.CreatedAt.Local().Format(time.TimeOnly), who, m.Text)
	}
}

func renderNotifications(w io.Writer, ns []document.Notification) {
	if len(ns) == 0 {
		fmt.Fprintln(w, "Inbox is empty")
		return
	}
	for _, n := range ns {
		mark := "*"
		if n.Read {
			mark = " "
		}
		fmt.Fprintf(w, "%s [%s] %s", mark, shortID(n.ID), n.Title)
		if n.Message != "" {
			fmt.Fprintf(w, ": %s", n.Message)
		}
		fmt.Fprintln(w)
	}
}

func renderPhotos(w io.Writer, photos []document.Photo) {
	if len(photos) == 0 {
		fmt.Fprintln(w, "No photos")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFILE\tSIZE\tTAKEN")
	for _, p := range photos {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", shortID(p.ID), p.Filename, p.Size, p.CreatedAt.Local().Format(time.DateTime))
	}
	tw.Flush()
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/duosync/internal/client/session"
	"github.com/dmitrijs2005/duosync/internal/document"
)

// errUsage makes the REPL print the command's usage line.
var errUsage = errors.New("usage")

// writeFile is a test seam for os.WriteFile.
var writeFile = os.WriteFile

func (a *App) commands() map[string]command {
	return map[string]command{
		"link":     {usage: "link <partner-email>", run: a.link},
		"status":   {usage: "status", run: a.status},
		"show":     {usage: "show", run: a.show},
		"mood":     {usage: "mood [<date|today> <mood|clear>]", run: a.mood},
		"notes":    {usage: "notes [add <title> | checklist <title> | edit <id> | rm <id>]", run: a.notes},
		"shared":   {usage: "shared [add <title> | checklist <title> | edit <id> | rm <id>]", run: a.shared},
		"check":    {usage: "check <note-id> <item-id>", run: a.check},
		"event":    {usage: "event [add <date> [HH:MM] <title> | rm <id>]", run: a.event},
		"pin":      {usage: "pin [add <date> <title> | rm <id>]", run: a.pin},
		"msg":      {usage: "msg <text>", run: a.msg},
		"messages": {usage: "messages", run: a.messages},
		"notify":   {usage: "notify <title>", run: a.notify},
		"inbox":    {usage: "inbox [rm <id>]", run: a.inbox},
		"read":     {usage: "read <id>", run: a.read},
		"loc":      {usage: "loc <latitude> <longitude> [accuracy]", run: a.location},
		"widgets":  {usage: "widgets <widget,...>", run: a.widgets},
		"name":     {usage: "name <display name>", run: a.name},
		"theme":    {usage: "theme <light|dark>", run: a.theme},
		"alerts":   {usage: "alerts <on|off>", run: a.alerts},
		"photo":    {usage: "photo [add <path> | get <id> <file> | rm <id>]", run: a.photo},
		"sync":     {usage: "sync", run: a.sync},
	}
}

func (a *App) withSession() (*session.Session, error) {
	s := a.currentSession()
	if s == nil {
		return nil, session.ErrNotSignedIn
	}
	return s, nil
}

func (a *App) snapshot() (session.Snapshot, error) {
	s, err := a.withSession()
	if err != nil {
		return session.Snapshot{}, err
	}
	return s.Snapshot()
}

// parseDate accepts YYYY-MM-DD, "today" and "tomorrow".
func (a *App) parseDate(s string) (string, error) {
	switch strings.ToLower(s) {
	case "today":
		return a.now().Format(document.DateLayout), nil
	case "tomorrow":
		return a.now().AddDate(0, 0, 1).Format(document.DateLayout), nil
	}
	if err := document.ValidateDate(s); err != nil {
		return "", err
	}
	return s, nil
}

// resolveID expands a unique id prefix, as printed by the listings, to the
// full record id.
func resolveID[T document.Record](list []T, prefix string) (string, error) {
	if document.IndexOf(list, prefix) >= 0 {
		return prefix, nil
	}
	var found string
	for _, rec := range list {
		if id := rec.RecordID(); strings.HasPrefix(id, prefix) {
			if found != "" {
				return "", fmt.Errorf("id %q is ambiguous", prefix)
			}
			found = id
		}
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s", session.ErrRecordNotFound, prefix)
	}
	return found, nil
}

func (a *App) link(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	s, err := a.withSession()
	if err != nil {
		return err
	}
	id, err := document.IdentityFromEmail(args[0])
	if err != nil {
		return err
	}
	if err := s.LinkPartner(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Linked to %s\n", args[0])
	return nil
}

func (a *App) status(context.Context, []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	renderStatus(a.out, s.Status(), a.mode())
	return nil
}

func (a *App) show(context.Context, []string) error {
	snap, err := a.snapshot()
	if err != nil {
		return err
	}
	renderDashboard(a.out, snap, a.now().Format(document.DateLayout))
	return nil
}

func (a *App) mood(ctx context.Context, args []string) error {
	if len(args) == 0 {
		snap, err := a.snapshot()
		if err != nil {
			return err
		}
		renderMoods(a.out, snap, a.now(), 7)
		return nil
	}
	if len(args) != 2 {
		return errUsage
	}
	s, err := a.withSession()
	if err != nil {
		return err
	}
	date, err := a.parseDate(args[0])
	if err != nil {
		return err
	}

	var m *document.Mood
	if args[1] != "clear" {
		parsed, err := document.ParseMood(args[1])
		if err != nil {
			return fmt.Errorf("%w, choose one of %v", err, document.Moods())
		}
		m = &parsed
	}
	return s.SetMood(ctx, date, m)
}

// readNoteInput prompts for the content of a note of the given kind.
func (a *App) readNoteInput(title string, kind document.NoteKind, prev *document.Note) (session.NoteInput, error) {
	in := session.NoteInput{Title: title, Kind: kind}
	switch kind {
	case document.NoteChecklist:
		lines, err := GetLines(a.reader, "Enter checklist items", a.out)
		if err != nil {
			return in, err
		}
		for _, l := range lines {
			item := document.ChecklistItem{Text: strings.TrimSpace(l)}
			if prev != nil {
				for _, old := range prev.Items {
					if old.Text == item.Text {
						item = old
						break
					}
				}
			}
			in.Items = append(in.Items, item)
		}
	case document.NoteDrawing:
		if prev != nil {
			in.Drawing = prev.Drawing
		}
	default:
		text, err := GetMultiline(a.reader, "Enter note text", a.out)
		if err != nil {
			return in, err
		}
		in.Text = text
	}
	return in, nil
}

type noteOps struct {
	list   func(*document.Document) []document.Note
	add    func(context.Context, session.NoteInput) (document.Note, error)
	update func(context.Context, string, session.NoteInput) (document.Note, error)
	remove func(context.Context, string) error
}

func (a *App) noteCommand(ctx context.Context, args []string, ops noteOps) error {
	snap, err := a.snapshot()
	if err != nil {
		return err
	}
	notes := ops.list(snap.Own)
	if len(args) == 0 {
		renderNotes(a.out, notes)
		return nil
	}
	if len(args) < 2 {
		return errUsage
	}

	switch args[0] {
	case "add", "checklist":
		kind := document.NoteText
		if args[0] == "checklist" {
			kind = document.NoteChecklist
		}
		in, err := a.readNoteInput(strings.Join(args[1:], " "), kind, nil)
		if err != nil {
			return err
		}
		n, err := ops.add(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added note %s\n", shortID(n.ID))
		return nil

	case "edit":
		id, err := resolveID(notes, args[1])
		if err != nil {
			return err
		}
		prev := notes[document.IndexOf(notes, id)]
		title, err := getSimpleText(a.reader, fmt.Sprintf("Title (empty keeps %q)", prev.Title), a.out)
		if err != nil {
			return err
		}
		if title == "" {
			title = prev.Title
		}
		in, err := a.readNoteInput(title, prev.Kind, &prev)
		if err != nil {
			return err
		}
		_, err = ops.update(ctx, id, in)
		return err

	case "rm":
		id, err := resolveID(notes, args[1])
		if err != nil {
			return err
		}
		return ops.remove(ctx, id)
	}
	return errUsage
}

func (a *App) notes(ctx context.Context, args []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	return a.noteCommand(ctx, args, noteOps{
		list:   func(d *document.Document) []document.Note { return d.Notes },
		add:    s.AddNote,
		update: s.UpdateNote,
		remove: s.DeleteNote,
	})
}

func (a *App) shared(ctx context.Context, args []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	return a.noteCommand(ctx, args, noteOps{
		list:   func(d *document.Document) []document.Note { return d.SharedNotes },
		add:    s.AddSharedNote,
		update: s.UpdateSharedNote,
		remove: s.DeleteSharedNote,
	})
}

func (a *App) check(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	s, err := a.withSession()
	if err != nil {
		return err
	}
	snap, err := s.Snapshot()
	if err != nil {
		return err
	}
	noteID, err := resolveID(snap.Own.SharedNotes, args[0])
	if err != nil {
		return err
	}
	note := snap.Own.SharedNotes[document.IndexOf(snap.Own.SharedNotes, noteID)]

	itemID := ""
	for _, it := range note.Items {
		if strings.HasPrefix(it.ID, args[1]) {
			if itemID != "" {
				return fmt.Errorf("item id %q is ambiguous", args[1])
			}
			itemID = it.ID
		}
	}
	if itemID == "" {
		return fmt.Errorf("%w: item %s", session.ErrRecordNotFound, args[1])
	}

	_, err = s.ToggleChecklistItem(ctx, noteID, itemID)
	return err
}

func isClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func (a *App) event(ctx context.Context, args []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	snap, err := s.Snapshot()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		renderEvents(a.out, snap.Own.SharedCalendarEvents)
		return nil
	}

	switch {
	case args[0] == "add" && len(args) >= 3:
		date, err := a.parseDate(args[1])
		if err != nil {
			return err
		}
		in := session.CalendarEventInput{Date: date}
		rest := args[2:]
		if isClock(rest[0]) {
			in.Time, rest = rest[0], rest[1:]
		}
		in.Title = strings.Join(rest, " ")
		ev, err := s.AddCalendarEvent(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added event %s\n", shortID(ev.ID))
		return nil

	case args[0] == "rm" && len(args) == 2:
		id, err := resolveID(snap.Own.SharedCalendarEvents, args[1])
		if err != nil {
			return err
		}
		return s.DeleteCalendarEvent(ctx, id)
	}
	return errUsage
}

func (a *App) pin(ctx context.Context, args []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	snap, err := s.Snapshot()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		renderPinned(a.out, snap.Own.PinnedDates, a.now())
		return nil
	}

	switch {
	case args[0] == "add" && len(args) >= 3:
		date, err := a.parseDate(args[1])
		if err != nil {
			return err
		}
		p, err := s.AddPinnedDate(ctx, strings.Join(args[2:], " "), date)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Pinned %s\n", shortID(p.ID))
		return nil

	case args[0] == "rm" && len(args) == 2:
		id, err := resolveID(snap.Own.PinnedDates, args[1])
		if err != nil {
			return err
		}
		return s.DeletePinnedDate(ctx, id)
	}
	return errUsage
}

func (a *App) msg(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	s, err := a.withSession()
	if err != nil {
		return err
	}
	_, err = s.SendMessage(ctx, strings.Join(args, " "))
	return err
}

func (a *App) messages(context.Context, []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	msgs, err := s.Conversation()
	if err != nil {
		return err
	}
	renderMessages(a.out, msgs, s.Identity())
	return nil
}

func (a *App) notify(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	s, err := a.withSession()
	if err != nil {
		return err
	}
	body, err := getSimpleText(a.reader, "Message (optional)", a.out)
	if err != nil {
		return err
	}
	_, err = s.SendNotificationToPartner(ctx, strings.Join(args, " "), body)
	return err
}

func (a *App) inbox(ctx context.Context, args []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	snap, err := s.Snapshot()
	if err != nil {
		return err
	}
	switch {
	case len(args) == 0:
		renderNotifications(a.out, snap.Own.Notifications)
		return nil
	case len(args) == 2 && args[0] == "rm":
		id, err := resolveID(snap.Own.Notifications, args[1])
		if err != nil {
			return err
		}
		return s.DeleteNotification(ctx, id)
	}
	return errUsage
}

func (a *App) read(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	s, err := a.withSession()
	if err != nil {
		return err
	}
	snap, err := s.Snapshot()
	if err != nil {
		return err
	}
	id, err := resolveID(snap.Own.Notifications, args[0])
	if err != nil {
		return err
	}
	return s.MarkNotificationRead(ctx, id)
}

func (a *App) location(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errUsage
	}
	s, err := a.withSession()
	if err != nil {
		return err
	}
	var vals [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", arg)
		}
		vals[i] = v
	}
	return s.UpdateLocation(ctx, document.Location{Latitude: vals[0], Longitude: vals[1], Accuracy: vals[2]})
}

func (a *App) updateSettings(ctx context.Context, p session.SettingsPatch) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	return s.UpdateSettings(ctx, p)
}

func (a *App) widgets(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	var ws []string
	for _, w := range strings.Split(args[0], ",") {
		if w = strings.TrimSpace(w); w != "" {
			ws = append(ws, w)
		}
	}
	if len(ws) == 0 {
		return errUsage
	}
	return a.updateSettings(ctx, session.SettingsPatch{DashboardWidgets: ws})
}

func (a *App) name(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	n := strings.Join(args, " ")
	return a.updateSettings(ctx, session.SettingsPatch{DisplayName: &n})
}

func (a *App) theme(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "light" && args[0] != "dark") {
		return errUsage
	}
	return a.updateSettings(ctx, session.SettingsPatch{Theme: &args[0]})
}

func (a *App) alerts(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return errUsage
	}
	on := args[0] == "on"
	return a.updateSettings(ctx, session.SettingsPatch{NotificationsEnabled: &on})
}

func (a *App) photo(ctx context.Context, args []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	snap, err := s.Snapshot()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		renderPhotos(a.out, snap.Own.Photos)
		return nil
	}

	switch {
	case args[0] == "add" && len(args) == 2:
		in, err := a.photoService.Upload(ctx, args[1])
		if err != nil {
			return err
		}
		in.Location = snap.Own.Location
		p, err := s.AddPhoto(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Uploaded photo %s\n", shortID(p.ID))
		return nil

	case args[0] == "get" && len(args) == 3:
		id, err := resolveID(snap.Own.Photos, args[1])
		if err != nil {
			return err
		}
		p := snap.Own.Photos[document.IndexOf(snap.Own.Photos, id)]
		data, err := a.photoService.Download(ctx, p.StorageKey)
		if err != nil {
			return err
		}
		if err := writeFile(args[2], data, 0o600); err != nil {
			return fmt.Errorf("save photo: %w", err)
		}
		fmt.Fprintf(a.out, "Saved %d bytes to %s\n", len(data), args[2])
		return nil

	case args[0] == "rm" && len(args) == 2:
		id, err := resolveID(snap.Own.Photos, args[1])
		if err != nil {
			return err
		}
		return s.DeletePhoto(ctx, id)
	}
	return errUsage
}

// sync pushes pending changes now instead of waiting for the debounce.
func (a *App) sync(ctx context.Context, _ []string) error {
	s, err := a.withSession()
	if err != nil {
		return err
	}
	if err := s.Flush(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All changes pushed")
	return nil
}

// Package cli provides the interactive duosync command-line client.
//
// It wires configuration, the gRPC document store, the auth and photo
// services and a sync session into a line-oriented REPL. After login the
// user's document is mirrored locally; every command edits the mirror and
// the session fans the change out to the server and, for shared fields, to
// the linked partner's document.
//
// Key features:
//   - Register / Login / Logout
//   - Partner linking
//   - Moods, private and shared notes, checklists
//   - Shared calendar events, pinned dates
//   - Ephemeral messages, notifications to the partner
//   - Location, photos and settings
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli

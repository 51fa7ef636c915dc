// Package session manages the chat sessions listed in the sidebar.
//
// # Overview
//
// Sessions are stored in the config (see config.Session) in display order,
// newest first, together with the index of the selected session. Store is
// the only writer of that list while the UI runs.
//
// # Session Lifecycle
//
// 1. Create: NewSession generates a UUID, inserts the session at the top of
// the list and selects it.
//
// 2. Select: Select and Advance move the selection. Advance wraps around at
// both ends, which is what the Alt/Ctrl+arrow hot-keys use.
//
// 3. Delete: DeleteSession removes the session and its message history file.
// The list is never left empty: deleting the last session replaces it with
// a fresh one.
//
// # Message History
//
// Each session's messages are kept in memory once loaded and written to
// sessions/<id>.json next to the config file, truncated to
// config.MaxSessionMessageLines lines.
package session

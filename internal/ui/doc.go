// Package ui provides the user interface components for the sidechat TUI.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────┬┬─────────────────────────────────────┤
//	│              ││                                     │
//	│   Sidebar    ││         Chat Panel                  │
//	│   (--sidebar ││         (rest)                      │
//	│     -width)  ││                                     │
//	├──────────────┴┴─────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The sidebar's width is not decided here. The app resolves the
// --sidebar-width root property against the terminal width and passes the
// result to ViewContext.UpdateLayout. The rightmost sidebar column is the
// drag handle.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title and the current chat topic on a gradient.
//
// Footer: Context-aware keyboard shortcuts, replaced by flash messages.
//
// Sidebar: Branding header, bar buttons, the chat list, tail actions and the
// drag handle. HitTest maps a mouse position to the control under it. In
// narrow mode labels are hidden and the list is compact.
//
// Chat: Conversation history in a viewport with a one-line input.
//
// Modal: Popup dialogs whose states live in the modals subpackage.
package ui

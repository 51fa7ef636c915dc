// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// DragHandleWidth is the width of the drag handle column on the sidebar's right edge
	DragHandleWidth = 1

	// InputTotalHeight is the total height of the chat input area (one line plus borders)
	InputTotalHeight = 3

	// MinTerminalWidth and MinTerminalHeight bound the layout from below
	MinTerminalWidth  = 20
	MinTerminalHeight = 8

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Sidebar section heights
const (
	// SidebarHeaderHeight is the title and subtitle block
	SidebarHeaderHeight = 2

	// SidebarBarHeight is the row of bar buttons plus a spacer line
	SidebarBarHeight = 2

	// SidebarTailHeight is the spacer line plus the row of tail actions
	SidebarTailHeight = 2

	// SidebarItemHeight is the number of lines a chat entry takes in the full list
	SidebarItemHeight = 2
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the list height of the help modal
	HelpModalMaxVisible = 14
)

package config

// Sidebar width limits, in terminal columns.
const (
	// NarrowSidebarWidth is the width of the collapsed sidebar.
	NarrowSidebarWidth = 8

	// MinSidebarWidth is the threshold below which the sidebar collapses to NarrowSidebarWidth.
	MinSidebarWidth = 24

	// DefaultSidebarWidth is used when no width has been persisted yet.
	DefaultSidebarWidth = 32

	// MaxSidebarWidth is the upper bound on a user-chosen width.
	MaxSidebarWidth = 64
)

// Application settings.
const (
	AppName        = "sidechat"
	ConfigDirName  = ".sidechat"
	ConfigFileName = "config.json"
)

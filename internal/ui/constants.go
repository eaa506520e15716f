package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconFolder    = "📁"
	IconExport    = "⤓"
	IconFirstPage = "«"
	IconPrevPage  = "‹"
	IconNextPage  = "›"
	IconLastPage  = "»"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Window and table sizing
const (
	WindowWidth  float32 = 1100
	WindowHeight float32 = 640

	// width shared by the data columns in proportion to their weights
	TableContentWidth float32 = 1000

	TableMinHeight    float32 = 360
	RowsSelectWidth   float32 = 80
	PageLabelMinWidth float32 = 140
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)

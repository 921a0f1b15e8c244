package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconFolder   = "📁"
	IconLink     = "🔗"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Table column widths
const (
	TitleColumnWidth       float32 = 320
	ChannelColumnWidth     float32 = 160
	DateColumnWidth        float32 = 110
	DescriptionColumnWidth float32 = 320
)

// Layout sizing
const (
	DetailsMinHeight     float32 = 180
	DialogWidth          float32 = 520
	DialogHeight         float32 = 420
	SettingsDialogWidth  float32 = 560
	SettingsDialogHeight float32 = 480
)

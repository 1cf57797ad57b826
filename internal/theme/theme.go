// theme.go defines the executive color palette shared by the page chrome and charts.

// Package theme holds the muted executive palette used across the dashboard.
package theme

const (
	Primary    = "#1B2A4A" // deep navy
	Accent     = "#2E86AB" // steel blue
	Success    = "#2D936C" // muted green
	Warning    = "#D4A843" // muted gold
	Danger     = "#C44536" // muted red
	LightBG    = "#F8F9FA" // near-white
	Text       = "#333333" // dark gray
	Muted      = "#8C8C8C" // medium gray
	CardBorder = "#E8ECF0" // light border
)

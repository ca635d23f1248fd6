package components

const (
	TaskCardHeight       = 4 // TaskCardHeight is the fixed height of the task card
	columnBorderOverhead = 2 // top border + bottom border
	headerLines          = 1 // column name and count
	indicatorLines       = 1 // empty line or "▲ more above"
	minColumnWidth       = 24

	// ChromeLines is the height of the tab bar plus the status bar
	ChromeLines = 4
)

package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent:     "#8992A7",
		Background: "#12120F",

		Create: "#87A987",
		Edit:   "#8BA4B0",

		ColumnBorder:   "#625E5A",
		CardBorder:     "#393836",
		CardBackground: "#282727",
		SelectedBorder: "#8EA4A2",
		SelectedBg:     "#223249",

		PriorityHigh:   "#C4746E",
		PriorityMedium: "#C4B28A",
		PriorityLow:    "#8A9A7B",

		Title:  "#8BA4B0",
		Subtle: "#737C73",
		Normal: "#C5C9C5",

		InfoFg:    "#658594",
		InfoBg:    "#252535",
		WarningFg: "#FF9E3B",
		WarningBg: "#49443C",
		ErrorFg:   "#E82424",
		ErrorBg:   "#43242B",

		StatusBarBg:   "#8992A7",
		StatusBarText: "#C5C9C5",
	}
}

package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent:     "#874BFD",
		Background: "#1C1C1C",

		Create: "#5FD75F",
		Edit:   "#5F87D7",

		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		PriorityHigh:   "#FF5F5F",
		PriorityMedium: "#FFD75F",
		PriorityLow:    "#87AF87",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		StatusBarBg:   "#874BFD",
		StatusBarText: "#D0D0D0",
	}
}

package theme

import "github.com/thenoetrevino/taskdeck/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	ColumnBorder   string
	CardBorder     string
	SelectedBorder string
	SelectedBg     string
	TaskBg         string
	PriorityHigh   string
	PriorityMedium string
	PriorityLow    string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Background = scheme.Background
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Edit = scheme.Edit
	ColumnBorder = scheme.ColumnBorder
	CardBorder = scheme.CardBorder
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	TaskBg = scheme.CardBackground
	PriorityHigh = scheme.PriorityHigh
	PriorityMedium = scheme.PriorityMedium
	PriorityLow = scheme.PriorityLow
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}

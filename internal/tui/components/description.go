package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/taskdeck/internal/tui/theme"
)

// minWrap is the narrowest wrap width handed to glamour
const minWrap = 20

type DescriptionProps struct {
	Description string
	Width       int
}

// markdown renderers are expensive to build, so one is kept per wrap width
var markdown sync.Map // int -> *glamour.TermRenderer

func markdownRenderer(wrap int) (*glamour.TermRenderer, error) {
	if r, ok := markdown.Load(wrap); ok {
		return r.(*glamour.TermRenderer), nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	actual, _ := markdown.LoadOrStore(wrap, r)
	return actual.(*glamour.TermRenderer), nil
}

// RenderDescription renders a task description as markdown. Blank
// descriptions show a placeholder; if glamour fails the raw text is shown.
func RenderDescription(p DescriptionProps) string {
	if strings.TrimSpace(p.Description) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No description")
	}

	r, err := markdownRenderer(max(p.Width, minWrap))
	if err != nil {
		return p.Description
	}
	out, err := r.Render(p.Description)
	if err != nil {
		return p.Description
	}
	return strings.TrimSpace(out)
}

package huhforms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskdeck/internal/config/colors"
)

// formPalette maps scheme roles onto the parts of a task form
type formPalette struct {
	action  color.Color // frame, prompt and confirm button
	heading color.Color
	hint    color.Color
	problem color.Color
	text    color.Color
	pickBg  color.Color // highlighted select row
	cursor  color.Color
	barText color.Color
	barBg   color.Color
}

// newFormPalette picks the Edit color for edit forms and Create otherwise,
// so the frame tells the user which action the form will save.
func newFormPalette(cs colors.ColorScheme, isEdit bool) formPalette {
	action := cs.Create
	if isEdit {
		action = cs.Edit
	}
	return formPalette{
		action:  lipgloss.Color(action),
		heading: lipgloss.Color(cs.Title),
		hint:    lipgloss.Color(cs.Subtle),
		problem: lipgloss.Color(cs.ErrorFg),
		text:    lipgloss.Color(cs.Normal),
		pickBg:  lipgloss.Color(cs.SelectedBg),
		cursor:  lipgloss.Color(cs.Accent),
		barText: lipgloss.Color(cs.StatusBarText),
		barBg:   lipgloss.Color(cs.StatusBarBg),
	}
}

// CreateTheme builds the task form theme from the color scheme
func CreateTheme(cs colors.ColorScheme, isEdit bool) huh.Theme {
	p := newFormPalette(cs, isEdit)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		f := &t.Focused

		f.Base = f.Base.BorderForeground(p.action)
		f.Title = f.Title.Foreground(p.heading).Bold(true)
		f.Description = f.Description.Foreground(p.hint)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(p.problem)
		f.ErrorMessage = f.ErrorMessage.Foreground(p.problem)

		f.SelectSelector = f.SelectSelector.Foreground(p.cursor)
		f.SelectedOption = f.SelectedOption.Foreground(p.text).Background(p.pickBg)
		f.SelectedPrefix = f.SelectedPrefix.Foreground(p.action)
		f.UnselectedOption = f.UnselectedOption.Foreground(p.text)
		f.UnselectedPrefix = f.UnselectedPrefix.Foreground(p.hint)

		f.FocusedButton = f.FocusedButton.Foreground(p.barText).Background(p.action).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(p.barText).Background(p.barBg)

		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(p.cursor)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(p.hint)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(p.action)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(p.hint)

		return t
	})
}

// Package theme defines the cell styles shared by the built-in views.
package theme

import "github.com/gdamore/tcell/v2"

// Styles describes the reusable style table used across the framework.
type Styles struct {
	Background tcell.Style
	Text       tcell.Style
	Title      tcell.Style
	Border     tcell.Style

	Item         tcell.Style
	SelectedItem tcell.Style
	Filter       tcell.Style
	FilterPrompt tcell.Style

	Button         tcell.Style
	SelectedButton tcell.Style
}

var defaultStyles = Styles{
	Background: tcell.StyleDefault.
		Background(tcell.ColorReset).Foreground(tcell.ColorReset),
	Text: tcell.StyleDefault,
	Title: tcell.StyleDefault.
		Foreground(tcell.ColorAqua).Bold(true),
	Border: tcell.StyleDefault.
		Foreground(tcell.ColorGray),
	Item: tcell.StyleDefault.
		Foreground(tcell.ColorSilver),
	SelectedItem: tcell.StyleDefault.
		Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true),
	Filter: tcell.StyleDefault.
		Foreground(tcell.ColorSilver),
	FilterPrompt: tcell.StyleDefault.
		Foreground(tcell.ColorGreen).Bold(true),
	Button: tcell.StyleDefault.
		Foreground(tcell.ColorSilver),
	SelectedButton: tcell.StyleDefault.
		Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

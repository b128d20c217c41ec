package listfield

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering.
//
// The zero Style renders plain text.
type Style struct {
	Label lipgloss.Style

	// Input wraps the input line; InputError replaces it while an error is shown.
	Input      lipgloss.Style
	InputError lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	Error lipgloss.Style
}

func DefaultStyle() Style {
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	red := lipgloss.Color("203")
	return Style{
		Label:       lipgloss.NewStyle().Bold(true),
		Input:       input,
		InputError:  input.BorderForeground(red),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Error:       lipgloss.NewStyle().Foreground(red),
	}
}

package listfield

import (
	"strings"

	"github.com/iw2rmb/tokenfield/internal/grapheme"
)

// View renders the label, the input line and, when the error rule holds, the
// error message.
func (m Model) View() string {
	st := m.cfg.Style

	var sb strings.Builder
	sb.WriteString(st.Label.Render(m.label))
	sb.WriteByte('\n')

	input := st.Input
	if m.engine.ShowError() {
		input = st.InputError
	}
	sb.WriteString(input.Render(m.renderLine()))

	if msg := m.engine.ErrorMessage(); msg != "" {
		sb.WriteByte('\n')
		sb.WriteString(st.Error.Render(msg))
	}
	return sb.String()
}

func (m Model) renderLine() string {
	b := m.engine.Buffer()
	if b.Len() == 0 {
		return m.pad(m.renderPlaceholder())
	}

	st := m.cfg.Style
	clusters := b.Clusters()
	cursor := b.Cursor()
	limit := m.cfg.Width

	var sb strings.Builder
	used := 0
	// One extra cell past the text holds a trailing cursor.
	for i := m.visibleStart(); i < len(clusters) || (m.focused && i == cursor); i++ {
		c := " "
		if i < len(clusters) {
			c = clusters[i]
		}
		w := grapheme.Width(c)
		if limit > 0 && used+w > limit {
			break
		}
		used += w

		if m.focused && i == cursor {
			sb.WriteString(st.Cursor.Render(c))
		} else {
			sb.WriteString(st.Text.Render(c))
		}
	}
	return m.pad(sb.String(), used)
}

func (m Model) renderPlaceholder() (string, int) {
	st := m.cfg.Style
	clusters := grapheme.Split(m.cfg.Placeholder)
	if len(clusters) == 0 {
		if m.focused {
			return st.Cursor.Render(" "), 1
		}
		return "", 0
	}

	limit := m.cfg.Width
	used := 0
	n := 0
	for _, c := range clusters {
		w := grapheme.Width(c)
		if limit > 0 && used+w > limit {
			break
		}
		used += w
		n++
	}
	if n == 0 {
		return "", 0
	}

	if !m.focused {
		return st.Placeholder.Render(grapheme.Join(clusters[:n])), used
	}
	return st.Cursor.Render(clusters[0]) + st.Placeholder.Render(grapheme.Join(clusters[1:n])), used
}

// pad fills the line up to the configured width.
func (m Model) pad(s string, used int) string {
	if m.cfg.Width <= used {
		return s
	}
	return s + strings.Repeat(" ", m.cfg.Width-used)
}

// visibleStart returns the first grapheme to render so that the cursor cell
// fits in the configured width.
func (m Model) visibleStart() int {
	if m.cfg.Width <= 0 {
		return 0
	}
	b := m.engine.Buffer()
	clusters := b.Clusters()
	cursor := b.Cursor()

	start := max(0, min(m.offset, cursor))
	for start < cursor && span(clusters, start, cursor) > m.cfg.Width {
		start++
	}
	return start
}

// span is the cell width of clusters[start:cursor] plus the cursor cell.
func span(clusters []string, start, cursor int) int {
	w := 1
	if cursor < len(clusters) {
		w = grapheme.Width(clusters[cursor])
	}
	for _, c := range clusters[start:cursor] {
		w += grapheme.Width(c)
	}
	return w
}

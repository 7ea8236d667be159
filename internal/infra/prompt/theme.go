package prompt

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Warning  lipgloss.Style
	Card     lipgloss.Style
}

// NewTheme builds styles whose colour profile follows w, so piped or
// captured output stays plain text.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Help:     r.NewStyle().Faint(true),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("214")),
		Card: r.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

const morse = "*--* *- *-* ** ***     *- * *-* --- *** *--* *- -*-* * - * -*-"

// Banner is printed when an interactive session starts.
func (t Theme) Banner(version, copyright string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		t.Subtitle.Render(morse),
		t.Title.Render("miloPlot "+version),
		t.Subtitle.Render(copyright),
	)
	return t.Card.Render(body)
}

package domain

import "strings"

// QuitKeyword terminates the program from any prompt.
const QuitKeyword = "QUIT"

// IsQuit reports whether the raw input starts with the cancellation keyword
// in any letter case ("quit", "Quit", "QUIT!!"). Leading blanks do not match.
func IsQuit(input string) bool {
	if len(input) < len(QuitKeyword) {
		return false
	}
	return strings.EqualFold(input[:len(QuitKeyword)], QuitKeyword)
}

// DirectiveKind tags what a CommandSource asked for.
type DirectiveKind int

const (
	// DirectiveFilesDone ends the file-loading phase.
	DirectiveFilesDone DirectiveKind = iota
	// DirectiveAddFile asks for Path to be loaded with Legend.
	DirectiveAddFile
	// DirectiveSetOutput overrides the document path with Path.
	DirectiveSetOutput
	// DirectivePlot opens a new figure described by Plot.
	DirectivePlot
	// DirectiveAddY appends Y to the current figure.
	DirectiveAddY
	// DirectiveNewFigure drops the current figure without writing it.
	DirectiveNewFigure
	// DirectiveShow flushes the current figure to the on-screen viewer.
	DirectiveShow
	// DirectiveFinalize writes the current figure into the output document.
	DirectiveFinalize
	// DirectiveEnd signals normal completion of the session.
	DirectiveEnd
)

var directiveNames = map[DirectiveKind]string{
	DirectiveFilesDone: "files_done",
	DirectiveAddFile:   "add_file",
	DirectiveSetOutput: "set_output",
	DirectivePlot:      "plot",
	DirectiveAddY:      "add_y",
	DirectiveNewFigure: "new_figure",
	DirectiveShow:      "show",
	DirectiveFinalize:  "finalize",
	DirectiveEnd:       "end",
}

func (k DirectiveKind) String() string {
	if s, ok := directiveNames[k]; ok {
		return s
	}
	return "unknown"
}

// Directive is one unit of user intent, from a prompt or a script line.
type Directive struct {
	Kind   DirectiveKind
	Path   string
	Legend string
	Plot   PlotSpec
	Y      string
}

// PlotSpec describes one figure: a shared X variable and one panel per Y.
type PlotSpec struct {
	X        string
	Ys       []string
	FigureID int
}

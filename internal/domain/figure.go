package domain

// maxYTicksPerPage is shared between all panels of a figure.
const maxYTicksPerPage = 24

// Figure is a fully resolved page: stacked panels sharing one X axis.
type Figure struct {
	ID       int
	Subplots []Subplot
}

// Subplot is one panel of a figure.
type Subplot struct {
	XLabel string
	YLabel string

	// ShowXAxis is set on the bottom panel only; the others hide their
	// X label and tick labels.
	ShowXAxis bool

	// ShowLegend is set on the first panel when any file carries a legend.
	ShowLegend bool

	// MaxYTicks caps the number of labelled Y ticks; zero means no cap.
	MaxYTicks int

	Curves []Curve
}

// Curve is one file's contribution to a panel.
type Curve struct {
	Legend string
	File   string
	X      []float64
	Y      []float64
}

// Miss records that File lacks Variable, so its curve was left out.
type Miss struct {
	Variable string
	File     string
}

// YTickCap returns the Y tick budget for a figure with n panels.
// Figures with one or two panels are not capped.
func YTickCap(n int) int {
	if n <= 2 {
		return 0
	}
	c := maxYTicksPerPage / n
	if c < 1 {
		c = 1
	}
	return c
}

package ports

import "github.com/otisTek/miloPlot/internal/domain"

// Publisher opens the paginated output document.
type Publisher interface {
	Open(path string) (Document, error)
}

// Document receives finalized figures, one page each. Nothing is written to
// disk until Close succeeds.
type Document interface {
	AddFigure(fig domain.Figure) error
	Pages() int
	Close() error
}

// Previewer flushes a figure to an on-screen viewer.
type Previewer interface {
	Show(fig domain.Figure) error
}

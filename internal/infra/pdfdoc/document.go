// Package pdfdoc writes finalized figures into one paginated PDF document.
package pdfdoc

import (
	"errors"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/otisTek/miloPlot/internal/domain"
	"github.com/otisTek/miloPlot/internal/ports"
)

var errClosed = errors.New("document already closed")

type Publisher struct {
	width  vg.Length
	height vg.Length
}

// NewPublisher sizes every page from page (inches).
func NewPublisher(page domain.PageConfig) *Publisher {
	def := domain.DefaultConfig().Page
	if page.Width <= 0 {
		page.Width = def.Width
	}
	if page.Height <= 0 {
		page.Height = def.Height
	}
	return &Publisher{
		width:  vg.Length(page.Width) * vg.Inch,
		height: vg.Length(page.Height) * vg.Inch,
	}
}

var _ ports.Publisher = (*Publisher)(nil)

// Open prepares an in-memory document for path. The target directory must
// exist; the file itself is only created by Close.
func (p *Publisher) Open(path string) (ports.Document, error) {
	dir := filepath.Dir(path)
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		if err == nil {
			err = errors.New("not a directory")
		}
		return nil, &domain.OpError{Op: "pdfdoc.open", Kind: domain.KindFileAccess, Path: path, Err: err}
	}
	return &Document{
		path:   path,
		canvas: vgpdf.New(p.width, p.height),
	}, nil
}

// Document accumulates one page per figure.
type Document struct {
	path   string
	canvas *vgpdf.Canvas
	pages  int
	closed bool
}

var _ ports.Document = (*Document)(nil)

func (d *Document) AddFigure(fig domain.Figure) error {
	if d.closed {
		return &domain.OpError{Op: "pdfdoc.add_figure", Kind: domain.KindRender, Path: d.path, Err: errClosed}
	}
	if d.pages > 0 {
		d.canvas.NextPage()
	}
	if err := Draw(draw.New(d.canvas), fig); err != nil {
		return err
	}
	d.pages++
	return nil
}

func (d *Document) Pages() int {
	return d.pages
}

// Close writes the document next to its target and renames it into place,
// so a failed write never leaves a truncated PDF at path.
func (d *Document) Close() error {
	if d.closed {
		return &domain.OpError{Op: "pdfdoc.close", Kind: domain.KindRender, Path: d.path, Err: errClosed}
	}
	d.closed = true

	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".miloplot-*.pdf")
	if err != nil {
		return &domain.OpError{Op: "pdfdoc.close", Kind: domain.KindFileAccess, Path: d.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := d.canvas.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &domain.OpError{Op: "pdfdoc.close", Kind: domain.KindRender, Path: d.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &domain.OpError{Op: "pdfdoc.close", Kind: domain.KindFileAccess, Path: d.path, Err: err}
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		_ = os.Remove(tmpName)
		return &domain.OpError{Op: "pdfdoc.close", Kind: domain.KindFileAccess, Path: d.path, Err: err}
	}
	return nil
}

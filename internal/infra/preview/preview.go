// Package preview renders a figure to a PNG and hands it to the desktop
// image viewer.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/otisTek/miloPlot/internal/domain"
	"github.com/otisTek/miloPlot/internal/ports"
)

const dpi = 96

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorYellow,
	chart.ColorAlternateGray,
}

type Viewer struct {
	dir     string
	command []string
	width   int
	height  int

	// launch starts the viewer; replaced in tests.
	launch func(name string, args ...string) error
}

type Option func(*Viewer)

// WithCommand overrides the viewer command; the image path is appended.
func WithCommand(cmd ...string) Option {
	return func(v *Viewer) {
		if len(cmd) > 0 && cmd[0] != "" {
			v.command = cmd
		}
	}
}

// WithDir sets where preview images are written.
func WithDir(dir string) Option {
	return func(v *Viewer) { v.dir = dir }
}

func NewViewer(page domain.PageConfig, opts ...Option) *Viewer {
	def := domain.DefaultConfig().Page
	if page.Width <= 0 {
		page.Width = def.Width
	}
	if page.Height <= 0 {
		page.Height = def.Height
	}
	v := &Viewer{
		dir:     os.TempDir(),
		command: defaultCommand(),
		width:   int(page.Width * dpi),
		height:  int(page.Height * dpi),
		launch: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var _ ports.Previewer = (*Viewer)(nil)

func defaultCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"cmd", "/c", "start", ""}
	default:
		return []string{"xdg-open"}
	}
}

// Show writes the figure as miloplot-figure-<id>.png and opens it.
func (v *Viewer) Show(fig domain.Figure) error {
	path, err := v.Write(fig)
	if err != nil {
		return err
	}
	args := append(append([]string{}, v.command[1:]...), path)
	if err := v.launch(v.command[0], args...); err != nil {
		return &domain.OpError{Op: "preview.show", Kind: domain.KindRender, Path: path, Err: err}
	}
	return nil
}

// Write renders fig to a PNG file and returns its path.
func (v *Viewer) Write(fig domain.Figure) (string, error) {
	img, err := v.Render(fig)
	if err != nil {
		return "", err
	}
	path := filepath.Join(v.dir, fmt.Sprintf("miloplot-figure-%d.png", fig.ID))
	f, err := os.Create(path)
	if err != nil {
		return "", &domain.OpError{Op: "preview.write", Kind: domain.KindFileAccess, Path: path, Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", &domain.OpError{Op: "preview.write", Kind: domain.KindRender, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &domain.OpError{Op: "preview.write", Kind: domain.KindFileAccess, Path: path, Err: err}
	}
	return path, nil
}

// Render stacks one chart per panel into a single image.
func (v *Viewer) Render(fig domain.Figure) (image.Image, error) {
	n := len(fig.Subplots)
	page := image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	draw.Draw(page, page.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	if n == 0 {
		return page, nil
	}

	colors := map[string]int{}
	xr := sharedX(fig.Subplots)
	panelHeight := v.height / n
	for i, sp := range fig.Subplots {
		ch, ok := v.panel(sp, panelHeight, colors, xr)
		if !ok {
			continue
		}

		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return nil, &domain.OpError{Op: "preview.render", Kind: domain.KindRender, Err: err}
		}
		tile, err := png.Decode(&buf)
		if err != nil {
			return nil, &domain.OpError{Op: "preview.render", Kind: domain.KindRender, Err: err}
		}
		at := image.Pt(0, i*panelHeight)
		draw.Draw(page, tile.Bounds().Add(at), tile, tile.Bounds().Min, draw.Src)
	}
	return page, nil
}

func (v *Viewer) panel(sp domain.Subplot, height int, colors map[string]int, xr *chart.ContinuousRange) (chart.Chart, bool) {
	series := make([]chart.Series, 0, len(sp.Curves))
	var curves []domain.Curve
	for _, c := range sp.Curves {
		c = finite(c)
		if len(c.X) == 0 {
			continue
		}
		curves = append(curves, c)
		idx, ok := colors[c.File]
		if !ok {
			idx = len(colors)
			colors[c.File] = idx
		}
		col := palette[idx%len(palette)]
		series = append(series, chart.ContinuousSeries{
			Name:    c.Legend,
			XValues: c.X,
			YValues: c.Y,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 1.5},
		})
	}

	xAxis := chart.XAxis{Style: chart.Style{Hidden: !sp.ShowXAxis}, Range: xr}
	if sp.ShowXAxis {
		xAxis.Name = sp.XLabel
	}
	yAxis := chart.YAxis{Name: sp.YLabel}
	if lo, hi, ok := yRange(curves); ok {
		lo, hi = widen(lo, hi)
		yAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
	}
	if sp.MaxYTicks > 0 {
		yAxis.Ticks = cappedTicks(curves, sp.MaxYTicks)
	}

	ch := chart.Chart{
		Width:      v.width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 12}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	if sp.ShowLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch, len(series) > 0
}

// cappedTicks spreads at most limit labelled ticks over the data range.
func cappedTicks(curves []domain.Curve, limit int) []chart.Tick {
	lo, hi, ok := yRange(curves)
	if !ok || limit < 2 {
		return nil
	}
	lo, hi = widen(lo, hi)
	step := (hi - lo) / float64(limit-1)
	ticks := make([]chart.Tick, 0, limit)
	for i := 0; i < limit; i++ {
		val := lo + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: val, Label: strconv.FormatFloat(val, 'g', 4, 64)})
	}
	return ticks
}

func yRange(curves []domain.Curve) (lo, hi float64, ok bool) {
	for _, c := range curves {
		for _, y := range c.Y {
			if !ok {
				lo, hi, ok = y, y, true
				continue
			}
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
	}
	return lo, hi, ok
}

// sharedX is the union X range of every panel so stacked charts line up.
func sharedX(subplots []domain.Subplot) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, sp := range subplots {
		for _, c := range sp.Curves {
			for _, x := range finite(c).X {
				lo = math.Min(lo, x)
				hi = math.Max(hi, x)
			}
		}
	}
	if lo > hi {
		return nil
	}
	lo, hi = widen(lo, hi)
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// widen keeps a flat series from collapsing the axis to zero width.
func widen(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

// finite drops samples that cannot be drawn and trims X and Y to equal length.
func finite(c domain.Curve) domain.Curve {
	n := len(c.X)
	if len(c.Y) < n {
		n = len(c.Y)
	}
	out := c
	out.X = make([]float64, 0, n)
	out.Y = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x, y := c.X[i], c.Y[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		out.X = append(out.X, x)
		out.Y = append(out.Y, y)
	}
	return out
}

package pdfdoc

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/otisTek/miloPlot/internal/domain"
)

// Draw renders fig onto dc as vertically stacked, aligned panels.
func Draw(dc draw.Canvas, fig domain.Figure) error {
	if len(fig.Subplots) == 0 {
		return nil
	}

	// one colour per file, stable across panels
	colors := map[string]int{}
	for _, sp := range fig.Subplots {
		for _, c := range sp.Curves {
			if _, ok := colors[c.File]; !ok {
				colors[c.File] = len(colors)
			}
		}
	}

	panels := make([][]*plot.Plot, len(fig.Subplots))
	for i, sp := range fig.Subplots {
		p, err := newPanel(sp, colors)
		if err != nil {
			return err
		}
		panels[i] = []*plot.Plot{p}
	}

	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      1,
		PadY:      vg.Millimeter * 2,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 6,
	}
	shareX(panels)

	canvases := plot.Align(panels, tiles, dc)
	for i := range panels {
		panels[i][0].Draw(canvases[i][0])
	}
	return nil
}

func newPanel(sp domain.Subplot, colors map[string]int) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = sp.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if sp.ShowXAxis {
		p.X.Label.Text = sp.XLabel
	} else {
		p.X.Tick.Marker = unlabeledTicks{Ticker: plot.DefaultTicks{}}
	}
	if sp.MaxYTicks > 0 {
		p.Y.Tick.Marker = cappedTicks{Ticker: plot.DefaultTicks{}, limit: sp.MaxYTicks}
	}

	for _, c := range sp.Curves {
		xys := points(c)
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, &domain.OpError{Op: "pdfdoc.panel", Kind: domain.KindRender, Path: c.File, Err: err}
		}
		line.Color = plotutil.Color(colors[c.File])
		line.Width = vg.Points(1)
		p.Add(line)
		if sp.ShowLegend && c.Legend != "" {
			p.Legend.Add(c.Legend, line)
		}
	}
	return p, nil
}

// shareX gives every panel the union X range; panels without data get a
// unit range so their axes still draw.
func shareX(panels [][]*plot.Plot) {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, row := range panels {
		p := row[0]
		xmin = math.Min(xmin, p.X.Min)
		xmax = math.Max(xmax, p.X.Max)
	}
	for _, row := range panels {
		p := row[0]
		if xmin <= xmax {
			p.X.Min, p.X.Max = xmin, xmax
		} else {
			p.X.Min, p.X.Max = 0, 1
		}
		if p.Y.Min > p.Y.Max {
			p.Y.Min, p.Y.Max = 0, 1
		}
	}
}

// points pairs the curve's columns, dropping samples that cannot be drawn.
func points(c domain.Curve) plotter.XYs {
	n := len(c.X)
	if len(c.Y) < n {
		n = len(c.Y)
	}
	xys := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		x, y := c.X[i], c.Y[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys
}

// unlabeledTicks keeps tick marks but drops their labels.
type unlabeledTicks struct {
	plot.Ticker
}

func (t unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

// cappedTicks thins labelled ticks down to at most limit.
type cappedTicks struct {
	plot.Ticker
	limit int
}

func (t cappedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	var major []int
	for i, tk := range ticks {
		if tk.Label != "" {
			major = append(major, i)
		}
	}
	if t.limit <= 0 || len(major) <= t.limit {
		return ticks
	}
	step := (len(major) + t.limit - 1) / t.limit
	for j, i := range major {
		if j%step != 0 {
			ticks[i].Label = ""
		}
	}
	return ticks
}

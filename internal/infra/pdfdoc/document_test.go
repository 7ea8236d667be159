package pdfdoc

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"

	"github.com/otisTek/miloPlot/internal/domain"
)

func sampleFigure(id int) domain.Figure {
	curve := domain.Curve{Legend: "Run A", File: "a.dat", X: []float64{0, 1, 2}, Y: []float64{0, 100, 250}}
	return domain.Figure{
		ID: id,
		Subplots: []domain.Subplot{
			{YLabel: "Altitude, h, feet", ShowLegend: true, Curves: []domain.Curve{curve}},
			{YLabel: "Velocity, V, f/s", XLabel: "Time, t, seconds", ShowXAxis: true, Curves: []domain.Curve{curve}},
		},
	}
}

func TestDocumentWritesOnClose(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "out.pdf")

	doc, err := NewPublisher(domain.PageConfig{}).Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 1; i <= 2; i++ {
		if err := doc.AddFigure(sampleFigure(i)); err != nil {
			t.Fatalf("add figure %d: %v", i, err)
		}
	}
	if doc.Pages() != 2 {
		t.Fatalf("expected 2 pages, got %d", doc.Pages())
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("document must not exist before Close")
	}

	if err := doc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("expected a PDF header")
	}

	entries, _ := os.ReadDir(tmp)
	if len(entries) != 1 {
		t.Fatalf("expected only the output file, got %d entries", len(entries))
	}

	if err := doc.Close(); !domain.IsKind(err, domain.KindRender) {
		t.Fatalf("second close must fail, got %v", err)
	}
	if err := doc.AddFigure(sampleFigure(3)); err == nil {
		t.Fatalf("adding after close must fail")
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := NewPublisher(domain.PageConfig{Width: 8.5, Height: 11}).Open(filepath.Join(t.TempDir(), "nope", "out.pdf"))
	if !domain.IsKind(err, domain.KindFileAccess) {
		t.Fatalf("expected file access error, got %v", err)
	}
}

func TestDocumentEmptyPanel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	doc, err := NewPublisher(domain.PageConfig{}).Open(path)
	if err != nil {
		t.Fatal(err)
	}
	fig := domain.Figure{ID: 1, Subplots: []domain.Subplot{{YLabel: "NOPE", XLabel: "TIME", ShowXAxis: true}}}
	if err := doc.AddFigure(fig); err != nil {
		t.Fatalf("a panel without curves must still render: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestPointsDropsNonFinite(t *testing.T) {
	c := domain.Curve{
		X: []float64{0, 1, 2, 3},
		Y: []float64{1, math.NaN(), math.Inf(1), 4},
	}
	xys := points(c)
	if len(xys) != 2 || xys[1].X != 3 || xys[1].Y != 4 {
		t.Fatalf("unexpected points %v", xys)
	}
}

func TestUnlabeledTicks(t *testing.T) {
	ticks := unlabeledTicks{Ticker: plot.DefaultTicks{}}.Ticks(0, 100)
	if len(ticks) == 0 {
		t.Fatalf("expected tick marks")
	}
	for _, tk := range ticks {
		if tk.Label != "" {
			t.Fatalf("expected no labels, got %q", tk.Label)
		}
	}
}

func TestCappedTicks(t *testing.T) {
	labelled := func(ts []plot.Tick) int {
		n := 0
		for _, tk := range ts {
			if tk.Label != "" {
				n++
			}
		}
		return n
	}

	base := plot.DefaultTicks{}.Ticks(0, 100)
	for _, limit := range []int{1, 2, 3} {
		got := cappedTicks{Ticker: plot.DefaultTicks{}, limit: limit}.Ticks(0, 100)
		if len(got) != len(base) {
			t.Fatalf("tick marks must be kept")
		}
		if n := labelled(got); n > limit || n == 0 {
			t.Errorf("limit %d: %d labelled ticks", limit, n)
		}
	}

	got := cappedTicks{Ticker: plot.DefaultTicks{}, limit: 100}.Ticks(0, 100)
	if labelled(got) != labelled(base) {
		t.Fatalf("generous limit must not drop labels")
	}
}

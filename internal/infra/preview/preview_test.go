package preview

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/otisTek/miloPlot/internal/domain"
)

func sampleFigure() domain.Figure {
	a := domain.Curve{Legend: "Run A", File: "a.dat", X: []float64{0, 1, 2}, Y: []float64{0, 100, 250}}
	b := domain.Curve{Legend: "Run B", File: "b.dat", X: []float64{0, 1, 2, 3}, Y: []float64{0, 90, math.NaN(), 400}}
	return domain.Figure{
		ID: 3,
		Subplots: []domain.Subplot{
			{YLabel: "ALT", ShowLegend: true, MaxYTicks: 8, Curves: []domain.Curve{a, b}},
			{YLabel: "NOPE"},
			{YLabel: "VEL", XLabel: "TIME", ShowXAxis: true, MaxYTicks: 8, Curves: []domain.Curve{a}},
		},
	}
}

func TestShowWritesImageAndLaunchesViewer(t *testing.T) {
	dir := t.TempDir()
	v := NewViewer(domain.PageConfig{Width: 4, Height: 3}, WithDir(dir), WithCommand("feh", "--scale-down"))

	var gotName string
	var gotArgs []string
	v.launch = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	if err := v.Show(sampleFigure()); err != nil {
		t.Fatalf("show: %v", err)
	}

	want := filepath.Join(dir, "miloplot-figure-3.png")
	if gotName != "feh" || len(gotArgs) != 2 || gotArgs[0] != "--scale-down" || gotArgs[1] != want {
		t.Fatalf("unexpected launch %s %v", gotName, gotArgs)
	}
	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) < 8 || string(b[1:4]) != "PNG" {
		t.Fatalf("expected a PNG image")
	}
}

func TestShowLaunchFailure(t *testing.T) {
	v := NewViewer(domain.PageConfig{Width: 4, Height: 3}, WithDir(t.TempDir()))
	v.launch = func(string, ...string) error { return errors.New("no display") }

	err := v.Show(sampleFigure())
	if !domain.IsKind(err, domain.KindRender) {
		t.Fatalf("expected render error, got %v", err)
	}
}

func TestRenderSize(t *testing.T) {
	v := NewViewer(domain.PageConfig{Width: 4, Height: 3})
	img, err := v.Render(sampleFigure())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 4*dpi || b.Dy() != 3*dpi {
		t.Fatalf("unexpected size %v", b)
	}

	empty, err := v.Render(domain.Figure{ID: 1})
	if err != nil || empty.Bounds().Dx() != 4*dpi {
		t.Fatalf("empty figure must render a blank page: %v", err)
	}
}

func TestWriteMissingDir(t *testing.T) {
	v := NewViewer(domain.PageConfig{Width: 2, Height: 2}, WithDir(filepath.Join(t.TempDir(), "gone")))
	_, err := v.Write(sampleFigure())
	if !domain.IsKind(err, domain.KindFileAccess) {
		t.Fatalf("expected file access error, got %v", err)
	}
}

func TestCappedTicks(t *testing.T) {
	curves := []domain.Curve{{Y: []float64{10, 20}}, {Y: []float64{-5, 40}}}
	ticks := cappedTicks(curves, 4)
	if len(ticks) != 4 {
		t.Fatalf("expected 4 ticks, got %d", len(ticks))
	}
	if ticks[0].Value != -5 || ticks[3].Value != 40 {
		t.Fatalf("ticks must span the data, got %v..%v", ticks[0].Value, ticks[3].Value)
	}

	if got := cappedTicks(nil, 4); got != nil {
		t.Fatalf("no data means no ticks")
	}
	flat := cappedTicks([]domain.Curve{{Y: []float64{7, 7}}}, 3)
	if len(flat) != 3 || flat[0].Value != 6 || flat[2].Value != 8 {
		t.Fatalf("flat data must widen the range, got %v", flat)
	}
}

func TestSharedX(t *testing.T) {
	r := sharedX(sampleFigure().Subplots)
	if r == nil || r.Min != 0 || r.Max != 3 {
		t.Fatalf("unexpected shared range %+v", r)
	}
	if sharedX([]domain.Subplot{{}}) != nil {
		t.Fatalf("no data means no range")
	}
}

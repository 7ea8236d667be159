package usecase

import "github.com/otisTek/miloPlot/internal/domain"

// BuildFigure lays out spec as stacked panels and slices each file's
// columns into curves. A file missing either variable of a panel is left out
// of that panel and reported as a Miss.
func BuildFigure(s *domain.Session, spec domain.PlotSpec, titles domain.TitleTable) (domain.Figure, []domain.Miss) {
	n := len(spec.Ys)
	fig := domain.Figure{
		ID:       spec.FigureID,
		Subplots: make([]domain.Subplot, 0, n),
	}
	legends := s.HasLegends()

	var misses []domain.Miss
	for k, y := range spec.Ys {
		sp := domain.Subplot{
			YLabel:     titles.Title(y, n),
			ShowXAxis:  k == n-1,
			ShowLegend: k == 0 && legends,
			MaxYTicks:  domain.YTickCap(n),
		}
		if sp.ShowXAxis {
			sp.XLabel = titles.Title(spec.X, n)
		}

		for _, f := range s.Files {
			xi, xok := domain.Resolve(spec.X, f.Names)
			if !xok {
				misses = append(misses, domain.Miss{Variable: spec.X, File: f.Path})
			}
			yi, yok := domain.Resolve(y, f.Names)
			if !yok {
				misses = append(misses, domain.Miss{Variable: y, File: f.Path})
			}
			if !xok || !yok {
				continue
			}
			sp.Curves = append(sp.Curves, domain.Curve{
				Legend: f.Legend,
				File:   f.Path,
				X:      f.Column(xi),
				Y:      f.Column(yi),
			})
		}
		fig.Subplots = append(fig.Subplots, sp)
	}
	return fig, misses
}

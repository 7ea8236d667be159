package ports

import "github.com/otisTek/miloPlot/internal/domain"

// TrajectoryReader loads one OTIS-style plot file.
type TrajectoryReader interface {
	Read(path string) (domain.LoadedFile, error)
}

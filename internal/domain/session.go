package domain

import "errors"

// DefaultOutputPath is where the paginated document goes unless overridden.
const DefaultOutputPath = "miloPlot.pdf"

// Session is the state of one program run. Files only grow during the
// loading phase and are read-only once the master list is built.
type Session struct {
	Files         []LoadedFile
	Master        MasterList
	OutputPath    string
	FigureCounter int
}

// NewSession starts a session writing to outputPath (DefaultOutputPath when
// empty).
func NewSession(outputPath string) *Session {
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	return &Session{
		OutputPath:    outputPath,
		FigureCounter: 1,
	}
}

func (s *Session) AddFile(f LoadedFile) {
	s.Files = append(s.Files, f)
}

// BuildMaster folds Merge over every loaded file. Plotting needs at least
// one file.
func (s *Session) BuildMaster() error {
	if len(s.Files) == 0 {
		return &OpError{
			Op:   "session.build_master",
			Kind: KindInvalidConfig,
			Err:  errors.New("no data files loaded"),
		}
	}
	var master MasterList
	for _, f := range s.Files {
		master = Merge(master, f.Names)
	}
	s.Master = master
	return nil
}

// HasLegends reports whether any loaded file supplied a legend.
func (s *Session) HasLegends() bool {
	for _, f := range s.Files {
		if f.Legend != "" {
			return true
		}
	}
	return false
}

// NextFigure advances the figure counter and returns the new value.
func (s *Session) NextFigure() int {
	s.FigureCounter++
	return s.FigureCounter
}

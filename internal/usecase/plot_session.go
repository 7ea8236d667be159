package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/otisTek/miloPlot/internal/domain"
	"github.com/otisTek/miloPlot/internal/ports"
)

type sessionState int

const (
	stateLoadingFiles sessionState = iota
	stateBuildingMaster
	stateFigureSetup
	stateFigureAccumulate
	stateTerminated
)

func (s sessionState) String() string {
	switch s {
	case stateLoadingFiles:
		return "loading_files"
	case stateBuildingMaster:
		return "building_master_list"
	case stateFigureSetup:
		return "figure_setup"
	case stateFigureAccumulate:
		return "figure_accumulate"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// PlotSession drives one run: load files, merge their variables, then build
// figures from the command source until it ends the session.
type PlotSession struct {
	source    ports.CommandSource
	reader    ports.TrajectoryReader
	publisher ports.Publisher
	previewer ports.Previewer
	titles    domain.TitleTable
	out       io.Writer
	log       *slog.Logger
}

type Option func(*PlotSession)

func WithPreviewer(p ports.Previewer) Option {
	return func(ps *PlotSession) { ps.previewer = p }
}

func WithTitles(t domain.TitleTable) Option {
	return func(ps *PlotSession) { ps.titles = t }
}

// WithOutput sets where user-facing notices are printed.
func WithOutput(w io.Writer) Option {
	return func(ps *PlotSession) { ps.out = w }
}

func WithLogger(l *slog.Logger) Option {
	return func(ps *PlotSession) { ps.log = l }
}

func NewPlotSession(src ports.CommandSource, reader ports.TrajectoryReader, publisher ports.Publisher, opts ...Option) *PlotSession {
	ps := &PlotSession{
		source:    src,
		reader:    reader,
		publisher: publisher,
		titles:    domain.DefaultTitles(),
		out:       io.Discard,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// Outcome summarises a finished session.
type Outcome struct {
	Files      int
	Figures    int
	OutputPath string
	Written    bool
}

// Execute runs the state machine to completion. The output document is
// only written when the command source ends the session normally; any
// error leaves nothing on disk.
func (ps *PlotSession) Execute(ctx context.Context, s *domain.Session) (Outcome, error) {
	r := &run{ps: ps, s: s, state: stateLoadingFiles}

	for r.state != stateTerminated {
		if err := ctx.Err(); err != nil {
			return r.outcome(), err
		}

		var err error
		switch r.state {
		case stateLoadingFiles:
			err = r.loadFile(ctx)
		case stateBuildingMaster:
			err = r.buildMaster()
		case stateFigureSetup:
			err = r.setupFigure(ctx)
		case stateFigureAccumulate:
			err = r.accumulate(ctx)
		}
		if err != nil {
			ps.log.Debug("session.aborted", "state", r.state.String(), "error", err)
			return r.outcome(), err
		}
	}
	return r.outcome(), nil
}

type run struct {
	ps    *PlotSession
	s     *domain.Session
	state sessionState

	spec    domain.PlotSpec
	fig     domain.Figure
	doc     ports.Document
	figures int
	written bool
}

func (r *run) outcome() Outcome {
	return Outcome{
		Files:      len(r.s.Files),
		Figures:    r.figures,
		OutputPath: r.s.OutputPath,
		Written:    r.written,
	}
}

func (r *run) loadFile(ctx context.Context) error {
	d, err := r.ps.source.NextFile(ctx)
	if err != nil {
		return err
	}

	switch d.Kind {
	case domain.DirectiveAddFile:
		f, err := r.ps.reader.Read(d.Path)
		if err != nil {
			r.ps.log.Warn("session.file_failed", "path", d.Path, "error", err)
			return r.ps.source.FileFailed(d, err)
		}
		legend, err := r.ps.source.Legend(ctx, d)
		if err != nil {
			return err
		}
		f.Legend = legend
		r.s.AddFile(f)
		r.ps.log.Info("session.file_loaded", "path", f.Path, "vars", f.NumVars(), "records", f.NumRecords())

	case domain.DirectiveSetOutput:
		r.s.OutputPath = d.Path
		r.state = stateBuildingMaster

	case domain.DirectiveFilesDone:
		r.state = stateBuildingMaster

	default:
		return unexpected("session.load_files", d)
	}
	return nil
}

func (r *run) buildMaster() error {
	if err := r.s.BuildMaster(); err != nil {
		return err
	}
	r.ps.log.Info("session.master_built", "files", len(r.s.Files), "vars", len(r.s.Master))
	r.ps.source.ShowVariables(r.s.Master)
	r.state = stateFigureSetup
	return nil
}

func (r *run) setupFigure(ctx context.Context) error {
	d, err := r.ps.source.NextPlot(ctx, r.s.Master)
	if err != nil {
		return err
	}

	switch d.Kind {
	case domain.DirectiveSetOutput:
		r.s.OutputPath = d.Path
	case domain.DirectiveEnd:
		return r.finish()
	case domain.DirectivePlot:
		r.spec = domain.PlotSpec{
			X:        d.Plot.X,
			Ys:       append([]string(nil), d.Plot.Ys...),
			FigureID: r.s.FigureCounter,
		}
		r.render()
		r.state = stateFigureAccumulate
	default:
		return unexpected("session.figure_setup", d)
	}
	return nil
}

func (r *run) accumulate(ctx context.Context) error {
	d, err := r.ps.source.NextAction(ctx, r.s.Master)
	if err != nil {
		return err
	}

	switch d.Kind {
	case domain.DirectiveAddY:
		r.spec.Ys = append(r.spec.Ys, d.Y)
		r.render()

	case domain.DirectiveNewFigure:
		r.ps.log.Debug("session.figure_discarded", "figure", r.fig.ID)
		r.s.NextFigure()
		r.state = stateFigureSetup

	case domain.DirectiveShow:
		if r.ps.previewer == nil {
			fmt.Fprintln(r.ps.out, "no figure viewer configured")
			return nil
		}
		if err := r.ps.previewer.Show(r.fig); err != nil {
			r.ps.log.Warn("session.show_failed", "figure", r.fig.ID, "error", err)
			fmt.Fprintf(r.ps.out, "could not show figure %d: %v\n", r.fig.ID, err)
		}

	case domain.DirectiveFinalize:
		if r.doc == nil {
			doc, err := r.ps.publisher.Open(r.s.OutputPath)
			if err != nil {
				return err
			}
			r.doc = doc
		}
		if err := r.doc.AddFigure(r.fig); err != nil {
			return err
		}
		r.figures++
		r.ps.log.Info("session.figure_written", "figure", r.fig.ID, "subplots", len(r.fig.Subplots))
		r.s.NextFigure()
		r.state = stateFigureSetup

	default:
		return unexpected("session.figure_accumulate", d)
	}
	return nil
}

// render rebuilds the current figure and reports files lacking a variable.
func (r *run) render() {
	fig, misses := BuildFigure(r.s, r.spec, r.ps.titles)
	for _, m := range misses {
		fmt.Fprintf(r.ps.out, "Warning %s not in the list of variables for file %s\n", m.Variable, m.File)
		r.ps.log.Warn("session.variable_missing", "variable", m.Variable, "file", m.File)
	}
	r.fig = fig
}

func (r *run) finish() error {
	if r.doc == nil {
		return domain.MalformedCommand("session.finish", "", "no plots specified")
	}
	if err := r.doc.Close(); err != nil {
		return err
	}
	r.written = true
	r.ps.log.Info("document.closed", "path", r.s.OutputPath, "pages", r.doc.Pages())
	r.state = stateTerminated
	return nil
}

func unexpected(op string, d domain.Directive) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindMalformedCommand,
		Err:  fmt.Errorf("unexpected directive %s: %w", d.Kind, domain.ErrMalformedCommand),
	}
}

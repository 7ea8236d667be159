package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otisTek/miloPlot/internal/buildinfo"
	"github.com/otisTek/miloPlot/internal/domain"
	"github.com/otisTek/miloPlot/internal/infra/config"
	"github.com/otisTek/miloPlot/internal/infra/logger"
	"github.com/otisTek/miloPlot/internal/infra/otisfile"
	"github.com/otisTek/miloPlot/internal/infra/pdfdoc"
	"github.com/otisTek/miloPlot/internal/infra/preview"
	"github.com/otisTek/miloPlot/internal/infra/prompt"
	"github.com/otisTek/miloPlot/internal/infra/script"
	"github.com/otisTek/miloPlot/internal/ports"
	"github.com/otisTek/miloPlot/internal/usecase"
)

const (
	exitOK    = 0
	exitError = 1
	exitQuit  = 2
)

func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], defaultDeps()))
}

// deps are the process-level collaborators the root command needs.
type deps struct {
	stdout    io.Writer
	stderr    io.Writer
	newReader func(historyFile string) (prompt.LineReader, error)
	previewer func(cfg domain.Config) ports.Previewer
}

func defaultDeps() deps {
	return deps{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newReader: prompt.NewTerminalReader,
		previewer: func(cfg domain.Config) ports.Previewer {
			return preview.NewViewer(cfg.Page, preview.WithCommand(strings.Fields(cfg.Viewer)...))
		},
	}
}

func run(ctx context.Context, args []string, d deps) int {
	cmd := newRootCmd(d)
	cmd.SetArgs(args)
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	err := cmd.ExecuteContext(ctx)
	var se *shownError
	if err != nil && !errors.As(err, &se) && !errors.Is(err, domain.ErrQuit) {
		// flag and argument errors from cobra itself
		fmt.Fprintln(d.stderr, "miloplot:", err)
		fmt.Fprintln(d.stderr, "run miloplot --help for usage")
	}
	return exitCode(err)
}

// shownError marks an error the user has already been told about.
type shownError struct{ err error }

func (e *shownError) Error() string { return e.err.Error() }
func (e *shownError) Unwrap() error { return e.err }

func shown(w io.Writer, err error) error {
	report(w, err)
	return &shownError{err: err}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrQuit):
		return exitQuit
	default:
		return exitError
	}
}

type options struct {
	script     string
	configPath string
	output     string
	about      bool
	debug      bool
}

func newRootCmd(d deps) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "miloplot",
		Short:         "miloPlot: OTIS trajectory plotting to PDF",
		Long:          "Plot OTIS trajectory output files interactively, or from a command file with -f.",
		Args:          cobra.NoArgs,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd.Context(), d, opts, cmd.Flags().Changed("output"))
		},
	}
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	f := cmd.Flags()
	f.StringVarP(&opts.script, "file", "f", "", "read commands from a command file instead of the keyboard")
	f.BoolVarP(&opts.about, "about", "h", false, "print the help notice, then start an interactive session")
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default: nearest "+config.DefaultPath+" from the working directory up)")
	f.StringVarP(&opts.output, "output", "o", "", "PDF document path (an outputfile command takes precedence)")
	f.BoolVar(&opts.debug, "debug", false, "enable verbose logging to .miloplot/logs/miloplot.log")
	// -h belongs to --about, so help is long-form only
	f.Bool("help", false, "help for miloplot")
	return cmd
}

func execute(ctx context.Context, d deps, opts options, outputSet bool) error {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	logRoot := wd
	if p, ok := config.Find(wd); ok {
		logRoot = filepath.Dir(p)
	}

	cleanup, lerr := logger.Setup(logger.Config{Root: logRoot, Debug: opts.debug})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}
	if lerr != nil {
		fmt.Fprintln(d.stderr, "miloplot: logging disabled:", lerr)
	}
	log := logger.L()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return shown(d.stderr, err)
	}
	if outputSet {
		cfg.Output = opts.output
	}

	var (
		src       ports.CommandSource
		sessOpts  []usecase.Option
		closeSrc  func() error
		scripted  = opts.script != ""
		theme     = prompt.NewTheme(d.stdout)
		publisher = pdfdoc.NewPublisher(cfg.Page)
	)
	if scripted {
		q, err := script.Load(opts.script)
		if err != nil {
			return shown(d.stderr, err)
		}
		src = script.NewSource(q)
		log.Info("cli.scripted", "path", opts.script, "lines", q.Len())
	} else {
		printIntro(d.stdout, theme, opts.about)
		in, err := d.newReader(cfg.HistoryFile)
		if err != nil {
			return shown(d.stderr, err)
		}
		closeSrc = in.Close
		src = prompt.NewSource(in, d.stdout)
		sessOpts = append(sessOpts, usecase.WithPreviewer(d.previewer(cfg)))
		log.Info("cli.interactive", "history", cfg.HistoryFile)
	}
	if closeSrc != nil {
		defer func() { _ = closeSrc() }()
	}

	sessOpts = append(sessOpts,
		usecase.WithTitles(cfg.TitleTable()),
		usecase.WithOutput(d.stdout),
		usecase.WithLogger(log),
	)
	ps := usecase.NewPlotSession(src, otisfile.NewReader(), publisher, sessOpts...)

	outcome, err := ps.Execute(ctx, domain.NewSession(cfg.Output))
	if err != nil {
		log.Info("cli.finished", "error", err, "files", outcome.Files, "figures", outcome.Figures)
		if errors.Is(err, domain.ErrQuit) {
			fmt.Fprintln(d.stdout)
			return err
		}
		return shown(d.stdout, err)
	}

	log.Info("cli.finished", "output", outcome.OutputPath, "figures", outcome.Figures)
	fmt.Fprintf(d.stdout, "  miloplot successful exit, plots written to %s\n", outcome.OutputPath)
	return nil
}

func printIntro(w io.Writer, theme prompt.Theme, about bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Banner("V"+buildinfo.Version, buildinfo.Copyright))
	if about {
		fmt.Fprintln(w, theme.Warning.Render("# help function coming real soon now #"))
		fmt.Fprintln(w, theme.Help.Render("  run miloplot --help for the command line flags"))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "enter quit at any prompt to terminate")
	fmt.Fprintln(w)
}

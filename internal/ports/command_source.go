package ports

import (
	"context"

	"github.com/otisTek/miloPlot/internal/domain"
)

// CommandSource yields the user's directives, from a live prompt or from a
// pre-loaded script. The plot session is written against this contract only.
type CommandSource interface {
	// NextFile returns DirectiveAddFile, DirectiveSetOutput or
	// DirectiveFilesDone.
	NextFile(ctx context.Context) (domain.Directive, error)

	// Legend returns the display label for a file that loaded successfully.
	Legend(ctx context.Context, d domain.Directive) (string, error)

	// FileFailed decides what a failed load means: nil retries the loading
	// phase, a non-nil error aborts the run.
	FileFailed(d domain.Directive, err error) error

	// ShowVariables is called once the master list is built.
	ShowVariables(master domain.MasterList)

	// NextPlot returns DirectivePlot, DirectiveSetOutput or DirectiveEnd.
	NextPlot(ctx context.Context, master domain.MasterList) (domain.Directive, error)

	// NextAction returns DirectiveAddY, DirectiveNewFigure, DirectiveShow or
	// DirectiveFinalize for the figure under construction.
	NextAction(ctx context.Context, master domain.MasterList) (domain.Directive, error)
}

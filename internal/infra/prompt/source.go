// Package prompt implements the interactive command source: a fixed dialogue
// of terminal prompts where "quit" is honoured at every question.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/otisTek/miloPlot/internal/domain"
	"github.com/otisTek/miloPlot/internal/ports"
)

const namesPerLine = 8

type Source struct {
	in    LineReader
	out   io.Writer
	theme Theme
}

func NewSource(in LineReader, out io.Writer) *Source {
	return &Source{
		in:    in,
		out:   out,
		theme: NewTheme(out),
	}
}

var _ ports.CommandSource = (*Source)(nil)

// ask reads one answer and maps the cancellation keyword, an interrupt and
// end of input to domain.ErrQuit.
func (s *Source) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := s.in.ReadLine(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, domain.ErrQuit) {
			return "", domain.ErrQuit
		}
		return "", &domain.OpError{Op: "prompt.read", Kind: domain.KindFileAccess, Err: err}
	}
	if domain.IsQuit(line) {
		return "", domain.ErrQuit
	}
	return strings.TrimSpace(line), nil
}

func (s *Source) NextFile(ctx context.Context) (domain.Directive, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Please enter a file name for the plot data")
	ans, err := s.ask(ctx, "        enter <CR> to move on to plotting:  ")
	if err != nil {
		return domain.Directive{}, err
	}
	if ans == "" || strings.HasPrefix(ans, "<CR>") {
		return domain.Directive{Kind: domain.DirectiveFilesDone}, nil
	}
	return domain.Directive{Kind: domain.DirectiveAddFile, Path: ans}, nil
}

func (s *Source) Legend(ctx context.Context, _ domain.Directive) (string, error) {
	return s.ask(ctx, " Please enter a data legend for this file:  ")
}

// FileFailed reports the problem and asks for another file.
func (s *Source) FileFailed(d domain.Directive, err error) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.theme.Warning.Render(fmt.Sprintf(" problems with file %s. Try again", d.Path)))
	if detail := describe(err); detail != "" {
		fmt.Fprintln(s.out, s.theme.Help.Render("   "+detail))
	}
	return nil
}

func (s *Source) ShowVariables(master domain.MasterList) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.theme.Title.Render(" Variables available for plotting"))
	for i, name := range master {
		fmt.Fprintf(s.out, "%-20s ", name)
		if (i+1)%namesPerLine == 0 {
			fmt.Fprintln(s.out)
		}
	}
	if len(master)%namesPerLine != 0 {
		fmt.Fprintln(s.out)
	}
	fmt.Fprintln(s.out)
}

func (s *Source) NextPlot(ctx context.Context, master domain.MasterList) (domain.Directive, error) {
	fmt.Fprintln(s.out)
	x, err := s.variable(ctx, "x", master)
	if err != nil {
		return domain.Directive{}, err
	}
	y, err := s.variable(ctx, "y", master)
	if err != nil {
		return domain.Directive{}, err
	}
	return domain.Directive{
		Kind: domain.DirectivePlot,
		Plot: domain.PlotSpec{X: x, Ys: []string{y}},
	}, nil
}

func (s *Source) NextAction(ctx context.Context, master domain.MasterList) (domain.Directive, error) {
	for {
		ans, err := s.ask(ctx, "(a)dd Y,(n)ew plot,(s)how,(quit) ")
		if err != nil {
			return domain.Directive{}, err
		}
		if ans == "" {
			continue
		}

		switch strings.ToLower(ans[:1]) {
		case "a":
			y, err := s.variable(ctx, "y", master)
			if err != nil {
				return domain.Directive{}, err
			}
			return domain.Directive{Kind: domain.DirectiveAddY, Y: y}, nil
		case "n":
			return domain.Directive{Kind: domain.DirectiveNewFigure}, nil
		case "s":
			return domain.Directive{Kind: domain.DirectiveShow}, nil
		default:
			fmt.Fprintln(s.out, s.theme.Help.Render("   choose a, n, s or quit"))
		}
	}
}

// variable re-prompts until the answer names a variable some file carries.
func (s *Source) variable(ctx context.Context, axis string, master domain.MasterList) (string, error) {
	for {
		ans, err := s.ask(ctx, " Enter the "+axis+" variable ")
		if err != nil {
			return "", err
		}
		if master.Contains(ans) {
			return ans, nil
		}
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, s.theme.Warning.Render(fmt.Sprintf("   %s not in the list of variables, try again", ans)))
	}
}

func describe(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Err != nil {
		return oe.Err.Error()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

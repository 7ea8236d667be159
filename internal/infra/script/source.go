package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/otisTek/miloPlot/internal/domain"
	"github.com/otisTek/miloPlot/internal/ports"
)

const (
	keywordInputFile  = "inputfile"
	keywordOutputFile = "outputfile"
	keywordPlot       = "plot"
)

// Source replays a command script. Every directive comes from the head of
// the queue; nothing is verified against the master list.
type Source struct {
	q       *Queue
	started bool
	plotted bool
}

func NewSource(q *Queue) *Source {
	if q == nil {
		q = NewQueue(nil)
	}
	return &Source{q: q}
}

var _ ports.CommandSource = (*Source)(nil)

func (s *Source) NextFile(_ context.Context) (domain.Directive, error) {
	if !s.started {
		s.started = true
		if s.q.Blank() {
			return domain.Directive{}, domain.MalformedCommand("script.next_file", "", "blank command file?")
		}
	}

	line, ok := s.q.Peek()
	if !ok {
		return domain.Directive{Kind: domain.DirectiveFilesDone}, nil
	}
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		s.q.Pop()
		return domain.Directive{Kind: domain.DirectiveFilesDone}, nil
	}

	switch keyword(tokens) {
	case keywordInputFile:
		if len(tokens) < 2 {
			return domain.Directive{}, domain.MalformedCommand("script.next_file", line, "inputfile needs a path")
		}
		s.q.Pop()
		if s.q.Empty() {
			return domain.Directive{}, domain.MalformedCommand("script.next_file", line, "no plots specified")
		}
		return domain.Directive{
			Kind:   domain.DirectiveAddFile,
			Path:   tokens[1],
			Legend: strings.Join(tokens[2:], " "),
		}, nil

	case keywordOutputFile:
		if len(tokens) < 2 {
			return domain.Directive{}, domain.MalformedCommand("script.next_file", line, "outputfile needs a path")
		}
		s.q.Pop()
		return domain.Directive{Kind: domain.DirectiveSetOutput, Path: tokens[1]}, nil

	case keywordPlot:
		return domain.Directive{Kind: domain.DirectiveFilesDone}, nil

	default:
		return domain.Directive{}, invalidKeyword("script.next_file", tokens[0], line)
	}
}

func (s *Source) Legend(_ context.Context, d domain.Directive) (string, error) {
	return d.Legend, nil
}

// FileFailed aborts: a script cannot be asked for another file name.
func (s *Source) FileFailed(_ domain.Directive, err error) error {
	return err
}

func (s *Source) ShowVariables(_ domain.MasterList) {}

func (s *Source) NextPlot(_ context.Context, _ domain.MasterList) (domain.Directive, error) {
	line, ok := s.q.Peek()
	if !ok {
		return domain.Directive{Kind: domain.DirectiveEnd}, nil
	}
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return domain.Directive{Kind: domain.DirectiveEnd}, nil
	}

	switch keyword(tokens) {
	case keywordPlot:
		if len(tokens) < 3 {
			return domain.Directive{}, domain.MalformedCommand("script.next_plot", line, "no x y pairs specified")
		}
		s.q.Pop()
		s.plotted = true
		ys := make([]string, len(tokens)-2)
		copy(ys, tokens[2:])
		return domain.Directive{
			Kind: domain.DirectivePlot,
			Plot: domain.PlotSpec{X: tokens[1], Ys: ys},
		}, nil

	case keywordOutputFile:
		if s.plotted {
			return domain.Directive{}, domain.MalformedCommand("script.next_plot", line, "outputfile must precede every plot line")
		}
		if len(tokens) < 2 {
			return domain.Directive{}, domain.MalformedCommand("script.next_plot", line, "outputfile needs a path")
		}
		s.q.Pop()
		return domain.Directive{Kind: domain.DirectiveSetOutput, Path: tokens[1]}, nil

	case keywordInputFile:
		return domain.Directive{}, domain.MalformedCommand("script.next_plot", line, "inputfile must precede every plot line")

	default:
		return domain.Directive{}, invalidKeyword("script.next_plot", tokens[0], line)
	}
}

// NextAction always finalizes: a plot line is a complete figure.
func (s *Source) NextAction(_ context.Context, _ domain.MasterList) (domain.Directive, error) {
	return domain.Directive{Kind: domain.DirectiveFinalize}, nil
}

// Remaining reports how many lines are left unprocessed.
func (s *Source) Remaining() int {
	return s.q.Len()
}

func keyword(tokens []string) string {
	return strings.ToLower(tokens[0])
}

func invalidKeyword(op, word, line string) error {
	return domain.MalformedCommand(op, line, fmt.Sprintf("invalid key word %q", word))
}

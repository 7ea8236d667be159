package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/otisTek/miloPlot/internal/domain"
)

// LineReader returns one line of user input per prompt. It reports io.EOF
// when input is exhausted and domain.ErrQuit on an interrupt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewTerminalReader uses readline (history, line editing) when stdin is a
// terminal and a plain line scanner otherwise.
func NewTerminalReader(historyFile string) (LineReader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewScannerReader(os.Stdin, os.Stdout), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", domain.ErrQuit
		}
		return "", err
	}
	return line, nil
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

type scannerReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewScannerReader reads answers line by line from in, echoing prompts to out.
func NewScannerReader(in io.Reader, out io.Writer) LineReader {
	return &scannerReader{sc: bufio.NewScanner(in), out: out}
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

func (r *scannerReader) Close() error {
	return nil
}

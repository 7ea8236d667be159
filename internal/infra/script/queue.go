package script

import (
	"os"
	"strings"

	"github.com/otisTek/miloPlot/internal/domain"
)

// Queue holds the remaining command lines of a script, consumed front to
// back. It owns its copy of the lines.
type Queue struct {
	lines []string
}

func NewQueue(lines []string) *Queue {
	q := &Queue{lines: make([]string, len(lines))}
	copy(q.lines, lines)
	return q
}

// Load reads a command script, one directive per line.
func Load(path string) (*Queue, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "script.load",
			Kind: domain.KindFileAccess,
			Path: path,
			Err:  err,
		}
	}
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return NewQueue(nil), nil
	}
	return NewQueue(strings.Split(text, "\n")), nil
}

func (q *Queue) Len() int {
	return len(q.lines)
}

func (q *Queue) Empty() bool {
	return len(q.lines) == 0
}

// Blank reports whether every remaining line is whitespace.
func (q *Queue) Blank() bool {
	for _, l := range q.lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

// Peek returns the head line without consuming it.
func (q *Queue) Peek() (string, bool) {
	if len(q.lines) == 0 {
		return "", false
	}
	return q.lines[0], true
}

// Pop removes and returns the head line.
func (q *Queue) Pop() (string, bool) {
	if len(q.lines) == 0 {
		return "", false
	}
	head := q.lines[0]
	q.lines[0] = ""
	q.lines = q.lines[1:]
	return head, true
}

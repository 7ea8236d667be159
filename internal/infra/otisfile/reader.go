package otisfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/otisTek/miloPlot/internal/domain"
	"github.com/otisTek/miloPlot/internal/ports"
)

const maxLineBytes = 4 << 20

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

var _ ports.TrajectoryReader = (*Reader)(nil)

func (r *Reader) Read(path string) (domain.LoadedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.LoadedFile{}, &domain.OpError{
			Op:   "otisfile.read",
			Kind: domain.KindFileAccess,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	names, values, err := Parse(f)
	if err != nil {
		kind := domain.KindDataParse
		if !errors.Is(err, domain.ErrDataParse) && !errors.Is(err, bufio.ErrTooLong) {
			kind = domain.KindFileAccess
		}
		return domain.LoadedFile{}, &domain.OpError{
			Op:   "otisfile.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	return domain.LoadedFile{
		Path:   path,
		Names:  names,
		Values: values,
	}, nil
}

// Parse reads a plot file body.
//
// Line 1 holds the variable names, line 2 is skipped. Every following line
// is one record; the first line with fewer tokens than there are names ends
// the data (an explicit trajectory section or a trailing blank line).
func Parse(rd io.Reader) (names []string, values []float64, err error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("missing header line: %w", domain.ErrDataParse)
	}
	names = strings.Fields(sc.Text())
	n := len(names)
	if n == 0 {
		return nil, nil, fmt.Errorf("empty header line: %w", domain.ErrDataParse)
	}

	// separator row
	if !sc.Scan() {
		return names, []float64{}, sc.Err()
	}

	values = []float64{}
	lineNo := 2
	for sc.Scan() {
		lineNo++
		tokens := strings.Fields(sc.Text())
		if len(tokens) < n {
			break
		}
		if len(tokens) > n {
			return nil, nil, fmt.Errorf("line %d: %d values for %d variables: %w", lineNo, len(tokens), n, domain.ErrDataParse)
		}
		for _, tok := range tokens {
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return nil, nil, fmt.Errorf("line %d: %v: %w", lineNo, perr, domain.ErrDataParse)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	return names, values, nil
}

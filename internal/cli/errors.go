package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/otisTek/miloPlot/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// report prints err the way the user should see it. Malformed commands echo
// the offending command line.
func report(w io.Writer, err error) {
	var ce *domain.CommandError
	if errors.As(err, &ce) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  miloplot terminating")
		fmt.Fprintf(w, "##### %s in the command file\n", ce.Msg)
		if ce.Line != "" {
			fmt.Fprintln(w, "##### error is in the following line from the command file:")
			fmt.Fprintln(w, ce.Line)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No plot files generated")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintln(w, "miloplot: "+userMessage(err))
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		base := filepath.Base(oe.Path)
		switch oe.Kind {

		case domain.KindFileAccess:
			if strings.HasPrefix(oe.Op, "script.") {
				return "Problems with the command file " + oe.Path
			}
			if strings.HasPrefix(oe.Op, "config.") {
				return "Cannot read config " + oe.Path
			}
			if oe.Path != "" {
				return "Cannot access " + oe.Path
			}
			return "Cannot read input"

		case domain.KindDataParse:
			if line := extractLine(err.Error()); line != "" {
				return "Cannot parse data file " + base + " line " + line
			}
			return "Cannot parse data file " + base

		case domain.KindInvalidConfig:
			if oe.Op == "session.build_master" {
				return "No data files loaded"
			}
			name := "config"
			if strings.TrimSpace(oe.Path) != "" {
				name = base
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + name + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + name
			}
			if oe.Err != nil {
				return "Invalid config " + name + ": " + strings.TrimPrefix(oe.Err.Error(), "field ")
			}
			return "Invalid config " + name

		case domain.KindMalformedCommand:
			return "Malformed command"

		case domain.KindRender:
			if oe.Path != "" {
				return "Cannot write plots to " + oe.Path
			}
			return "Cannot render figure"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		return "Invalid YAML"
	}
	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

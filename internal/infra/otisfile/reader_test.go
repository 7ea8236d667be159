package otisfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/otisTek/miloPlot/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestRead(t *testing.T) {
	tmp := t.TempDir()
	p := writeFile(t, tmp, "a.dat", "  TIME   ALT      VEL\n\n0 0 0\n1   100\t50\n2 250 75\n")

	f, err := NewReader().Read(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(f.Names, []string{"TIME", "ALT", "VEL"}) {
		t.Fatalf("unexpected names %v", f.Names)
	}
	if f.NumRecords() != 3 {
		t.Fatalf("expected 3 records, got %d", f.NumRecords())
	}
	if len(f.Values)%len(f.Names) != 0 {
		t.Fatalf("values not rectangular")
	}
	if f.Path != p {
		t.Fatalf("expected path to be kept")
	}
}

func TestParseStopsAtShortRecord(t *testing.T) {
	body := "TIME ALT VEL\n----\n0 0 0\n1 100 50\n2\n3 300 90\n"
	names, values, err := Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 names")
	}
	want := []float64{0, 0, 0, 1, 100, 50}
	if !reflect.DeepEqual(values, want) {
		t.Fatalf("values = %v, want %v", values, want)
	}
}

func TestParseTrailingBlankLine(t *testing.T) {
	body := "TIME ALT\n\n0 1\n2 3\n   \n"
	_, values, err := Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("blank trailing line must not fail: %v", err)
	}
	if len(values) != 4 {
		t.Fatalf("expected 4 values, got %d", len(values))
	}
}

func TestParseHeaderOnly(t *testing.T) {
	names, values, err := Parse(strings.NewReader("TIME ALT\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || len(values) != 0 {
		t.Fatalf("unexpected result %v %v", names, values)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty file", "", "missing header"},
		{"blank header", "   \n\n1 2\n", "empty header"},
		{"bad number", "TIME ALT\n\n0 x\n", "line 3"},
		{"too many values", "TIME ALT\n\n0 1 2\n", "3 values for 2 variables"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(c.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected %q in %v", c.want, err)
			}
		})
	}
}

func TestReadErrorKinds(t *testing.T) {
	tmp := t.TempDir()

	_, err := NewReader().Read(filepath.Join(tmp, "missing.dat"))
	if !domain.IsKind(err, domain.KindFileAccess) {
		t.Fatalf("expected file access error, got %v", err)
	}

	p := writeFile(t, tmp, "bad.dat", "TIME ALT\n\n0 nope\n")
	_, err = NewReader().Read(p)
	if !domain.IsKind(err, domain.KindDataParse) {
		t.Fatalf("expected data parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), p) {
		t.Fatalf("expected path in error, got %v", err)
	}
	long := writeFile(t, tmp, "long.dat", "TIME ALT\n\n0 "+strings.Repeat("1", maxLineBytes+1)+"\n")
	_, err = NewReader().Read(long)
	if !domain.IsKind(err, domain.KindDataParse) {
		t.Fatalf("an oversized record is a content problem, got %v", err)
	}
}

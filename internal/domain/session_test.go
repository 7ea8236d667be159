package domain

import (
	"reflect"
	"testing"
)

func TestSessionBuildMaster(t *testing.T) {
	s := NewSession("")
	if s.OutputPath != DefaultOutputPath {
		t.Fatalf("expected default output, got %q", s.OutputPath)
	}
	if s.FigureCounter != 1 {
		t.Fatalf("figure counter must start at 1")
	}

	s.AddFile(LoadedFile{Path: "a.dat", Names: []string{"TIME", "ALT", "VEL"}})
	s.AddFile(LoadedFile{Path: "b.dat", Names: []string{"TIME", "MASS", "ALT"}, Legend: "B"})

	if err := s.BuildMaster(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := MasterList{"TIME", "ALT", "VEL", "MASS"}
	if !reflect.DeepEqual(s.Master, want) {
		t.Fatalf("master = %v, want %v", s.Master, want)
	}
	if !s.HasLegends() {
		t.Fatalf("expected legends")
	}
}

func TestSessionBuildMasterEmpty(t *testing.T) {
	s := NewSession("out.pdf")
	err := s.BuildMaster()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}

func TestLoadedFileColumns(t *testing.T) {
	f := LoadedFile{
		Names:  []string{"TIME", "ALT", "VEL"},
		Values: []float64{0, 0, 0, 1, 100, 50},
	}
	if f.NumRecords() != 2 {
		t.Fatalf("expected 2 records, got %d", f.NumRecords())
	}
	if got := f.Column(1); !reflect.DeepEqual(got, []float64{0, 100}) {
		t.Fatalf("unexpected ALT column %v", got)
	}
	if got := f.Record(1); !reflect.DeepEqual(got, []float64{1, 100, 50}) {
		t.Fatalf("unexpected record %v", got)
	}
	if f.Column(3) != nil || f.Record(2) != nil {
		t.Fatalf("out of range access must return nil")
	}
}

func TestIsQuit(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"quit", true},
		{"Quit", true},
		{"QUIT!!", true},
		{"quitter", true},
		{"  quit", false},
		{"quit  ", true},
		{"qui", false},
		{"", false},
		{"q", false},
		{"a.dat", false},
	}
	for _, c := range cases {
		if got := IsQuit(c.in); got != c.want {
			t.Errorf("IsQuit(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestYTickCap(t *testing.T) {
	cases := map[int]int{1: 0, 2: 0, 3: 8, 4: 6, 5: 4, 24: 1, 30: 1}
	for n, want := range cases {
		if got := YTickCap(n); got != want {
			t.Errorf("YTickCap(%d) = %d, want %d", n, got, want)
		}
	}
}

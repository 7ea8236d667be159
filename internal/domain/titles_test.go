package domain

import "testing"

func TestTitle(t *testing.T) {
	cases := []struct {
		name     string
		subplots int
		want     string
	}{
		{"ALT", 1, "Altitude, h, feet"},
		{"ALT", 2, "Altitude, h, feet"},
		{"ALT", 3, "Altitude, ft"},
		{"ALT", 4, "Altitude, ft"},
		{"ALT", 5, "ALT"},
		{"UNKNOWNVAR", 1, "UNKNOWNVAR"},
		{"UNKNOWNVAR", 3, "UNKNOWNVAR"},
		{"TIME", 1, "Time, t, seconds"},
	}
	for _, c := range cases {
		if got := Title(c.name, c.subplots); got != c.want {
			t.Errorf("Title(%q, %d) = %q, want %q", c.name, c.subplots, got, c.want)
		}
	}
}

func TestTitleTableWithOverrides(t *testing.T) {
	table := DefaultTitles().With(TitleTable{
		"PDYN": {Short: "Dyn Pres", Verbose: "Dynamic Pressure, q, psf"},
		"ALT":  {Short: "h, ft"},
	})

	if got := table.Title("PDYN", 1); got != "Dynamic Pressure, q, psf" {
		t.Errorf("unexpected override label %q", got)
	}
	if got := table.Title("ALT", 3); got != "h, ft" {
		t.Errorf("unexpected short override %q", got)
	}
	// empty verbose tier falls back to the raw name
	if got := table.Title("ALT", 1); got != "ALT" {
		t.Errorf("expected raw name for empty label, got %q", got)
	}
	if got := Title("ALT", 1); got != "Altitude, h, feet" {
		t.Errorf("built-in table must stay untouched, got %q", got)
	}
}

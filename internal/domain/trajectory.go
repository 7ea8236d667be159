package domain

// LoadedFile is one parsed trajectory file.
//
// Values is row-major: record r, variable c lives at Values[r*len(Names)+c].
// Names may contain duplicates; lookups resolve to the first occurrence.
type LoadedFile struct {
	Path   string
	Names  []string
	Values []float64
	Legend string
}

// NumVars returns the number of columns in the file.
func (f LoadedFile) NumVars() int {
	return len(f.Names)
}

// NumRecords returns the number of complete records.
func (f LoadedFile) NumRecords() int {
	if len(f.Names) == 0 {
		return 0
	}
	return len(f.Values) / len(f.Names)
}

// Column returns a copy of column idx across every record.
func (f LoadedFile) Column(idx int) []float64 {
	n := len(f.Names)
	if idx < 0 || idx >= n {
		return nil
	}
	rows := f.NumRecords()
	out := make([]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = f.Values[r*n+idx]
	}
	return out
}

// Record returns a copy of record r.
func (f LoadedFile) Record(r int) []float64 {
	n := len(f.Names)
	if r < 0 || r >= f.NumRecords() {
		return nil
	}
	out := make([]float64, n)
	copy(out, f.Values[r*n:(r+1)*n])
	return out
}

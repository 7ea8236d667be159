package domain

// MasterList is the ordered, duplicate-free union of variable names across
// all files loaded into a session.
type MasterList []string

// Merge returns master extended with every name of incoming that it does not
// already hold. master's order is kept and new names keep their relative
// order. Neither argument is modified.
func Merge(master MasterList, incoming []string) MasterList {
	out := make(MasterList, len(master), len(master)+len(incoming))
	copy(out, master)

	seen := make(map[string]struct{}, cap(out))
	for _, name := range out {
		seen[name] = struct{}{}
	}
	for _, name := range incoming {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Resolve finds the column of name within a file's name list. ok is false
// when the file does not carry the variable; callers skip that file.
func Resolve(name string, names []string) (idx int, ok bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Verify reports whether any loaded file carries name.
func Verify(name string, master MasterList) bool {
	_, ok := Resolve(name, master)
	return ok
}

// Contains is Verify as a method.
func (m MasterList) Contains(name string) bool {
	return Verify(name, m)
}

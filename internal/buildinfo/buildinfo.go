package buildinfo

import "fmt"

var (
	Version = "0.92"
	Commit  = "none"
	Date    = "unknown"
)

const Copyright = "Copyright (C) 2017  Paris Aerospace Technologies"

func String() string {
	return fmt.Sprintf("miloplot %s (commit=%s, date=%s)", Version, Commit, Date)
}

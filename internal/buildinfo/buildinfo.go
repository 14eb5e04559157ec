// Package buildinfo carries the version stamped in with -ldflags "-X".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for unreleased builds.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Long returns every stamped field on one line.
func Long() string {
	return fmt.Sprintf("matrixkb %s (commit %s, built %s)", Version, Commit, Date)
}

// pkg/model/history.go
package model

// PackageHistory pairs a package with its revision history
type PackageHistory struct {
	Package Package
	// History is ordered; each entry is a backend defined revision record
	History []map[string]any
	// PkgStatusIdx is the History index where the package currently is, -1 for none
	PkgStatusIdx int
}

// EmptyHistory returns a history with no records for pkg
func EmptyHistory(pkg Package) PackageHistory {
	return PackageHistory{
		Package:      pkg,
		History:      []map[string]any{},
		PkgStatusIdx: -1,
	}
}

// Current returns the record the package is currently at.
// The index is not validated on construction, so out of range values yield false.
func (h PackageHistory) Current() (map[string]any, bool) {
	if h.PkgStatusIdx < 0 || h.PkgStatusIdx >= len(h.History) {
		return nil, false
	}
	return h.History[h.PkgStatusIdx], true
}

// pkg/model/update.go
package model

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// PackageUpdate represents one pending update
type PackageUpdate struct {
	ID      string // Unique package identifier
	Name    string // Package name
	Version string // The new version
	Type    string // The package type
}

// NewPackageUpdate creates a PackageUpdate
func NewPackageUpdate(id, version, pkgType, name string) PackageUpdate {
	return PackageUpdate{
		ID:      id,
		Name:    name,
		Version: version,
		Type:    pkgType,
	}
}

// Equal reports whether both updates hold the same field values
func (u PackageUpdate) Equal(other PackageUpdate) bool {
	return u == other
}

// Hash returns a digest over all fields. Equal updates have equal hashes.
func (u PackageUpdate) Hash() uint64 {
	d := xxhash.New()
	writeField(d, u.ID)
	writeField(d, u.Name)
	writeField(d, u.Version)
	writeField(d, u.Type)
	return d.Sum64()
}

// String lists the attributes sorted by name
func (u PackageUpdate) String() string {
	return fmt.Sprintf("PackageUpdate (id=%s, name=%s, type=%s, version=%s)", u.ID, u.Name, u.Type, u.Version)
}

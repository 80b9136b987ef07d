// Package assetlist implements the asset selection notation: a compact
// textual form for naming sets of Homebox assets, parsed into entries and
// expanded into the concrete identifiers they denote.
//
// A selection is a comma-separated list of items. Each item is either a
// single identifier ("012-007") or an inclusive range joining two
// identifiers with "--" ("012-000--012-010").
package assetlist

import (
	"errors"
	"fmt"
)

// MaxComponent is the largest value either identifier component can hold.
const MaxComponent = 999

// ErrComponentRange is returned when an identifier component is constructed
// outside [0, MaxComponent].
var ErrComponentRange = errors.New("asset identifier component out of range")

// ErrIDOverflow is returned when advancing past the last representable
// identifier, 999-999.
var ErrIDOverflow = errors.New("asset identifier overflow past 999-999")

// AssetID identifies a single Homebox asset. It holds a major and a minor
// component, each in [0, MaxComponent], rendered zero-padded as "MMM-mmm".
// The zero value is the first identifier, 000-000.
type AssetID struct {
	major uint16
	minor uint16
}

// NewAssetID creates an AssetID from its two components, rejecting values
// outside [0, MaxComponent]. Text produced by Parse never violates the
// bounds; this guards programmatic construction.
func NewAssetID(major, minor int) (AssetID, error) {
	if major < 0 || major > MaxComponent {
		return AssetID{}, fmt.Errorf("%w: major %d", ErrComponentRange, major)
	}
	if minor < 0 || minor > MaxComponent {
		return AssetID{}, fmt.Errorf("%w: minor %d", ErrComponentRange, minor)
	}
	return AssetID{major: uint16(major), minor: uint16(minor)}, nil
}

// Major returns the major component.
func (id AssetID) Major() int { return int(id.major) }

// Minor returns the minor component.
func (id AssetID) Minor() int { return int(id.minor) }

// Compare orders identifiers by major component, then minor. It returns a
// negative number when id sorts before other, zero when equal, and a
// positive number when id sorts after other.
func (id AssetID) Compare(other AssetID) int {
	if id.major != other.major {
		return int(id.major) - int(other.major)
	}
	return int(id.minor) - int(other.minor)
}

// Less reports whether id sorts strictly before other.
func (id AssetID) Less(other AssetID) bool {
	return id.Compare(other) < 0
}

// String renders the canonical text form, both components zero-padded to
// three digits. This is the form used in Homebox API paths.
func (id AssetID) String() string {
	return fmt.Sprintf("%03d-%03d", id.major, id.minor)
}

// Next returns the identifier that follows id: the minor component
// increments, carrying into the major component past 999. Advancing past
// 999-999 returns ErrIDOverflow.
func (id AssetID) Next() (AssetID, error) {
	if id.minor < MaxComponent {
		id.minor++
		return id, nil
	}
	if id.major == MaxComponent {
		return AssetID{}, ErrIDOverflow
	}
	return AssetID{major: id.major + 1}, nil
}

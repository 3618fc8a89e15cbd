package flp

import (
	"fmt"
	"sort"
)

// FLVersion identifies the FL Studio version a project was saved with. It
// gates string encoding (see Config) and the mixer's max-inserts/max-slots
// tables (spec.md §6).
type FLVersion struct {
	Major, Minor, Patch int
	Build               int // 0 if the project doesn't record one.
}

func (v FLVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater than
// other, comparing Major/Minor/Patch/Build in that order.
func (v FLVersion) Compare(other FLVersion) int {
	for _, pair := range [][2]int{
		{v.Major, other.Major}, {v.Minor, other.Minor},
		{v.Patch, other.Patch}, {v.Build, other.Build},
	} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// unicodeThreshold is the FL Studio version at and above which strings are
// encoded UTF-16LE rather than single-byte ANSI (spec.md §6).
var unicodeThreshold = FLVersion{Major: 11, Minor: 5, Patch: 0}

// versionLimit pairs a version ceiling with the bound that applies at or
// below it.
type versionLimit struct {
	ceiling FLVersion
	limit   int
}

// maxInsertsTable and maxSlotsTable mirror spec.md §6's normative tables,
// ordered ascending by ceiling. Versions beyond the last entry fall back to
// the constants noted in their lookup functions.
var maxInsertsTable = []versionLimit{
	{FLVersion{1, 6, 5, 0}, 5},
	{FLVersion{2, 0, 1, 0}, 8},
	{FLVersion{3, 0, 0, 0}, 18},
	{FLVersion{3, 3, 0, 0}, 20},
	{FLVersion{4, 0, 0, 0}, 64},
	{FLVersion{9, 0, 0, 0}, 105},
	{FLVersion{12, 9, 0, 0}, 127},
}

var maxSlotsTable = []versionLimit{
	{FLVersion{1, 6, 5, 0}, 4},
	{FLVersion{3, 0, 0, 0}, 8},
}

const (
	fallbackMaxInserts = 127
	fallbackMaxSlots   = 10
)

// maxInserts returns the smallest table entry whose ceiling is >= v's
// version, or the fallback beyond the last entry (spec.md §4.5/§9: this
// rule is inferred from the source, and likely undercounts between listed
// versions -- documented here rather than silently assumed correct).
func maxInserts(v FLVersion) int { return lookupLimit(maxInsertsTable, v, fallbackMaxInserts) }

// maxSlots is the companion lookup for per-insert effect slot counts.
func maxSlots(v FLVersion) int { return lookupLimit(maxSlotsTable, v, fallbackMaxSlots) }

func lookupLimit(table []versionLimit, v FLVersion, fallback int) int {
	i := sort.Search(len(table), func(i int) bool {
		return table[i].ceiling.Compare(v) >= 0
	})
	if i == len(table) {
		return fallback
	}
	return table[i].limit
}

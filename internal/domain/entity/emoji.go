package entity

import "math"

// Emoji is one row of the loaded emoji dataset.
// Entries are immutable once the dataset has been loaded.
type Emoji struct {
	Glyph   string  `json:"glyph"`
	Label   string  `json:"label"`
	Version float64 `json:"version"`
}

// Candidate is a ranked search result.
// Rank is the UTF-16 offset of the query within Label, or CandidateSentinelRank
// for the synthetic entry that keeps the current selection visible.
type Candidate struct {
	Rank  int    `json:"rank"`
	Glyph string `json:"glyph"`
	Label string `json:"label"`
}

// CandidateSentinelRank sorts the synthetic current-selection entry after
// every real match.
const CandidateSentinelRank = 9999

// IsSynthetic reports whether the candidate stands in for the current selection.
func (c Candidate) IsSynthetic() bool {
	return c.Rank == CandidateSentinelRank
}

// Selection is the currently chosen emoji.
type Selection struct {
	Glyph string `json:"glyph"`
	Label string `json:"label"`
}

// Default selection shown before the user types anything.
const (
	DefaultGlyph = "🥑"
	DefaultLabel = "avocado"
)

// DefaultSelection returns the hard-coded starting selection.
func DefaultSelection() Selection {
	return Selection{Glyph: DefaultGlyph, Label: DefaultLabel}
}

// IsZero reports whether no glyph is selected.
func (s Selection) IsZero() bool {
	return s.Glyph == ""
}

// VersionCeiling bounds which dataset entries are visible.
// The zero value is unbounded.
type VersionCeiling struct {
	Max     float64
	Bounded bool
}

// Unbounded returns a ceiling that admits every version.
func Unbounded() VersionCeiling {
	return VersionCeiling{}
}

// NewVersionCeiling returns a ceiling of max. Non-positive, NaN, and infinite
// values are treated as unbounded, matching how an unset or zero
// emojiVersion behaves.
func NewVersionCeiling(maxVersion float64) VersionCeiling {
	if !(maxVersion > 0) || math.IsInf(maxVersion, 1) {
		return Unbounded()
	}
	return VersionCeiling{Max: maxVersion, Bounded: true}
}

// Admits reports whether an entry of the given version passes the ceiling.
func (c VersionCeiling) Admits(version float64) bool {
	return !c.Bounded || version <= c.Max
}

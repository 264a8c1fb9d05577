// Package search ranks emoji dataset entries against a free-text query.
package search

import (
	"slices"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"

	"github.com/bnema/emicon/internal/domain/entity"
)

// Rank returns the candidates for query, ordered ascending by rank.
//
// An entry matches when its label contains query as a case-sensitive
// substring; its rank is the offset of the first occurrence in UTF-16 code
// units, so non-ASCII labels order the way a browser's indexOf does. The
// query is NFC-normalized to match the loader's labels. The current
// selection is always present: it is added with CandidateSentinelRank, which sorts it last,
// unless a real match already carries the same glyph. Ties keep dataset order.
func Rank(query string, emojis []entity.Emoji, current entity.Selection) []entity.Candidate {
	query = norm.NFC.String(query)
	candidates := make([]entity.Candidate, 0, len(emojis)+1)

	currentMatched := false
	for _, e := range emojis {
		idx := strings.Index(e.Label, query)
		if idx < 0 {
			continue
		}
		if e.Glyph == current.Glyph {
			currentMatched = true
		}
		candidates = append(candidates, entity.Candidate{Rank: utf16Len(e.Label[:idx]), Glyph: e.Glyph, Label: e.Label})
	}

	if !currentMatched && !current.IsZero() {
		synthetic := entity.Candidate{
			Rank:  entity.CandidateSentinelRank,
			Glyph: current.Glyph,
			Label: current.Label,
		}
		candidates = slices.Insert(candidates, 0, synthetic)
	}

	slices.SortStableFunc(candidates, func(a, b entity.Candidate) int {
		return a.Rank - b.Rank
	})

	return candidates
}

// utf16Len counts the UTF-16 code units needed to encode s.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Top returns the selection implied by a ranked list: its first element.
// An empty list keeps the current selection.
func Top(candidates []entity.Candidate, current entity.Selection) entity.Selection {
	if len(candidates) == 0 {
		return current
	}
	return entity.Selection{Glyph: candidates[0].Glyph, Label: candidates[0].Label}
}

// FilterByVersion keeps the entries admitted by ceiling, preserving order.
func FilterByVersion(emojis []entity.Emoji, ceiling entity.VersionCeiling) []entity.Emoji {
	filtered := make([]entity.Emoji, 0, len(emojis))
	for _, e := range emojis {
		if ceiling.Admits(e.Version) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Package moderation masks forbidden words in chat messages before they
// are persisted, so history replay and live fan-out always agree.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	machine *goahocorasick.Machine
	mask    rune
}

// New builds the Aho-Corasick automaton over the normalized word list.
// An empty list yields a nil Moderator, which disables moderation.
func New(words []string, mask rune) (*Moderator, error) {
	if len(words) == 0 {
		return nil, nil
	}
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		norm, _ := normalize(w)
		if len(norm) == 0 {
			continue
		}
		patterns = append(patterns, norm)
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{machine: machine, mask: mask}, nil
}

// Censor replaces every matched pattern with the mask character while
// preserving the spacing and punctuation of the original text. Matching
// runs over a normalized stream so "b a d" still matches "bad".
func (m *Moderator) Censor(text string) string {
	if m == nil {
		return text
	}

	norm, origIdx := normalize(text)
	if len(norm) == 0 {
		return text
	}

	hits := m.machine.MultiPatternSearch(norm, false)
	if len(hits) == 0 {
		return text
	}

	out := []rune(text)
	for _, hit := range hits {
		start := hit.Pos
		end := start + len(hit.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			out[i] = m.mask
		}
	}
	return string(out)
}

// normalize lowercases the input and strips punctuation, spacing and
// symbols, keeping a map from each normalized rune back to its original
// position.
func normalize(text string) ([]rune, []int) {
	runes := []rune(text)
	norm := make([]rune, 0, len(runes))
	origIdx := make([]int, 0, len(runes))
	for i, r := range runes {
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return norm, origIdx
}

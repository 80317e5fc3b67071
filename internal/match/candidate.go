package match

import (
	"sort"

	"builder-generator/internal/common"
)

const (
	// DefaultMinScore is the minimum score for a name to be suggested.
	DefaultMinScore = 0.5
	// DefaultSuggestions is the number of suggestions attached to a
	// diagnostic.
	DefaultSuggestions = 3
)

// Candidate is a known name ranked against a name that did not resolve.
type Candidate struct {
	Name string
	// Score is the better of the normalized and the stemmed similarity.
	Score float64
}

// CandidateList is sorted by score, best first, ties broken by name.
type CandidateList []Candidate

// RankCandidates scores every known name against target.
func RankCandidates(target string, names []string) CandidateList {
	norm, stem := Normalize(target), Stem(target)

	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		score := max(Similarity(Normalize(name), norm), Similarity(Stem(name), stem))
		candidates = append(candidates, Candidate{Name: name, Score: score})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n known names similar enough to target to be
// offered as hints.
func Suggest(target string, names []string, n int) []string {
	if common.IsEmpty(names) {
		return nil
	}

	var out []string
	for _, c := range RankCandidates(target, names).AboveThreshold(DefaultMinScore).Top(n) {
		out = append(out, c.Name)
	}

	return out
}

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	return c[:min(n, len(c))]
}

// AboveThreshold keeps the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

package keywords

import (
	"sort"

	"github.com/jonathan/ats-scorer/internal/types"
)

// highFrequency counts unigrams and bigrams across token runs and returns the
// most frequent, tiered by count.
func highFrequency(runs [][]string, limit int) []types.HighFrequencyKeyword {
	counts := make(map[string]int)
	for _, run := range runs {
		for i, tok := range run {
			counts[tok]++
			if i+1 < len(run) {
				counts[tok+" "+run[i+1]]++
			}
		}
	}
	return rankByFrequency(counts, limit)
}

// rankByFrequency orders terms by count descending then alphabetically, keeping the first limit.
func rankByFrequency(counts map[string]int, limit int) []types.HighFrequencyKeyword {
	out := make([]types.HighFrequencyKeyword, 0, len(counts))
	for kw, n := range counts {
		out = append(out, types.HighFrequencyKeyword{
			Keyword:    kw,
			Frequency:  n,
			Importance: types.ImportanceForFrequency(n),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Keyword < out[j].Keyword
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

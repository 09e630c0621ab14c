package revbench

import "sort"

// Ranked is a Result placed relative to the fastest variant of a run.
type Ranked struct {
	Result
	Position int     // 1 = fastest
	Relative float64 // Median / fastest median (1.0 = as fast as the best)
}

// Rank orders results fastest first by median, breaking ties on mean and
// then name. The input slice is not reordered.
//
// Relative compares medians because a single slow repetition (a GC pause,
// a scheduler hiccup) moves the mean but not the median.
func Rank(results []Result) []Ranked {
	if len(results) == 0 {
		return nil
	}

	ranked := make([]Ranked, len(results))
	for i, r := range results {
		ranked[i] = Ranked{Result: r}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Timing, ranked[j].Timing
		if a.Median != b.Median {
			return a.Median < b.Median
		}
		if a.Mean != b.Mean {
			return a.Mean < b.Mean
		}
		return ranked[i].Name < ranked[j].Name
	})

	fastest := ranked[0].Timing.Median
	for i := range ranked {
		ranked[i].Position = i + 1
		if fastest == 0 {
			ranked[i].Relative = 1.0
			continue
		}
		ranked[i].Relative = float64(ranked[i].Timing.Median) / float64(fastest)
	}

	return ranked
}

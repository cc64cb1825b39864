// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package judgment

import (
	"sort"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

// Profile holds the grade distribution of one candidate.
type Profile struct {
	Label    string  `json:"label"`
	Grades   []int   `json:"grades"` // best first
	Majority int     `json:"majority"`
	P10      float64 `json:"p10"`
	P90      float64 `json:"p90"`
	Mean     float64 `json:"mean"`
}

// Profiles reads every cell as a grade, lower being better. A voter without
// an opinion on a candidate gives it the worst grade seen on the ballot.
// Profiles returns nil when the ballot holds no grade at all.
func Profiles(b *ballot.Ballot) []Profile {
	worst := ballot.NoOpinion
	for v := 0; v < b.Voters(); v++ {
		for c := 0; c < b.Candidates(); c++ {
			worst = max(worst, b.Rank(v, c))
		}
	}
	if worst == ballot.NoOpinion {
		return nil
	}

	profiles := make([]Profile, b.Candidates())
	for c := range profiles {
		grades := make([]int, b.Voters())
		for v := range grades {
			if g := b.Rank(v, c); g != ballot.NoOpinion {
				grades[v] = g
			} else {
				grades[v] = worst
			}
		}
		sort.Ints(grades)

		sorted := make([]float64, len(grades))
		for i, g := range grades {
			sorted[i] = float64(g)
		}
		profiles[c] = Profile{
			Label:    b.Label(c),
			Grades:   grades,
			Majority: majorityGrade(grades),
			P10:      percentile(sorted, 0.1),
			P90:      percentile(sorted, 0.9),
			Mean:     mean(sorted),
		}
	}
	return profiles
}

// Winners returns the candidates with the best majority grade, scored by
// that grade. Ties are broken by repeatedly removing one majority grade from
// each tied candidate; candidates still level once every grade is gone all
// win.
func Winners(b *ballot.Ballot) []models.Winner {
	winners := []models.Winner{}
	profiles := Profiles(b)
	if len(profiles) == 0 {
		return winners
	}

	lists := make(map[int][]int, len(profiles))
	contenders := make([]int, len(profiles))
	for c, p := range profiles {
		lists[c] = append([]int(nil), p.Grades...)
		contenders[c] = c
	}

	contenders = best(contenders, lists)
	for len(contenders) > 1 && len(lists[contenders[0]]) > 1 {
		for _, c := range contenders {
			g := lists[c]
			mid := len(g) / 2
			lists[c] = append(g[:mid], g[mid+1:]...)
		}
		contenders = best(contenders, lists)
	}

	for _, c := range contenders {
		winners = append(winners, models.Winner{
			Name:  profiles[c].Label,
			Score: float64(profiles[c].Majority),
		})
	}
	return winners
}

// best keeps the contenders sharing the best majority grade.
func best(contenders []int, lists map[int][]int) []int {
	top := majorityGrade(lists[contenders[0]])
	for _, c := range contenders[1:] {
		top = min(top, majorityGrade(lists[c]))
	}

	var kept []int
	for _, c := range contenders {
		if majorityGrade(lists[c]) == top {
			kept = append(kept, c)
		}
	}
	return kept
}

// majorityGrade is the lower middlemost grade of a best-first list.
func majorityGrade(grades []int) int {
	if len(grades) == 0 {
		return ballot.NoOpinion
	}
	return grades[len(grades)/2]
}

// percentile calculates the p-th percentile of sorted data
// p should be in range [0, 1]
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0.0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	// Linear interpolation between closest ranks
	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

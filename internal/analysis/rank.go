package analysis

import (
	"sort"
)

type RankedCell struct {
	Rank int
	Cell
}

// RankBySustainableRate sorts cells descending by sustainable withdrawal rate.
// Ties keep their sweep order.
func RankBySustainableRate(cells []Cell) []RankedCell {
	out := make([]RankedCell, 0, len(cells))
	for _, c := range cells {
		out = append(out, RankedCell{Cell: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SustainableRate > out[j].SustainableRate
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

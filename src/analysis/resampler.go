package analysis

import "market-charts/src/models"

const DefaultSampleBudget = 50

// -----------------------------------------------------------------------------

// SampleIndices picks every step-th index and always appends the last one.
// step is ceil(length/budget) so the result never exceeds budget+1 entries;
// a series already within budget+1 is returned whole.
func SampleIndices(length, budget int) []int {
	if length <= 0 {
		return []int{}
	}
	if budget <= 0 {
		budget = DefaultSampleBudget
	}

	step := 1
	if length > budget+1 {
		step = (length + budget - 1) / budget
	}

	indices := make([]int, 0, length/step+2)
	for i := 0; i < length; i += step {
		indices = append(indices, i)
	}
	if indices[len(indices)-1] != length-1 {
		indices = append(indices, length-1)
	}
	return indices
}

// -----------------------------------------------------------------------------

// Sample reduces series to at most budget+1 points, keeping the first and the last.
func Sample(series models.MCleanSeries, budget int) models.MCleanSeries {
	indices := SampleIndices(len(series), budget)
	out := make(models.MCleanSeries, len(indices))
	for i, idx := range indices {
		out[i] = series[idx]
	}
	return out
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleIndicesBounds(t *testing.T) {
	for _, budget := range []int{1, 2, 7, 50, 100} {
		for length := 1; length <= 400; length++ {
			idx := SampleIndices(length, budget)
			assert.LessOrEqual(t, len(idx), budget+1, "length=%d budget=%d", length, budget)
			assert.Equal(t, 0, idx[0])
			assert.Equal(t, length-1, idx[len(idx)-1])
			for i := 1; i < len(idx); i++ {
				assert.Less(t, idx[i-1], idx[i])
			}
		}
	}
}

func TestSampleIndicesEdgeCases(t *testing.T) {
	assert.Empty(t, SampleIndices(0, 50))
	assert.Equal(t, []int{0}, SampleIndices(1, 50))
	assert.Len(t, SampleIndices(40, 50), 40)
	assert.Len(t, SampleIndices(500, 0), 51)
}

func TestSampleKeepsEndpoints(t *testing.T) {
	series := CleanSeries(rawSeries(249))
	sampled := Sample(series, 50)

	assert.LessOrEqual(t, len(sampled), 51)
	assert.Equal(t, series[0], sampled[0])
	assert.Equal(t, series[len(series)-1], sampled[len(sampled)-1])
}

func TestSampleIsIdempotent(t *testing.T) {
	series := CleanSeries(rawSeries(1000))
	once := Sample(series, 50)

	assert.Equal(t, once, Sample(once, 50))
	assert.Equal(t, once, Sample(once, 80))
	assert.Equal(t, once, Sample(once, len(once)))
}

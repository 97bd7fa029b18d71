package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendedLimitPolicy(t *testing.T) {
	cases := []struct {
		total, want int
	}{
		{0, 512},
		{256, 256},
		{600, 512},
		{4096, 3072},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, recommendedLimitMB(tc.total), "total %d", tc.total)
	}
}

func TestRecommendedMemoryLimitIsPositive(t *testing.T) {
	assert.Greater(t, GetRecommendedMemoryLimit(), 0)
}

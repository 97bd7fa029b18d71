package helpers

import (
	"os"
	"runtime/debug"
)

const (
	memoryFloorMB    = 512
	memoryLimitRatio = 0.75
)

// -----------------------------------------------------------------------------

// GetRecommendedMemoryLimit returns the soft limit for this host in MB.
func GetRecommendedMemoryLimit() int {
	return recommendedLimitMB(GetTotalSystemMemoryMB())
}

// recommendedLimitMB takes three quarters of totalMB, never below the floor
// unless the host itself has less. An unknown total (0) yields the floor.
func recommendedLimitMB(totalMB int) int {
	switch {
	case totalMB <= 0:
		return memoryFloorMB
	case totalMB < memoryFloorMB:
		return totalMB
	}
	return max(int(float64(totalMB)*memoryLimitRatio), memoryFloorMB)
}

// -----------------------------------------------------------------------------

// ApplyMemoryLimit sets the runtime soft memory limit and returns it in MB.
// A GOMEMLIMIT set by the operator wins and is reported as-is.
func ApplyMemoryLimit() int {
	if os.Getenv("GOMEMLIMIT") != "" {
		return int(debug.SetMemoryLimit(-1) / 1024 / 1024)
	}
	limitMB := GetRecommendedMemoryLimit()
	debug.SetMemoryLimit(int64(limitMB) * 1024 * 1024)
	return limitMB
}

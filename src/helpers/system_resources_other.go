//go:build !linux && !darwin && !windows

package helpers

// GetTotalSystemMemoryMB is unknown on this platform; callers fall back to 512MB.
func GetTotalSystemMemoryMB() int {
	return 0
}

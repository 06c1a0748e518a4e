//go:build tessdebug

package tess

// Builds tagged tessdebug start with builder validation enabled.
func init() {
	pathChecks.Store(true)
}

package targeting

import "sync/atomic"

// debugLoggingEnabled guards per-tick debug logs so the hot path does not
// pay for building log attributes.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables debug logging for weapon systems.
// Call it once at startup, from the configured log level.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if debug logging is enabled.
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}

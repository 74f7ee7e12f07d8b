package feed

import "sync/atomic"

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled turns per-reading logging on or off for every feed.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

func isTraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}

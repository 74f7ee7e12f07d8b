package tunerapp

import "github.com/edward-ap/minituner/internal/feed"

// SetTraceLogEnabled toggles per-reading logging of the frequency feed.
// Call this before creating the App so the first feed sees the flag.
func SetTraceLogEnabled(b bool) { feed.SetTraceLoggingEnabled(b) }

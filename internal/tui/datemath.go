package tui

import "time"

// wholeDaysSince reports the number of complete 24h periods between ref
// and now. Negative when now precedes ref (a misconfigured clock), which
// callers display as-is rather than clamping.
func wholeDaysSince(ref, now time.Time) int {
	return int(now.Sub(ref) / (24 * time.Hour))
}

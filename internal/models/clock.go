package models

import "time"

// NowTimestamp returns seconds since epoch. The spec does not require
// a monotonic clock; wall-clock seconds is sufficient for ordering
// persisted log entries.
func NowTimestamp() uint64 {
	return uint64(time.Now().Unix())
}

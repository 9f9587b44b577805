package ntp

import "time"

// DurationToTimestamp converts a duration measured from the NTP epoch.
func DurationToTimestamp(d time.Duration) Timestamp {
	return FromDuration(d)
}

// DurationToTimestampFromUnix converts a duration measured from the Unix epoch.
func DurationToTimestampFromUnix(d time.Duration) Timestamp {
	return FromUnixDuration(d)
}

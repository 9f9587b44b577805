// Package ntpclock samples the host clock as NTP timestamps.
package ntpclock

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
)

// ErrBeforeUnixEpoch is wrapped into the panic value when the clock reads earlier
// than 1970-01-01T00:00:00Z.
var ErrBeforeUnixEpoch = errors.New("system time is earlier than UNIX epoch")

var realClock = clockwork.NewRealClock()

// Now returns the current system time as an NTP timestamp.
//
// It panics if the system clock is set before the Unix epoch.
func Now() ntp.Timestamp {
	return NowFrom(realClock)
}

// Default returns Now().
func Default() ntp.Timestamp {
	return Now()
}

// NowFrom samples clk. The sub-second part is truncated to microseconds.
//
// It panics if clk reads earlier than the Unix epoch.
func NowFrom(clk clockwork.Clock) ntp.Timestamp {
	now := clk.Now()
	secs := now.Unix()
	if secs < 0 {
		panic(fmt.Errorf("ntpclock: %v: %w", now, ErrBeforeUnixEpoch))
	}
	return ntp.FromUnixParts(uint64(secs), uint32(now.Nanosecond()/int(time.Microsecond)))
}

// Epoch returns the NTP epoch, 1900-01-01T00:00:00Z.
func Epoch() time.Time {
	return UnixEpoch().Add(-ntp.EpochDelta)
}

// UnixEpoch returns 1970-01-01T00:00:00Z.
func UnixEpoch() time.Time {
	return time.Unix(0, 0).UTC()
}

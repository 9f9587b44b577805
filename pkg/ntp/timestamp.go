// Package ntp implements the 64-bit NTP timestamp: 32 bits of seconds since
// 1900-01-01 and 32 bits of binary fraction of a second.
//
// The package is pure arithmetic. Sampling the host clock lives in ntpclock and
// the structured-data adapters live in ntpcodec.
package ntp

import (
	"fmt"
	"math/bits"
	"time"
)

const (
	// EpochDeltaSeconds is the number of seconds between the NTP epoch
	// (1900-01-01) and the Unix epoch (1970-01-01).
	EpochDeltaSeconds uint64 = 2_208_988_800

	// EpochDelta is EpochDeltaSeconds as a duration.
	EpochDelta time.Duration = time.Duration(EpochDeltaSeconds) * time.Second
)

const (
	secondsMask  uint64 = 0xFFFF_FFFF_0000_0000
	fractionMask uint64 = 0x0000_0000_FFFF_FFFF

	secAsMs uint64 = 1_000
	secAsUs uint64 = 1_000_000
	secAsNs uint64 = 1_000_000_000
	secAsPs uint64 = 1_000_000_000_000
)

// Timestamp is an NTP timestamp. The zero value is the NTP epoch.
type Timestamp struct {
	seconds  uint32
	fraction uint32
}

// New returns a timestamp from its seconds and fraction fields.
func New(seconds, fraction uint32) Timestamp {
	return Timestamp{seconds: seconds, fraction: fraction}
}

// FromRaw decodes a packed 64-bit timestamp: seconds in the high 32 bits,
// fraction in the low 32 bits.
func FromRaw(ts uint64) Timestamp {
	return Timestamp{
		seconds:  uint32((ts & secondsMask) >> 32),
		fraction: uint32(ts & fractionMask),
	}
}

// FromUnixSeconds converts seconds since the Unix epoch. The shifted value is
// truncated to 32 bits, so anything past 2036-02-07 wraps into the next era.
func FromUnixSeconds(ts uint64) Timestamp {
	return Timestamp{seconds: fromUnixSec(ts)}
}

// FromUnixDuration converts a duration since the Unix epoch. The sub-second
// part is truncated to microseconds before it is rescaled.
func FromUnixDuration(d time.Duration) Timestamp {
	secs, micros := splitDuration(d)
	return Timestamp{
		seconds:  uint32(uint64(secs) + EpochDeltaSeconds),
		fraction: microsFraction(micros),
	}
}

// FromDuration converts a duration that is already relative to the NTP epoch.
// Seconds beyond 32 bits are truncated.
func FromDuration(d time.Duration) Timestamp {
	secs, micros := splitDuration(d)
	return Timestamp{
		seconds:  uint32(secs),
		fraction: microsFraction(micros),
	}
}

// FromUnixParts converts whole seconds and a microsecond remainder since the
// Unix epoch. micros must be below 1_000_000.
func FromUnixParts(secs uint64, micros uint32) Timestamp {
	return Timestamp{
		seconds:  fromUnixSec(secs),
		fraction: microsFraction(uint64(micros)),
	}
}

// FromTime converts t with full nanosecond precision. Times before 1900 or
// after the end of era 0 wrap.
func FromTime(t time.Time) Timestamp {
	nanos := uint64(t.Nanosecond())
	return Timestamp{
		seconds:  uint32(uint64(t.Unix()) + EpochDeltaSeconds),
		fraction: uint32((nanos << 32) / secAsNs),
	}
}

// Raw packs the timestamp into its 64-bit wire form.
func (t Timestamp) Raw() uint64 {
	return uint64(t.seconds)<<32 | uint64(t.fraction)
}

// Seconds returns the whole seconds since the NTP epoch.
func (t Timestamp) Seconds() uint32 {
	return t.seconds
}

// Fraction returns the binary fraction of a second, in units of 2^-32 s.
func (t Timestamp) Fraction() uint32 {
	return t.fraction
}

// UnixSeconds returns the seconds since the Unix epoch. Timestamps earlier
// than the Unix epoch saturate to 0.
//
// The fraction contributes fraction/0xFFFFFFFF, which is 1 only for an
// all-ones fraction.
func (t Timestamp) UnixSeconds() uint64 {
	secs := uint64(t.seconds)
	if secs < EpochDeltaSeconds {
		return 0
	}
	return secs - EpochDeltaSeconds + uint64(t.fraction)/uint64(^uint32(0))
}

// Duration returns the time elapsed since the NTP epoch. Sub-nanosecond bits
// of the fraction are dropped, so FromDuration(t.Duration()) is not always t.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t.seconds)*time.Second + time.Duration(t.FractionNanoseconds())
}

// Time returns the timestamp as a UTC time, interpreting it in era 0.
func (t Timestamp) Time() time.Time {
	secs := int64(t.seconds) - int64(EpochDeltaSeconds)
	return time.Unix(secs, int64(t.FractionNanoseconds())).UTC()
}

// Nanoseconds returns the total nanoseconds since the NTP epoch.
func (t Timestamp) Nanoseconds() uint64 {
	return uint64(t.seconds)*secAsNs + t.FractionNanoseconds()
}

func (t Timestamp) FractionMilliseconds() uint64 {
	return (uint64(t.fraction) * secAsMs) >> 32
}

func (t Timestamp) FractionMicroseconds() uint64 {
	return (uint64(t.fraction) * secAsUs) >> 32
}

func (t Timestamp) FractionNanoseconds() uint64 {
	return (uint64(t.fraction) * secAsNs) >> 32
}

// FractionPicoseconds needs a 128-bit product: fraction * 1e12 exceeds 64 bits.
func (t Timestamp) FractionPicoseconds() uint64 {
	hi, lo := bits.Mul64(uint64(t.fraction), secAsPs)
	return hi<<32 | lo>>32
}

// IsZero reports whether t is the NTP epoch itself.
func (t Timestamp) IsZero() bool {
	return t.seconds == 0 && t.fraction == 0
}

// String formats the timestamp as seconds.nanoseconds since the NTP epoch.
func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", t.seconds, t.FractionNanoseconds())
}

func fromUnixSec(ts uint64) uint32 {
	return uint32(ts + EpochDeltaSeconds)
}

// microsFraction rescales microseconds into a 2^-32 s fraction.
func microsFraction(us uint64) uint32 {
	return uint32((us << 32) / secAsUs)
}

// splitDuration floors d to whole seconds and returns the non-negative
// microsecond remainder.
func splitDuration(d time.Duration) (int64, uint64) {
	secs := int64(d / time.Second)
	rem := d % time.Second
	if rem < 0 {
		secs--
		rem += time.Second
	}
	return secs, uint64(rem / time.Microsecond)
}

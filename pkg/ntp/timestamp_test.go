package ntp_test

import (
	"math"
	"testing"
	"time"

	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNTP_Timestamp(t *testing.T) {
	t.Run("New keeps both fields", func(t *testing.T) {
		ts := ntp.New(1_000_000, 0x4000_0000)
		require.Equal(t, uint32(1_000_000), ts.Seconds())
		require.Equal(t, uint32(0x4000_0000), ts.Fraction())
	})

	t.Run("Raw packs seconds into the high word", func(t *testing.T) {
		ts := ntp.New(1_000_000, 0x4000_0000)
		require.Equal(t, uint64(4_294_968_369_741_824), ts.Raw())
	})

	t.Run("FromRaw splits the packed form", func(t *testing.T) {
		ts := ntp.FromRaw(4_294_968_369_741_824)
		require.Equal(t, uint32(1_000_000), ts.Seconds())
		require.Equal(t, uint32(0x4000_0000), ts.Fraction())
	})

	t.Run("FromRaw accepts every bit pattern", func(t *testing.T) {
		ts := ntp.FromRaw(math.MaxUint64)
		require.Equal(t, uint32(math.MaxUint32), ts.Seconds())
		require.Equal(t, uint32(math.MaxUint32), ts.Fraction())
		require.True(t, ntp.FromRaw(0).IsZero())
	})

	t.Run("String prints seconds and nanoseconds", func(t *testing.T) {
		require.Equal(t, "1.500000000", ntp.New(1, 0x8000_0000).String())
		require.Equal(t, "0.000000000", ntp.Timestamp{}.String())
	})
}

func TestNTP_EpochDelta(t *testing.T) {
	t1900 := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	t1970 := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, t1970.Sub(t1900), ntp.EpochDelta)
	require.Equal(t, uint64(2_208_988_800), ntp.EpochDeltaSeconds)
}

func TestNTP_UnixSeconds(t *testing.T) {
	t.Run("FromUnixSeconds adds the epoch delta", func(t *testing.T) {
		ts := ntp.FromUnixSeconds(1_640_995_200)
		require.Equal(t, uint32(3_849_984_000), ts.Seconds())
		require.Equal(t, uint32(0), ts.Fraction())
	})

	t.Run("FromUnixSeconds wraps at the end of era 0", func(t *testing.T) {
		require.Equal(t, uint32(math.MaxUint32), ntp.FromUnixSeconds(2_085_978_495).Seconds())
		require.Equal(t, uint32(0), ntp.FromUnixSeconds(2_085_978_496).Seconds())
		require.Equal(t, uint32(10), ntp.FromUnixSeconds(2_085_978_506).Seconds())
	})

	t.Run("UnixSeconds subtracts the epoch delta", func(t *testing.T) {
		require.Equal(t, uint64(1_640_995_200), ntp.New(3_849_984_000, 0).UnixSeconds())
		require.Equal(t, uint64(0), ntp.New(uint32(ntp.EpochDeltaSeconds), 0).UnixSeconds())
	})

	t.Run("UnixSeconds only counts an all-ones fraction", func(t *testing.T) {
		require.Equal(t, uint64(1_640_995_200), ntp.New(3_849_984_000, 0xFFFF_FFFE).UnixSeconds())
		require.Equal(t, uint64(1_640_995_201), ntp.New(3_849_984_000, 0xFFFF_FFFF).UnixSeconds())
	})

	t.Run("UnixSeconds saturates before the Unix epoch", func(t *testing.T) {
		require.Equal(t, uint64(0), ntp.New(0, 0).UnixSeconds())
		require.Equal(t, uint64(0), ntp.New(uint32(ntp.EpochDeltaSeconds)-1, 0xFFFF_FFFF).UnixSeconds())
	})
}

func TestNTP_Duration(t *testing.T) {
	t.Run("Duration splits into whole seconds and a quarter second", func(t *testing.T) {
		d := ntp.New(1_000_000, 0x4000_0000).Duration()
		require.Equal(t, time.Duration(1_000_000), d/time.Second)
		require.Equal(t, time.Duration(250_000), (d%time.Second)/time.Microsecond)
	})

	t.Run("Duration of the largest timestamp does not overflow", func(t *testing.T) {
		d := ntp.FromRaw(math.MaxUint64).Duration()
		require.Equal(t, time.Duration(math.MaxUint32)*time.Second+999_999_999, d)
	})

	t.Run("FromDuration rescales microseconds", func(t *testing.T) {
		ts := ntp.FromDuration(1_000_000*time.Second + 250*time.Microsecond)
		require.Equal(t, uint32(1_000_000), ts.Seconds())
		require.Equal(t, uint32(1_073_741), ts.Fraction())
	})

	t.Run("FromDuration drops sub-microsecond precision", func(t *testing.T) {
		require.Equal(t, ntp.FromDuration(time.Second), ntp.FromDuration(time.Second+999*time.Nanosecond))
	})

	t.Run("FromDuration truncates seconds to 32 bits", func(t *testing.T) {
		ts := ntp.FromDuration(time.Duration(1<<32+5) * time.Second)
		require.Equal(t, uint32(5), ts.Seconds())
	})

	t.Run("FromUnixDuration shifts by the epoch delta", func(t *testing.T) {
		ts := ntp.FromUnixDuration(1_640_995_200*time.Second + 250*time.Millisecond)
		require.Equal(t, uint32(3_849_984_000), ts.Seconds())
		require.Equal(t, uint32(0x4000_0000), ts.Fraction())
	})

	t.Run("FromUnixDuration maps pre-1970 durations into era 0", func(t *testing.T) {
		require.Equal(t, ntp.New(0, 0), ntp.FromUnixDuration(-ntp.EpochDelta))

		ts := ntp.FromUnixDuration(-time.Microsecond)
		require.Equal(t, uint32(ntp.EpochDeltaSeconds-1), ts.Seconds())
		require.Equal(t, uint32(4_294_963_001), ts.Fraction())
	})

	t.Run("FromUnixParts matches FromUnixDuration", func(t *testing.T) {
		want := ntp.FromUnixDuration(1_640_995_200*time.Second + 123_456*time.Microsecond)
		require.Equal(t, want, ntp.FromUnixParts(1_640_995_200, 123_456))
	})

	t.Run("Free functions mirror the constructors", func(t *testing.T) {
		d := 42*time.Second + 7*time.Millisecond
		require.Equal(t, ntp.FromDuration(d), ntp.DurationToTimestamp(d))
		require.Equal(t, ntp.FromUnixDuration(d), ntp.DurationToTimestampFromUnix(d))
	})

	t.Run("Microsecond round trip loses at most one microsecond", func(t *testing.T) {
		ts := ntp.FromDuration(123_456 * time.Microsecond)
		require.Equal(t, uint64(123_455), ts.FractionMicroseconds())
	})
}

func TestNTP_Nanoseconds(t *testing.T) {
	require.Equal(t, uint64(1_000_000_000), ntp.New(1, 0).Nanoseconds())
	require.Equal(t, uint64(2_250_000_000), ntp.New(2, 0x4000_0000).Nanoseconds())
	require.Equal(t, uint64(math.MaxUint32)*1_000_000_000+999_999_999, ntp.FromRaw(math.MaxUint64).Nanoseconds())
}

func TestNTP_FractionUnits(t *testing.T) {
	tests := []struct {
		name     string
		fraction uint32
		ms       uint64
		us       uint64
		ns       uint64
		ps       uint64
	}{
		{name: "zero", fraction: 0},
		{name: "quarter second", fraction: 0x4000_0000, ms: 250, us: 250_000, ns: 250_000_000, ps: 250_000_000_000},
		{name: "eighth second", fraction: 0x2000_0000, ms: 125, us: 125_000, ns: 125_000_000, ps: 125_000_000_000},
		{name: "half second", fraction: 0x8000_0000, ms: 500, us: 500_000, ns: 500_000_000, ps: 500_000_000_000},
		{name: "all ones truncates down", fraction: 0xFFFF_FFFF, ms: 999, us: 999_999, ns: 999_999_999, ps: 999_999_999_767},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := ntp.New(0, tc.fraction)
			assert.Equal(t, tc.ms, ts.FractionMilliseconds())
			assert.Equal(t, tc.us, ts.FractionMicroseconds())
			assert.Equal(t, tc.ns, ts.FractionNanoseconds())
			assert.Equal(t, tc.ps, ts.FractionPicoseconds())
		})
	}
}

func TestNTP_Time(t *testing.T) {
	t.Run("FromTime at the Unix epoch", func(t *testing.T) {
		ts := ntp.FromTime(time.Unix(0, 0))
		require.Equal(t, ntp.New(uint32(ntp.EpochDeltaSeconds), 0), ts)
	})

	t.Run("FromTime at the NTP epoch", func(t *testing.T) {
		ts := ntp.FromTime(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))
		require.True(t, ts.IsZero())
	})

	t.Run("FromTime keeps nanosecond precision", func(t *testing.T) {
		ts := ntp.FromTime(time.Date(2023, 1, 1, 12, 30, 45, 500_000_000, time.UTC))
		require.Equal(t, uint32(0x8000_0000), ts.Fraction())

		ts = ntp.FromTime(time.Date(2023, 1, 1, 0, 0, 0, 999_999_999, time.UTC))
		require.Equal(t, uint32((uint64(999_999_999)<<32)/1_000_000_000), ts.Fraction())
	})

	t.Run("Time is the inverse in era 0", func(t *testing.T) {
		want := time.Date(2022, 1, 1, 0, 0, 0, 500_000_000, time.UTC)
		got := ntp.New(3_849_984_000, 0x8000_0000).Time()
		require.True(t, want.Equal(got), "want %v, got %v", want, got)
		require.Equal(t, time.UTC, got.Location())
	})
}

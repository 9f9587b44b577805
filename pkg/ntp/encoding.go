package ntp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
)

// Size is the length of the packed wire form in bytes.
const Size = 8

// Marshal writes the big-endian packed form into buf.
func (t Timestamp) Marshal(buf []byte) error {
	if len(buf) < Size {
		return fmt.Errorf("buffer too small: %d < %d: %w", len(buf), Size, ErrInvalidLength)
	}
	binary.BigEndian.PutUint32(buf[0:4], t.seconds)
	binary.BigEndian.PutUint32(buf[4:8], t.fraction)
	return nil
}

// Unmarshal reads a big-endian packed timestamp from the first 8 bytes of buf.
func Unmarshal(buf []byte) (Timestamp, error) {
	if len(buf) < Size {
		return Timestamp{}, fmt.Errorf("buffer too small: %d < %d: %w", len(buf), Size, ErrInvalidLength)
	}
	return New(binary.BigEndian.Uint32(buf[0:4]), binary.BigEndian.Uint32(buf[4:8])), nil
}

func (t Timestamp) AppendBinary(b []byte) ([]byte, error) {
	return binary.BigEndian.AppendUint64(b, t.Raw()), nil
}

func (t Timestamp) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, Size))
}

func (t *Timestamp) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("expected %d bytes, got %d: %w", Size, len(data), ErrInvalidLength)
	}
	*t = FromRaw(binary.BigEndian.Uint64(data))
	return nil
}

// MarshalJSON encodes the timestamp as its packed unsigned 64-bit integer.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, t.Raw(), 10), nil
}

// UnmarshalJSON accepts any unsigned 64-bit JSON number. null leaves t unchanged.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	raw, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse timestamp %q: %w", data, ErrInvalidEncoding)
	}
	*t = FromRaw(raw)
	return nil
}

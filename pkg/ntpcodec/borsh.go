package ntpcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
)

// Borsh encodes a timestamp as a Borsh u64.
type Borsh ntp.Timestamp

func (b Borsh) MarshalWithEncoder(enc *bin.Encoder) error {
	return enc.WriteUint64(ntp.Timestamp(b).Raw(), binary.LittleEndian)
}

func (b *Borsh) UnmarshalWithDecoder(dec *bin.Decoder) error {
	raw, err := dec.ReadUint64(binary.LittleEndian)
	if err != nil {
		return fmt.Errorf("failed to decode timestamp: %v: %w", err, ntp.ErrInvalidEncoding)
	}
	*b = Borsh(ntp.FromRaw(raw))
	return nil
}

// MarshalBorsh serializes ts on its own.
func MarshalBorsh(ts ntp.Timestamp) ([]byte, error) {
	var buf bytes.Buffer
	enc := bin.NewBorshEncoder(&buf)
	if err := Borsh(ts).MarshalWithEncoder(enc); err != nil {
		return nil, fmt.Errorf("failed to encode timestamp: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBorsh deserializes a timestamp written by MarshalBorsh.
func UnmarshalBorsh(data []byte) (ntp.Timestamp, error) {
	if len(data) != ntp.Size {
		return ntp.Timestamp{}, fmt.Errorf("expected %d bytes, got %d: %w", ntp.Size, len(data), ntp.ErrInvalidEncoding)
	}
	var b Borsh
	if err := b.UnmarshalWithDecoder(bin.NewBorshDecoder(data)); err != nil {
		return ntp.Timestamp{}, err
	}
	return ntp.Timestamp(b), nil
}

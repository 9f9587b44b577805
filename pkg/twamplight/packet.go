// Package twamplight encodes TWAMP-light probe packets, whose send time is an
// NTP timestamp in the packed 64-bit layout.
package twamplight

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
	"github.com/malbeclabs/ntptimestamp/pkg/ntpclock"
)

const (
	PacketSize = 48

	seqOffset       = 0
	timestampOffset = 4
)

// Packet is the unauthenticated TWAMP-light test packet: a sequence number
// followed by the sender timestamp, zero padded to PacketSize.
type Packet struct {
	Seq       uint32
	Timestamp ntp.Timestamp
}

// NewPacket stamps a packet with the current time of clk.
func NewPacket(seq uint32, clk clockwork.Clock) *Packet {
	return &Packet{
		Seq:       seq,
		Timestamp: ntpclock.NowFrom(clk),
	}
}

func (p *Packet) MarshalBinary() ([]byte, error) {
	buf := make([]byte, PacketSize)
	binary.BigEndian.PutUint32(buf[seqOffset:timestampOffset], p.Seq)
	if err := p.Timestamp.Marshal(buf[timestampOffset:]); err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	return buf, nil
}

func UnmarshalPacket(buf []byte) (*Packet, error) {
	if len(buf) != PacketSize {
		return nil, ErrInvalidPacket
	}
	ts, err := ntp.Unmarshal(buf[timestampOffset:])
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal timestamp: %w", err)
	}
	return &Packet{
		Seq:       binary.BigEndian.Uint32(buf[seqOffset:timestampOffset]),
		Timestamp: ts,
	}, nil
}

// RTT returns the time between the packet's send timestamp and recv.
//
// A receive timestamp that reads earlier than the send timestamp (clock
// adjustments between the two samples) gives 0 rather than a negative RTT.
func (p *Packet) RTT(recv ntp.Timestamp) time.Duration {
	rtt := recv.Duration() - p.Timestamp.Duration()
	if rtt < 0 {
		return 0
	}
	return rtt
}

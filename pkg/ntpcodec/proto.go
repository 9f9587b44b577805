package ntpcodec

import (
	"fmt"

	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ToUInt64Value wraps the packed form for protobuf fields typed
// google.protobuf.UInt64Value.
func ToUInt64Value(ts ntp.Timestamp) *wrapperspb.UInt64Value {
	return wrapperspb.UInt64(ts.Raw())
}

// FromUInt64Value unwraps a packed timestamp. A nil message is the zero
// timestamp, matching protobuf's unset-field semantics.
func FromUInt64Value(v *wrapperspb.UInt64Value) ntp.Timestamp {
	return ntp.FromRaw(v.GetValue())
}

// ToTimestampProto converts to a google.protobuf.Timestamp, reading ts in era 0.
func ToTimestampProto(ts ntp.Timestamp) *timestamppb.Timestamp {
	return timestamppb.New(ts.Time())
}

func FromTimestampProto(pb *timestamppb.Timestamp) (ntp.Timestamp, error) {
	if err := pb.CheckValid(); err != nil {
		return ntp.Timestamp{}, fmt.Errorf("invalid protobuf timestamp: %v: %w", err, ntp.ErrInvalidEncoding)
	}
	return ntp.FromTime(pb.AsTime()), nil
}

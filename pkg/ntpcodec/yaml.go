package ntpcodec

import (
	"fmt"
	"strconv"

	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
	"gopkg.in/yaml.v3"
)

// YAML encodes a timestamp as a YAML integer. Decoding also accepts 0x-prefixed
// hex, which is how packed timestamps are usually written by hand.
type YAML ntp.Timestamp

func (y YAML) MarshalYAML() (any, error) {
	return ntp.Timestamp(y).Raw(), nil
}

func (y *YAML) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar timestamp: %w", value.Line, ntp.ErrInvalidEncoding)
	}
	raw, err := strconv.ParseUint(value.Value, 0, 64)
	if err != nil {
		return fmt.Errorf("line %d: failed to parse timestamp %q: %w", value.Line, value.Value, ntp.ErrInvalidEncoding)
	}
	*y = YAML(ntp.FromRaw(raw))
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
	"github.com/malbeclabs/ntptimestamp/pkg/ntpcodec"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %s", s)
	}
}

// report is the machine-readable view. Timestamp and YAMLTimestamp hold the
// same value; each encoder picks the one carrying its codec.
type report struct {
	Timestamp     ntp.Timestamp `json:"timestamp" yaml:"-"`
	YAMLTimestamp ntpcodec.YAML `json:"-" yaml:"timestamp"`
	Seconds       uint32        `json:"seconds" yaml:"seconds"`
	Fraction      uint32        `json:"fraction" yaml:"fraction"`
	UnixSeconds   uint64        `json:"unix_seconds" yaml:"unix_seconds"`
	Nanoseconds   uint64        `json:"nanoseconds" yaml:"nanoseconds"`
	FractionMs    uint64        `json:"fraction_ms" yaml:"fraction_ms"`
	FractionUs    uint64        `json:"fraction_us" yaml:"fraction_us"`
	FractionNs    uint64        `json:"fraction_ns" yaml:"fraction_ns"`
	FractionPs    uint64        `json:"fraction_ps" yaml:"fraction_ps"`
	Time          string        `json:"time" yaml:"time"`
}

func newReport(ts ntp.Timestamp) report {
	return report{
		Timestamp:     ts,
		YAMLTimestamp: ntpcodec.YAML(ts),
		Seconds:       ts.Seconds(),
		Fraction:      ts.Fraction(),
		UnixSeconds:   ts.UnixSeconds(),
		Nanoseconds:   ts.Nanoseconds(),
		FractionMs:    ts.FractionMilliseconds(),
		FractionUs:    ts.FractionMicroseconds(),
		FractionNs:    ts.FractionNanoseconds(),
		FractionPs:    ts.FractionPicoseconds(),
		Time:          ts.Time().Format(time.RFC3339Nano),
	}
}

func render(w io.Writer, format outputFormat, ts ntp.Timestamp) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newReport(ts)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(newReport(ts)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		renderTable(w, ts)
		return nil
	}
}

func renderTable(w io.Writer, ts ntp.Timestamp) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(true)
	table.SetHeader([]string{"Field", "Value"})
	table.AppendBulk([][]string{
		{"Raw", strconv.FormatUint(ts.Raw(), 10)},
		{"Raw (hex)", fmt.Sprintf("0x%016X", ts.Raw())},
		{"Seconds", strconv.FormatUint(uint64(ts.Seconds()), 10)},
		{"Fraction", fmt.Sprintf("%d (0x%08X)", ts.Fraction(), ts.Fraction())},
		{"Unix seconds", strconv.FormatUint(ts.UnixSeconds(), 10)},
		{"Since NTP epoch", ts.Duration().String()},
		{"Nanoseconds", strconv.FormatUint(ts.Nanoseconds(), 10)},
		{"Fraction (ms)", strconv.FormatUint(ts.FractionMilliseconds(), 10)},
		{"Fraction (µs)", strconv.FormatUint(ts.FractionMicroseconds(), 10)},
		{"Fraction (ns)", strconv.FormatUint(ts.FractionNanoseconds(), 10)},
		{"Fraction (ps)", strconv.FormatUint(ts.FractionPicoseconds(), 10)},
		{"Time (UTC)", ts.Time().Format(time.RFC3339Nano)},
	})
	table.Render()
}

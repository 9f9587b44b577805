package cli

import (
	"fmt"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/malbeclabs/ntptimestamp/pkg/ntp"
	"github.com/malbeclabs/ntptimestamp/pkg/ntpclock"
	"github.com/spf13/cobra"
)

type NowCmd struct {
	clk clockwork.Clock
}

func NewNowCmd(clk clockwork.Clock) *NowCmd {
	return &NowCmd{clk: clk}
}

func (c *NowCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current system time as an NTP timestamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, format, err := commonFlags(cmd)
			if err != nil {
				return err
			}
			ts := ntpclock.NowFrom(c.clk)
			log.Debug("Sampled clock", "timestamp", ts)
			return render(cmd.OutOrStdout(), format, ts)
		},
	}
}

type DecodeCmd struct{}

func NewDecodeCmd() *DecodeCmd {
	return &DecodeCmd{}
}

func (c *DecodeCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <raw>",
		Short: "Decode a packed 64-bit timestamp (decimal or 0x hex)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, format, err := commonFlags(cmd)
			if err != nil {
				return err
			}
			raw, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid raw timestamp %q: %w", args[0], err)
			}
			log.Debug("Decoding raw timestamp", "raw", raw)
			return render(cmd.OutOrStdout(), format, ntp.FromRaw(raw))
		},
	}
}

type FromUnixCmd struct{}

func NewFromUnixCmd() *FromUnixCmd {
	return &FromUnixCmd{}
}

func (c *FromUnixCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-unix <seconds>",
		Short: "Convert seconds since the Unix epoch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, format, err := commonFlags(cmd)
			if err != nil {
				return err
			}
			micros, err := cmd.Flags().GetUint32("micros")
			if err != nil {
				return fmt.Errorf("failed to get micros flag: %w", err)
			}
			if micros >= 1_000_000 {
				return fmt.Errorf("micros must be below 1000000, got %d", micros)
			}
			secs, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unix seconds %q: %w", args[0], err)
			}
			log.Debug("Converting unix time", "seconds", secs, "micros", micros)
			return render(cmd.OutOrStdout(), format, ntp.FromUnixParts(secs, micros))
		},
	}
	cmd.Flags().Uint32("micros", 0, "sub-second microseconds")
	return cmd
}

type FieldsCmd struct{}

func NewFieldsCmd() *FieldsCmd {
	return &FieldsCmd{}
}

func (c *FieldsCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "new <seconds> <fraction>",
		Short: "Build a timestamp from its seconds and fraction fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, format, err := commonFlags(cmd)
			if err != nil {
				return err
			}
			secs, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[0], err)
			}
			frac, err := strconv.ParseUint(args[1], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid fraction %q: %w", args[1], err)
			}
			log.Debug("Building timestamp", "seconds", secs, "fraction", frac)
			return render(cmd.OutOrStdout(), format, ntp.New(uint32(secs), uint32(frac)))
		},
	}
}

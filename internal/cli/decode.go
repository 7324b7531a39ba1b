package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/argbind/argbind/internal/value"
	"github.com/argbind/argbind/log"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	var binary bool

	cmd := withValueArg(&cobra.Command{
		Use:   "decode [--] <interval>",
		Short: "Decode interval into a duration",
		Long: `Decode interval text ('-2 days -03:00:00', '13us', P1Y2M) into a duration.
Months count as 30 days. With --hex the argument is 16 bytes of binary interval.
Negative intervals may be given directly or after --.`,
	}, func(cmd *cobra.Command, s string) error {
		return runDecode(rootOpts, cmd, s, binary)
	})
	cmd.Flags().BoolVar(&binary, "hex", false, "argument is hex of postgres binary interval")

	return cmd
}

func runDecode(opts *RootOptions, cmd *cobra.Command, s string, binary bool) error {
	l := opts.logger(cmd.ErrOrStderr())
	ctx := debugContext(cmd, "decode")

	var (
		iv  value.Interval
		err error
	)
	if binary {
		b, decodeErr := hex.DecodeString(s)
		if decodeErr != nil {
			return fmt.Errorf("invalid hex: %w", decodeErr)
		}
		err = iv.UnmarshalBinary(b)
	} else {
		iv, err = value.ParseInterval(s)
	}
	if err != nil {
		return err
	}
	l.Log(ctx, "parsed", log.String("input", s), log.Stringer("interval", iv))

	d, err := value.Decode(&iv)
	if err != nil {
		return err
	}
	l.Log(ctx, "decoded", log.Stringer("duration", d))

	r, err := newResult(*d, iv)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, r)
}

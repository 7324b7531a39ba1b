package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/argbind/argbind/internal/value"
	"github.com/argbind/argbind/internal/xerrors"
	"github.com/argbind/argbind/log"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	return withValueArg(&cobra.Command{
		Use:   "encode [--] <duration>",
		Short: "Encode a duration into interval wire value",
		Long: `Encode a duration into postgres interval wire value.

The duration is Go syntax (-1h30m, 13us) or any interval text (P1DT2H, '2 days 03:00:00').
Negative values may be given directly (encode -51h) or after --.
Sub-microsecond remainders and spans beyond 32-bit days fail like they do on bind.`,
	}, func(cmd *cobra.Command, s string) error {
		return runEncode(rootOpts, cmd, s)
	})
}

func runEncode(opts *RootOptions, cmd *cobra.Command, s string) error {
	l := opts.logger(cmd.ErrOrStderr())
	ctx := debugContext(cmd, "encode")

	d, err := parseDuration(s)
	if err != nil {
		return err
	}
	l.Log(ctx, "parsed", log.String("input", s), log.Stringer("duration", d))

	iv, err := value.Encode(d)
	if err != nil {
		return err
	}
	l.Log(ctx, "encoded", log.Stringer("interval", iv))

	r, err := newResult(*d, *iv)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, r)
}

// parseDuration tries Go duration syntax first, then interval text.
func parseDuration(s string) (*value.Duration, error) {
	if std, err := time.ParseDuration(s); err == nil {
		d := value.FromStd(std)

		return &d, nil
	}
	d, err := value.DecodeText(s)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return d, nil
}

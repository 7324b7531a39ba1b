package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// withValueArg makes cmd take exactly one value which may start with '-',
// so `encode -51h` and `decode '-2 days -03:00:00'` need no `--`.
// Flag parsing is disabled on cmd and done here instead: arguments that look
// like negative values are set aside before the rest goes to the flag set.
func withValueArg(cmd *cobra.Command, run func(cmd *cobra.Command, value string) error) *cobra.Command {
	var value string

	cmd.DisableFlagParsing = true
	cmd.Args = func(cmd *cobra.Command, args []string) error {
		values, err := parseValueArgs(cmd, args)
		if err != nil {
			return err
		}
		if err = cobra.ExactArgs(1)(cmd, values); err != nil {
			return err
		}
		value = values[0]

		return nil
	}
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd, value)
	}

	return cmd
}

func parseValueArgs(cmd *cobra.Command, args []string) ([]string, error) {
	// merges persistent flags of the parents into cmd.Flags()
	_ = cmd.InheritedFlags()
	flags := cmd.Flags()

	var values, rest []string
	for i, arg := range args {
		if arg == "--" {
			rest = append(rest, args[i:]...)

			break
		}
		if looksNegative(arg) {
			values = append(values, arg)
		} else {
			rest = append(rest, arg)
		}
	}
	if err := flags.Parse(rest); err != nil {
		return nil, cmd.FlagErrorFunc()(cmd, err)
	}
	if help, _ := flags.GetBool("help"); help {
		return nil, pflag.ErrHelp
	}

	return append(values, flags.Args()...), nil
}

// looksNegative reports `-51h`, `-.5s`, `-P2D` and `-2 days` as values.
// No flag of this CLI has a digit, dot or P shorthand.
func looksNegative(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	c := arg[1]

	return isDigit(c) || c == '.' || c == 'P'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

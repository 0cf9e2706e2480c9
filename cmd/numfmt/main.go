package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	resultColor = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed, color.Bold)
)

// newRootCmd builds the numfmt command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numfmt",
		Short:         "Deep Mine number and duration formatting",
		Long:          `numfmt runs the client's timer, duration, comma and suffix formatters from the shell`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cmd.Flags().GetString("color")
			if err != nil {
				return fmt.Errorf("failed to get color flag: %w", err)
			}
			switch mode {
			case "auto":
			case "on":
				color.NoColor = false
			case "off":
				color.NoColor = true
			default:
				return fmt.Errorf("unknown color mode: %s", mode)
			}
			return nil
		},
	}
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(
		timerCmd(),
		secondsCmd(),
		remainingCmd(),
		commaCmd(),
		suffixCmd(),
		parseSuffixCmd(),
		snakeCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

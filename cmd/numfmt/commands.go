package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/deep-mine/internal/format"
)

func timerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timer SECONDS",
		Short: "Format seconds as a countdown (MM:SS or H:MM:SS)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			out, err := format.TimerFormat(n)
			if err != nil {
				return err
			}
			return printResult(cmd, out)
		},
	}
}

func secondsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seconds DURATION...",
		Short: "Sum a compact duration such as \"1d 5h 10s\" into seconds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, strconv.FormatInt(format.ToSeconds(strings.Join(args, " ")), 10))
		},
	}
}

func remainingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remaining SECONDS",
		Short: "Break seconds down into days, hours, minutes and seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			out, err := format.RemainingTime(n)
			if err != nil {
				return err
			}
			return printResult(cmd, out)
		},
	}
}

func commaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comma NUMBER",
		Short: "Group digits in threes with commas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, format.CommaFormatString(args[0]))
		},
	}
}

func suffixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suffix NUMBER",
		Short: "Abbreviate a count with K/M/B/T/Q",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, format.SuffixedNumber(n))
		},
	}
}

func parseSuffixCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "parse-suffix TEXT",
		Short: "Expand a suffixed number such as 1.5K",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asInt, err := cmd.Flags().GetBool("int")
			if err != nil {
				return fmt.Errorf("failed to get int flag: %w", err)
			}
			if asInt {
				n, err := format.ParseSuffixedInt(args[0])
				if err != nil {
					return err
				}
				return printResult(cmd, strconv.FormatInt(n, 10))
			}
			v, err := format.ParseSuffixedNumber(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, strconv.FormatFloat(v, 'f', -1, 64))
		},
	}
	c.Flags().Bool("int", false, "require a whole-number result")
	return c
}

func snakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snake TEXT...",
		Short: "Convert a display name to snake_case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, format.SnakeCase(strings.Join(args, " ")))
		},
	}
}

var errNotWholeNumber = errors.New("not a whole number")

func parseInt(arg string) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is %w", arg, errNotWholeNumber)
	}
	return n, nil
}

func printResult(cmd *cobra.Command, out string) error {
	_, err := resultColor.Fprintln(cmd.OutOrStdout(), out)
	return err
}

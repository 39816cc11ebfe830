package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Rorical/CalcPad/internal/buttons"
	"github.com/Rorical/CalcPad/internal/calculator"
)

var pressTrace bool

var pressCmd = &cobra.Command{
	Use:   "press <button>...",
	Short: "Press buttons without the TUI and print the display",
	Long: `Press buttons in order and print the resulting display.

Buttons are named by id (button7, buttonPlus, buttonAC), label or alias:
0-9 . + - * x / = ac c +/- neg %`,
	Example: `  calcpad press 3 + 4 '*' 2 =
  calcpad press --trace 5 / 0 =`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := stderrLogger()
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		if err := replay(cmd.OutOrStdout(), args, pressTrace); err != nil {
			logger.Error("press failed", "error", err)
			return err
		}
		return nil
	},
}

// replay presses every button and prints the display, after each press when
// trace is set.
func replay(w io.Writer, names []string, trace bool) error {
	calc := calculator.New(nil)
	for _, name := range names {
		b, err := buttons.Press(calc, name)
		if err != nil {
			return err
		}
		if trace {
			fmt.Fprintf(w, "%-4s %s\n", b.Label, calc.Display())
		}
	}
	if !trace {
		fmt.Fprintln(w, calc.Display())
	}
	return nil
}

func init() {
	pressCmd.Flags().BoolVar(&pressTrace, "trace", false, "print the display after every press")
	rootCmd.AddCommand(pressCmd)
}

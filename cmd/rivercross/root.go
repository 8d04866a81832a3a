package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/logging"
)

// app carries what every subcommand shares.
type app struct {
	out    io.Writer
	errOut io.Writer

	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: logging.Discard()}

	root := &cobra.Command{
		Use:           "rivercross",
		Short:         "Solve, construct and check river-crossing puzzle plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			json, err := wantJSON(a.logFormat, a.errOut)
			if err != nil {
				return err
			}
			a.logger = logging.New(logging.Config{
				Level:   level,
				JSON:    json,
				Writer:  a.errOut,
				Service: "rivercross",
			})

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "auto", "log format: auto, text or json (auto is text on a terminal)")

	root.AddCommand(
		newSolveCmd(a),
		newHeuristicCmd(a),
		newValidateCmd(a),
		newReportCmd(a),
	)

	return root
}

// wantJSON resolves --log-format. "auto" picks text when w is a terminal.
func wantJSON(format string, w io.Writer) (bool, error) {
	switch format {
	case "json":
		return true, nil
	case "text":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok {
			return true, nil
		}

		return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unknown log format %q", format)
	}
}

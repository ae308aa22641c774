package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/gridkit/internal/app"
	"github.com/vk/gridkit/internal/life"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// logFlags are the options every binary shares.
type logFlags struct {
	format *string
	level  *string
}

func newFlagSet(name, usage string, output io.Writer) (*flag.FlagSet, logFlags) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}
	return flagSet, logFlags{
		format: flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'."),
		level:  flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'."),
	}
}

// parseFlags runs the flag set and converts its outcome into the
// (shouldExit, error) convention used by every Parse function.
func parseFlags(flagSet *flag.FlagSet, args []string) (bool, error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}
	return false, nil
}

func (l logFlags) config() (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		LogFormat: strings.ToLower(*l.format),
		LogLevel:  strings.ToLower(*l.level),
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, nil
}

// SquareArgs is the parsed command line of the bsq binary.
type SquareArgs struct {
	Config *app.Config
	// Paths lists map files; empty means read from standard input.
	Paths []string
}

// ParseSquare parses `bsq [options] [FILE...]`.
func ParseSquare(args []string, output io.Writer) (*SquareArgs, bool, error) {
	slog.Debug("CLI parser started.", "binary", "bsq")
	flagSet, lf := newFlagSet("bsq", `
bsq - paint the largest empty square of each map.

Usage:
  bsq [options] [FILE...]

Arguments:
  FILE
    Map files, one map each. Without files, maps are read from standard input.

Options:
`, output)

	if exit, err := parseFlags(flagSet, args); exit || err != nil {
		return nil, exit, err
	}
	cfg, err := lf.config()
	if err != nil {
		return nil, false, err
	}

	slog.Debug("CLI parser finished successfully.", "files", flagSet.NArg())
	return &SquareArgs{Config: cfg, Paths: flagSet.Args()}, false, nil
}

// LifeArgs is the parsed command line of the life binary.
type LifeArgs struct {
	Config *app.Config
	Params life.Params
	// Run is false when the positional arguments are missing or malformed;
	// the binary then does nothing at all.
	Run bool
}

// ParseLife parses `life [options] WIDTH HEIGHT ITERATIONS`. When the first
// argument is an integer no options are parsed, so a negative width is
// never mistaken for a flag.
func ParseLife(args []string, output io.Writer) (*LifeArgs, bool, error) {
	slog.Debug("CLI parser started.", "binary", "life")
	flagSet, lf := newFlagSet("life", `
life - draw on a board with pen commands from standard input, then run Conway's Game of Life.

Usage:
  life [options] WIDTH HEIGHT ITERATIONS

Pen commands:
  w a s d  move up, left, down, right
  x        lift or lower the pen

Options:
`, output)

	positional := args
	if len(args) == 0 || !isInteger(args[0]) {
		if exit, err := parseFlags(flagSet, args); exit || err != nil {
			return nil, exit, err
		}
		positional = flagSet.Args()
	}
	cfg, err := lf.config()
	if err != nil {
		return nil, false, err
	}

	out := &LifeArgs{Config: cfg}
	if len(positional) < 3 {
		slog.Debug("Missing life arguments.", "count", len(positional))
		return out, false, nil
	}
	var values [3]int
	for i := range values {
		v, err := strconv.Atoi(positional[i])
		if err != nil {
			slog.Debug("Malformed life argument.", "arg", positional[i], "error", err)
			return out, false, nil
		}
		values[i] = v
	}
	out.Params = life.Params{Width: values[0], Height: values[1], Iterations: values[2]}
	out.Run = true

	slog.Debug("CLI parser finished successfully.", "params", out.Params)
	return out, false, nil
}

// BatchArgs is the parsed command line of the gridbatch binary.
type BatchArgs struct {
	Config       *app.Config
	ScenarioPath string
}

// ParseBatch parses `gridbatch [options] SCENARIO_PATH`.
func ParseBatch(args []string, output io.Writer) (*BatchArgs, bool, error) {
	slog.Debug("CLI parser started.", "binary", "gridbatch")
	flagSet, lf := newFlagSet("gridbatch", `
gridbatch - run the square and life jobs declared in scenario files.

Usage:
  gridbatch [options] SCENARIO_PATH

Arguments:
  SCENARIO_PATH
    Path to a .hcl, .yaml or .yml file, or a directory containing such files.

Options:
`, output)
	scenarioFlag := flagSet.String("scenario", "", "Path to the scenario file or directory.")
	sFlag := flagSet.String("s", "", "Path to the scenario file or directory (shorthand).")

	if exit, err := parseFlags(flagSet, args); exit || err != nil {
		return nil, exit, err
	}

	path := ""
	if *scenarioFlag != "" {
		path = *scenarioFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Scenario path determined.", "path", path)

	if path == "" {
		slog.Debug("No scenario path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg, err := lf.config()
	if err != nil {
		return nil, false, err
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &BatchArgs{Config: cfg, ScenarioPath: path}, false, nil
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

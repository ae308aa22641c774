package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/gridkit/internal/app"
	"github.com/vk/gridkit/internal/cli"
)

// main is the entrypoint for the life tool.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses the arguments and performs one life run. Missing or
// malformed positional arguments end the program silently.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	parsed, shouldExit, err := cli.ParseLife(args, errW)
	if err != nil {
		return err
	}
	if shouldExit || !parsed.Run {
		return nil
	}

	a := app.NewApp(outW, errW, parsed.Config)
	return a.RunLife(context.Background(), parsed.Params, in)
}

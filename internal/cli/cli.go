package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/wavetiles/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("wavetiles", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
wavetiles - Builds the orientation and adjacency model of a tileset.

Usage:
  wavetiles [options] [TILESET_PATH...]

Arguments:
  TILESET_PATH
    Path to a .xml or .hcl tileset, or a directory searched recursively for them.

Options:
`)
		flagSet.PrintDefaults()
	}

	tilesetFlag := flagSet.String("tileset", "", "Path to the tileset file or directory.")
	tFlag := flagSet.String("t", "", "Path to the tileset file or directory (shorthand).")
	outputFlag := flagSet.String("output", "text", "Report format. Options: 'text', 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", app.DefaultWorkerCount, "Number of tilesets loaded concurrently.")
	publishFlag := flagSet.String("publish", "", "Socket.IO URL of a solver service to send the tilesets to.")
	publishNSFlag := flagSet.String("publish-namespace", "/", "Socket.IO namespace used with -publish.")
	publishAckFlag := flagSet.String("publish-ack", "", "Event the solver emits to acknowledge a tileset. Empty does not wait.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the HTTP inspection server (/health, /tilesets). 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	if *tilesetFlag != "" {
		paths = append(paths, *tilesetFlag)
	} else if *tFlag != "" {
		paths = append(paths, *tFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Tileset paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No tileset path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		TilesetPaths:     paths,
		OutputFormat:     *outputFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		WorkerCount:      *workersFlag,
		PublishURL:       *publishFlag,
		PublishNamespace: *publishNSFlag,
		PublishAckEvent:  *publishAckFlag,
		ServePort:        *servePortFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

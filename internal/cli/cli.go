package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/shadegrid/internal/app"
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
	flagSet := flag.NewFlagSet("shadegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
shadegrid - A registry of versioned shader-node definitions.

Usage:
  shadegrid [options] [DEFS_PATH]

Arguments:
  DEFS_PATH
    Path to a single .hcl manifest or a directory containing .hcl manifests.
    Without it only the standard definitions are listed.

Options:
`)
		flagSet.PrintDefaults()
	}

	defsFlag := flagSet.String("defs", "", "Path to the manifest file or directory.")
	dFlag := flagSet.String("d", "", "Path to the manifest file or directory (shorthand).")
	shapesFlag := flagSet.String("shapes", "", "Path to shape-only manifests to build into outline trees.")
	noStandardFlag := flagSet.Bool("no-standard", false, "Do not register the compiled-in standard definitions.")
	formatFlag := flagSet.String("format", "text", "Catalog output format. Options: 'text' or 'json'.")
	renderFlag := flagSet.String("render", "", "Print the body of the function with this key (e.g. Add@1) instead of the catalog.")
	publishFlag := flagSet.String("publish-url", "", "socket.io URL that receives an event per registered descriptor.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	bindings := map[string]string{}
	flagSet.Func("bind", "Rename a parameter when rendering, as NAME=VALUE. May be repeated.", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			return errors.New("expected NAME=VALUE")
		}
		if _, exists := bindings[name]; exists {
			return fmt.Errorf("parameter %q bound twice", name)
		}
		bindings[name] = value
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *defsFlag != "" {
		path = *defsFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	slog.Debug("Definitions path determined.", "path", path)

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

	if len(bindings) == 0 {
		bindings = nil
	}
	config, err := app.NewConfig(app.Config{
		DefsPath:     path,
		ShapesPath:   *shapesFlag,
		NoStandard:   *noStandardFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		OutputFormat: strings.ToLower(*formatFlag),
		Render:       *renderFlag,
		Bindings:     bindings,
		PublishURL:   *publishFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

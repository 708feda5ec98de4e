package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/loghub-connector/internal/application"
	"github.com/eugenenazirov/loghub-connector/internal/config"
	"github.com/eugenenazirov/loghub-connector/internal/defaults"
	"github.com/eugenenazirov/loghub-connector/internal/logging"
	"github.com/eugenenazirov/loghub-connector/internal/validation"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "loghub-config: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	// kingpin terminates after printing help; record it instead of exiting so
	// run returns without resolving anything.
	terminated := false
	kingpinApp := kingpin.New("loghub-config", "LogHub connector - resolves layered settings and validates values").
		Terminate(func(int) { terminated = true }).
		UsageWriter(stdout)
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").Default("warn").String()

	resolveCmd := kingpinApp.Command("resolve", "Resolve and print the connector settings").Default()
	properties := resolveCmd.Flag("property", "Property as loghub.<name>=value").Short('D').StringMap()
	propertiesFile := resolveCmd.Flag("properties", "Path to YAML properties file").String()
	resourcesDir := resolveCmd.Flag("resources", "Directory holding META-INF/loghub/<NAME> resources").String()
	overrides := resolveCmd.Flag("default", "Override a compiled-in default as NAME=value").StringMap()
	output := resolveCmd.Flag("output", "Output format").Short('o').Default(application.OutputText).Enum(application.OutputText, application.OutputYAML)

	checkCmd := kingpinApp.Command("check", "Validate a value against a format")
	format := checkCmd.Arg("format", "Format name").Required().Enum(formatNames()...)
	value := checkCmd.Arg("value", "Value to check").Required().String()

	command, err := kingpinApp.Parse(args)
	if terminated {
		return nil
	}
	if err != nil {
		return err
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	switch command {
	case checkCmd.FullCommand():
		if err := application.Check(*format, *value); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: ok\n", *format)
		return nil
	default:
		store := defaults.NewMemoryStore()
		for name, v := range *overrides {
			if err := store.Set(name, v); err != nil {
				return fmt.Errorf("default %s: %w", name, err)
			}
		}

		opts := &config.Options{
			Properties:     *properties,
			PropertiesFile: *propertiesFile,
			Defaults:       store,
		}
		if *resourcesDir != "" {
			opts.Resources = os.DirFS(*resourcesDir)
		}

		app, err := application.New(opts, logger)
		if err != nil {
			logger.Error("failed to initialize application", zap.Error(err))
			return err
		}
		return app.Render(stdout, *output)
	}
}

func formatNames() []string {
	formats := validation.Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

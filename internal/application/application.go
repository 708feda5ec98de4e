package application

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/loghub-connector/internal/config"
	"github.com/eugenenazirov/loghub-connector/internal/validation"
)

// Output formats accepted by Render.
const (
	OutputYAML = "yaml"
	OutputText = "text"
)

// ErrUnknownOutput is returned by Render for an unsupported output format.
var ErrUnknownOutput = errors.New("unknown output format")

// App holds a resolved configuration.
type App struct {
	cfg    config.Config
	logger *zap.Logger
}

// Entry is one rendered setting.
type Entry struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value,omitempty"`
	Origin string `yaml:"origin,omitempty"`
}

// New resolves the configuration from opts.
func New(opts *config.Options, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := config.Load(opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &App{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Config returns the resolved configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Entries lists every setting in catalogue order. Null settings have an empty
// Value and Origin.
func (a *App) Entries() []Entry {
	settings := config.Settings()
	entries := make([]Entry, 0, len(settings))
	for _, s := range settings {
		e := Entry{Name: s.Name}
		if v, ok := a.cfg.Get(s.Name); ok {
			e.Value = v
			e.Origin = string(a.cfg.Origins[s.Name])
		}
		entries = append(entries, e)
	}
	return entries
}

// Render writes the settings to w as YAML or as an aligned text table.
func (a *App) Render(w io.Writer, output string) error {
	a.logger.Debug("rendering configuration", zap.String("output", output))

	switch output {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]Entry{"settings": a.Entries()}); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return enc.Close()
	case OutputText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SETTING\tVALUE\tORIGIN")
		for _, e := range a.Entries() {
			value, origin := e.Value, e.Origin
			if origin == "" {
				value, origin = "-", "-"
			}
			fmt.Fprintf(tw, "%s\t%q\t%s\n", e.Name, value, origin)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
}

// Check validates value against the named format.
func Check(format, value string) error {
	f := validation.Format(format)
	if !slices.Contains(validation.Formats(), f) {
		return fmt.Errorf("unknown format %q", format)
	}
	_, err := validation.Check(f, "value", value)
	return err
}

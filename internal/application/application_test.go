package application

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/loghub-connector/internal/config"
	"github.com/eugenenazirov/loghub-connector/internal/validation"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, s := range config.Settings() {
		key := config.EnvKey(s.Name)
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	clearEnv(t)

	opts := &config.Options{
		Properties: map[string]string{"loghub.organization": "acme"},
		Resources: fstest.MapFS{
			"META-INF/loghub/VERSION": {Data: []byte("3.2.1")},
		},
	}
	app, err := New(opts, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return app
}

func TestNewResolvesConfiguration(t *testing.T) {
	app := newTestApp(t)

	cfg := app.Config()
	if cfg.Organization != "acme" || cfg.Version != "3.2.1" || cfg.Central != "loghub.net" {
		t.Fatalf("unexpected configuration: %+v", cfg)
	}

	entries := app.Entries()
	if len(entries) != len(config.Settings()) {
		t.Fatalf("expected an entry per setting, got %d", len(entries))
	}
	if entries[0].Name != "CENTRAL" || entries[0].Origin != "default" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
}

func TestNewReturnsErrorForInvalidConfiguration(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGHUB_ORGANIZATION", "Acme Inc")

	if _, err := New(nil, zaptest.NewLogger(t)); !errors.Is(err, validation.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRenderYAML(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	if err := app.Render(&buf, OutputYAML); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	var doc struct {
		Settings []Entry `yaml:"settings"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}

	found := false
	for _, e := range doc.Settings {
		if e.Name == "VERSION" {
			found = e.Value == "3.2.1" && e.Origin == "resource"
		}
	}
	if !found {
		t.Fatalf("expected VERSION from resource in output:\n%s", buf.String())
	}
}

func TestRenderText(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	if err := app.Render(&buf, OutputText); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "SETTING") {
		t.Fatalf("expected header, got:\n%s", out)
	}
	if !strings.Contains(out, `"acme"`) || !strings.Contains(out, "property") {
		t.Fatalf("expected organization row, got:\n%s", out)
	}
}

func TestRenderUnknownOutput(t *testing.T) {
	app := newTestApp(t)

	if err := app.Render(&bytes.Buffer{}, "json"); !errors.Is(err, ErrUnknownOutput) {
		t.Fatalf("expected ErrUnknownOutput, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	if err := Check("domain", "loghub.net"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Check("secret", "short"); !errors.Is(err, validation.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := Check("ipv4", "127.0.0.1"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

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

func TestRunResolve(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGHUB_ENVIRONMENT", "staging")

	dir := t.TempDir()
	resourceDir := filepath.Join(dir, "META-INF", "loghub")
	if err := os.MkdirAll(resourceDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(resourceDir, "APPLICATION"), []byte("billing"), 0o600); err != nil {
		t.Fatalf("write resource: %v", err)
	}

	var out bytes.Buffer
	err := run([]string{
		"resolve",
		"-D", "loghub.organization=acme",
		"--resources", dir,
		"--default", "REGISTRY=registry.loghub.net",
		"--output", "yaml",
	}, &out)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"value: staging", "value: acme", "value: billing", "value: registry.loghub.net", "value: loghub.net"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRunResolveIsDefaultCommand(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	if err := run(nil, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "CENTRAL") {
		t.Fatalf("expected settings table, got:\n%s", out.String())
	}
}

func TestRunResolveFailsOnInvalidSetting(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGHUB_CENTRAL", "https://loghub.net")

	err := run([]string{"resolve"}, &bytes.Buffer{})
	if !errors.Is(err, validation.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRunResolveRejectsInvalidDefaultName(t *testing.T) {
	clearEnv(t)

	if err := run([]string{"resolve", "--default", "central=x"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for lower-case default name")
	}
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"check", "name", "my-service1"}, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "name: ok" {
		t.Fatalf("unexpected output %q", out.String())
	}

	err := run([]string{"check", "name", "ab"}, &bytes.Buffer{})
	if err == nil || err.Error() != "argument 'value' is 'ab' not a name" {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := run([]string{"check", "ipv4", "127.0.0.1"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected parse error for unknown format")
	}
}

func TestRunHelp(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGHUB_CENTRAL", "NOT A DOMAIN")

	for _, args := range [][]string{{"--help"}, {"help"}, {"resolve", "--help"}} {
		var out bytes.Buffer
		if err := run(args, &out); err != nil {
			t.Fatalf("%v: expected help without resolution, got %v", args, err)
		}
		if !strings.Contains(out.String(), "usage:") {
			t.Fatalf("%v: expected usage text, got:\n%s", args, out.String())
		}
		if strings.Contains(out.String(), "SETTING") {
			t.Fatalf("%v: expected no settings table, got:\n%s", args, out.String())
		}
	}
}

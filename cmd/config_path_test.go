package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfigPath(t *testing.T) {
	t.Run("uses explicit flag first", func(t *testing.T) {
		got, err := resolveConfigPath("./custom.yaml", "/tmp/active.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "./custom.yaml" {
			t.Fatalf("expected explicit config path, got %q", got)
		}
	})

	t.Run("uses active config when flag is empty", func(t *testing.T) {
		got, err := resolveConfigPath("", "/tmp/active.yaml")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/tmp/active.yaml" {
			t.Fatalf("expected active config path, got %q", got)
		}
	})

	t.Run("falls back to home config path", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, err := resolveConfigPath("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join(home, ".workend.yaml")
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestEnsureConfigFileWithTemplate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "myconfig.yaml")

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		t.Fatalf("unexpected error creating template config: %v", err)
	}
	if !created {
		t.Fatalf("expected file to be created")
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("unexpected error reading config file: %v", err)
	}
	if !strings.Contains(string(content), "# workend configuration") {
		t.Fatalf("expected example config content, got:\n%s", string(content))
	}
	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("unexpected error stat config file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected config file mode 0600, got %o", info.Mode().Perm())
	}

	created, err = ensureConfigFileWithTemplate(configPath)
	if err != nil {
		t.Fatalf("unexpected error on existing config file: %v", err)
	}
	if created {
		t.Fatalf("did not expect existing file to be recreated")
	}
}

func TestActiveConfigPath(t *testing.T) {
	got, err := activeConfigPath("", "/tmp/active.yaml")
	if err != nil || got != "/tmp/active.yaml" {
		t.Fatalf("expected active config path, got %q (%v)", got, err)
	}

	if _, err := activeConfigPath(" ", ""); !errors.Is(err, errNoConfigFile) {
		t.Fatalf("expected errNoConfigFile, got %v", err)
	}
}

func TestWriteConfigTemplateOverwritesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "overwrite.yaml")
	if err := os.WriteFile(configPath, []byte("defaults:\n  start_time: \"06:00\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := writeConfigTemplate(configPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		t.Fatalf("expected template to validate: %v", err)
	}
	if cfg.Defaults.StartTime != "08:00" {
		t.Fatalf("expected template start time, got %q", cfg.Defaults.StartTime)
	}
}

func TestPrintDefaultsEnd(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "late.yaml")
	content := "defaults:\n  start_time: \"20:00\"\n  break_minutes: 60\n  overtime_hours: 2\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	printDefaultsEnd(&out, *cfg)
	want := "Defaults: start 20:00, break 60 min, overtime 2 h -> ends at 07:00 (+1 day)"
	if !strings.Contains(out.String(), want) {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateConfigWritesExampleTemplate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "create-template.yaml")

	var out bytes.Buffer
	if err := createConfig(&out, configPath, false); err != nil {
		t.Fatalf("unexpected error creating config: %v", err)
	}
	if !strings.Contains(out.String(), "New config file created at: "+configPath) {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if !strings.Contains(out.String(), "ends at 16:30") {
		t.Fatalf("expected default end time in output: %q", out.String())
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}
	if !strings.Contains(string(content), "# workend configuration") {
		t.Fatalf("expected example header in config file, got:\n%s", content)
	}
}

func TestCreateConfigKeepsExistingFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "existing.yaml")
	original := "defaults:\n  start_time: \"07:30\"\n  break_minutes: 45\n"
	if err := os.WriteFile(configPath, []byte(original), 0o644); err != nil {
		t.Fatalf("failed writing initial config: %v", err)
	}

	var out bytes.Buffer
	if err := createConfig(&out, configPath, false); err != nil {
		t.Fatalf("unexpected error creating config: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") || !strings.Contains(out.String(), "ends at 16:15") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed reading existing config after create: %v", err)
	}
	if string(content) != original {
		t.Fatalf("expected existing config to remain unchanged")
	}
}

func TestCreateConfigForceReplacesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(configPath, []byte("defaults:\n  start_time: \"8am\"\n"), 0o600); err != nil {
		t.Fatalf("failed writing initial config: %v", err)
	}

	if err := createConfig(&bytes.Buffer{}, configPath, false); err == nil {
		t.Fatalf("expected invalid existing config to be reported")
	}

	var out bytes.Buffer
	if err := createConfig(&out, configPath, true); err != nil {
		t.Fatalf("unexpected error forcing template: %v", err)
	}
	if !strings.Contains(out.String(), "reset to template") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestDeleteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "delete-me.yaml")
	if err := writeConfigTemplate(configPath); err != nil {
		t.Fatalf("write template: %v", err)
	}

	var out bytes.Buffer
	if err := deleteConfig(&out, configPath); err != nil {
		t.Fatalf("unexpected error deleting config: %v", err)
	}
	if !strings.Contains(out.String(), "Config file deleted: "+configPath) {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Fatalf("expected config file to be gone, stat err: %v", err)
	}

	if err := deleteConfig(&bytes.Buffer{}, configPath); !errors.Is(err, errNoConfigFile) {
		t.Fatalf("expected errNoConfigFile for missing file, got %v", err)
	}
}

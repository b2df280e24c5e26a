package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExercisesCommand_ListsAllKinds(t *testing.T) {
	out, err := runCommand(t, "exercises")
	if err != nil {
		t.Fatalf("exercises: %v", err)
	}

	for _, want := range []string{"shoulder_press", "bicep_curl", "alternating_bicep_curl", "tricep_kickback"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "alternating arms") {
		t.Errorf("output missing alternation style:\n%s", out)
	}
}

func TestConfigInitCommand_WritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Errorf("output does not mention target path:\n%s", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[thresholds.shoulder_press]") {
		t.Error("sample config missing threshold section")
	}
}

func TestConfigInitCommand_RefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected an error when the target already exists")
	}
}

func TestConfigShowCommand_PrintsEffectiveConfig(t *testing.T) {
	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "[camera]") || !strings.Contains(out, "[speech]") {
		t.Errorf("unexpected config output:\n%s", out)
	}
}

func TestHistoryCommand_NoDatabase(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	dataDir := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(cfgPath, []byte("[storage]\ndata_dir = \""+dataDir+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "--config", cfgPath, "history"); err == nil {
		t.Fatal("expected an error without a session database")
	}
}

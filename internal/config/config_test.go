package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestDefault_MatchesStockThresholds(t *testing.T) {
	cfg := Default()

	sp := cfg.Thresholds.ShoulderPress
	if sp.StartMin != 80 || sp.StartMax != 100 || sp.Up != 160 || sp.Down != 90 {
		t.Errorf("unexpected shoulder press thresholds: %+v", sp)
	}
	bc := cfg.Thresholds.BicepCurl
	if bc.Start != 160 || bc.Up != 60 || bc.Down != 160 {
		t.Errorf("unexpected bicep curl thresholds: %+v", bc)
	}
	tk := cfg.Thresholds.TricepKickback
	if tk.Start != 30 || tk.Up != 150 || tk.Down != 30 {
		t.Errorf("unexpected tricep kickback thresholds: %+v", tk)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Camera.Width != defaultFrameWidth {
		t.Errorf("width = %d, want default %d", cfg.Camera.Width, defaultFrameWidth)
	}
}

func TestLoad_OverridesLayerOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[camera]
index = 2
fps = 15

[speech]
enabled = false

[thresholds.bicep_curl]
start_threshold = 150
up_threshold = 70
down_threshold = 150
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Camera.Index != 2 || cfg.Camera.FPS != 15 {
		t.Errorf("camera overrides not applied: %+v", cfg.Camera)
	}
	if cfg.Camera.Width != defaultFrameWidth {
		t.Errorf("width = %d, want default %d", cfg.Camera.Width, defaultFrameWidth)
	}
	if cfg.Speech.Enabled {
		t.Error("speech should be disabled")
	}
	if cfg.Speech.Rate != defaultSpeechRate {
		t.Errorf("speech rate = %d, want default %d", cfg.Speech.Rate, defaultSpeechRate)
	}
	if cfg.Thresholds.BicepCurl.Up != 70 {
		t.Errorf("bicep curl up threshold = %f, want 70", cfg.Thresholds.BicepCurl.Up)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "bad volume",
			content: "[speech]\nvolume = 1.5\n",
			wantIn:  "volume",
		},
		{
			name:    "inverted press window",
			content: "[thresholds.shoulder_press]\nstart_min = 120\nstart_max = 100\n",
			wantIn:  "start_min",
		},
		{
			name:    "bad confidence",
			content: "[pose]\nmin_detection_confidence = 2.0\n",
			wantIn:  "min_detection_confidence",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantIn) {
				t.Errorf("error %q does not mention %q", err, tc.wantIn)
			}
		})
	}
}

func TestThresholds_SetConversion(t *testing.T) {
	set := Default().Thresholds.Set()
	if set.ShoulderPress.StartMin != 80 || set.BicepCurl.Start != 160 || set.TricepKickback.Up != 150 {
		t.Errorf("conversion lost values: %+v", set)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got := ExpandPath("~/.ailand")
	if got != filepath.Join(home, ".ailand") {
		t.Errorf("ExpandPath(~/.ailand) = %s", got)
	}

	if got := ExpandPath("/tmp/x"); got != "/tmp/x" {
		t.Errorf("absolute path modified: %s", got)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}

	// Sample must round-trip through Load and validation.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(sample): %v", err)
	}
	if cfg.Thresholds.BicepCurl.Start != 160 {
		t.Errorf("sample thresholds differ from defaults: %+v", cfg.Thresholds.BicepCurl)
	}

	// Refuses to overwrite.
	if err := WriteSample(path); err == nil {
		t.Error("expected error overwriting existing config")
	}
}

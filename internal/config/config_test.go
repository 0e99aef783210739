package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/midgard-daycycle/internal/daynight"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Simulation defaults
	if cfg.Simulation.TimeMultiplier != 2000 {
		t.Errorf("expected multiplier 2000, got %v", cfg.Simulation.TimeMultiplier)
	}
	if cfg.Simulation.StartHour != 12 {
		t.Errorf("expected start hour 12, got %v", cfg.Simulation.StartHour)
	}
	if cfg.Simulation.SunriseHour != 7 || cfg.Simulation.SunsetHour != 20.5 {
		t.Errorf("expected sunrise/sunset 7/20.5, got %v/%v", cfg.Simulation.SunriseHour, cfg.Simulation.SunsetHour)
	}

	// Lighting defaults
	if cfg.Lighting.MaxSunIntensity != 1 {
		t.Errorf("expected max sun intensity 1, got %v", cfg.Lighting.MaxSunIntensity)
	}
	if cfg.Lighting.MaxMoonIntensity != 0.5 {
		t.Errorf("expected max moon intensity 0.5, got %v", cfg.Lighting.MaxMoonIntensity)
	}
	if cfg.Lighting.Curve.Mode != "smooth" {
		t.Errorf("expected smooth curve, got %s", cfg.Lighting.Curve.Mode)
	}
	if len(cfg.Lighting.Curve.Keys) != 4 {
		t.Errorf("expected 4 default curve keys, got %d", len(cfg.Lighting.Curve.Keys))
	}

	// Graphics defaults
	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Headless {
		t.Error("expected headless to be false by default")
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultMatchesSimulatorDefaults(t *testing.T) {
	got, err := Default().Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	want := daynight.DefaultSettings()

	if got.TimeMultiplier != want.TimeMultiplier || got.StartHour != want.StartHour {
		t.Errorf("clock settings differ: got %+v", got)
	}
	if got.DayAmbientColor != want.DayAmbientColor || got.NightAmbientColor != want.NightAmbientColor {
		t.Errorf("ambient colors differ: got %v/%v", got.DayAmbientColor, got.NightAmbientColor)
	}
	for _, x := range []float64{-1, -0.2, 0, 0.1, 0.5, 1} {
		if g, w := got.Curve.Evaluate(x), want.Curve.Evaluate(x); g != w {
			t.Errorf("curve at %v: got %v, want %v", x, g, w)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "daycycle.yaml")

	yamlContent := `
simulation:
  time_multiplier: 3600
  start_hour: 6.5
  sunrise_hour: 6
  sunset_hour: 19

lighting:
  max_sun_intensity: 1.5
  max_moon_intensity: 0.25
  day_ambient: {r: 1, g: 0.9, b: 0.8}
  curve:
    mode: linear
    keys:
      - {time: 0, value: 0}
      - {time: 1, value: 1}

graphics:
  width: 1920
  height: 1080
  headless: true
  frames: 300

logging:
  level: "debug"
  log_file: "daycycle.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Simulation.TimeMultiplier != 3600 {
		t.Errorf("expected multiplier 3600, got %v", cfg.Simulation.TimeMultiplier)
	}
	if cfg.Simulation.StartHour != 6.5 {
		t.Errorf("expected start hour 6.5, got %v", cfg.Simulation.StartHour)
	}
	if cfg.Lighting.MaxSunIntensity != 1.5 {
		t.Errorf("expected max sun intensity 1.5, got %v", cfg.Lighting.MaxSunIntensity)
	}
	if cfg.Lighting.DayAmbient != (ColorConfig{R: 1, G: 0.9, B: 0.8}) {
		t.Errorf("unexpected day ambient %+v", cfg.Lighting.DayAmbient)
	}
	// Untouched values keep their defaults
	if cfg.Lighting.NightAmbient != Default().Lighting.NightAmbient {
		t.Errorf("night ambient should keep default, got %+v", cfg.Lighting.NightAmbient)
	}
	if len(cfg.Lighting.Curve.Keys) != 2 {
		t.Errorf("file curve keys should replace defaults, got %d keys", len(cfg.Lighting.Curve.Keys))
	}
	if !cfg.Graphics.Headless || cfg.Graphics.Frames != 300 {
		t.Errorf("expected headless with 300 frames, got %+v", cfg.Graphics)
	}
	if cfg.Logging.LogFile != "daycycle.log" {
		t.Errorf("expected log file 'daycycle.log', got %s", cfg.Logging.LogFile)
	}

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if got := settings.Curve.Evaluate(0.25); got != 0.25 {
		t.Errorf("linear curve at 0.25: got %v", got)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
simulation:
  time_multiplier: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSettingsInvalidCurve(t *testing.T) {
	cfg := Default()
	cfg.Lighting.Curve.Mode = "cubic"

	if _, err := cfg.Settings(); !errors.Is(err, daynight.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestSettingsWithoutCurve(t *testing.T) {
	cfg := Default()
	cfg.Lighting.Curve.Keys = nil

	settings, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if settings.Curve != nil {
		t.Error("expected nil curve when no keys are configured")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Simulation.SunriseHour = 21
	if err := cfg.Validate(); !errors.Is(err, daynight.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration for sunrise after sunset, got %v", err)
	}

	cfg = Default()
	cfg.Graphics.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero window width")
	}

	cfg.Graphics.Headless = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("window size should not matter headless: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "daycycle.yaml")
	if err := os.WriteFile(configPath, []byte("simulation:\n  start_hour: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find daycycle.yaml in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Simulation.SunsetHour = 21.25
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Simulation.SunsetHour != 21.25 {
		t.Errorf("expected sunset 21.25 after reload, got %v", loaded.Simulation.SunsetHour)
	}
}

func TestPersistWithoutFlags(t *testing.T) {
	path, err := Persist(Default())
	if err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	if path != "" {
		t.Errorf("expected nothing written without save flags, got %s", path)
	}
}

func TestPersistToPath(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "daycycle.yaml")
	*flagSaveConfig = target
	*flagSave = true
	defer func() {
		*flagSaveConfig = ""
		*flagSave = false
	}()

	cfg := Default()
	cfg.Simulation.TimeMultiplier = 60
	path, err := Persist(cfg)
	if err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	if path != target {
		t.Errorf("expected explicit path %s to win over --save, got %s", target, path)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Simulation.TimeMultiplier != 60 {
		t.Errorf("expected multiplier 60 after reload, got %v", loaded.Simulation.TimeMultiplier)
	}
}

func TestPersistToConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)
	t.Setenv("APPDATA", tmpDir)
	*flagSave = true
	defer func() { *flagSave = false }()

	path, err := Persist(Default())
	if err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	if want := filepath.Join(ConfigDir(), "config.yaml"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected saved config at %s: %v", path, err)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "zero multiplier freezes time",
			setup: func() {
				flagMultiplier.Set("0")
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.TimeMultiplier != 0 {
					t.Errorf("expected multiplier 0, got %v", cfg.Simulation.TimeMultiplier)
				}
			},
			teardown: func() {
				flagMultiplier = optionalFloat{}
			},
		},
		{
			name: "start hour flag",
			setup: func() {
				flagStartHour.Set("18.75")
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.StartHour != 18.75 {
					t.Errorf("expected start hour 18.75, got %v", cfg.Simulation.StartHour)
				}
			},
			teardown: func() {
				flagStartHour = optionalFloat{}
			},
		},
		{
			name: "headless with frames",
			setup: func() {
				*flagHeadless = true
				*flagFrames = 42
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Headless || cfg.Graphics.Frames != 42 {
					t.Errorf("expected headless with 42 frames, got %+v", cfg.Graphics)
				}
			},
			teardown: func() {
				*flagHeadless = false
				*flagFrames = 0
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestOptionalFloat(t *testing.T) {
	var f optionalFloat
	if f.String() != "" {
		t.Errorf("unset flag should print empty, got %q", f.String())
	}
	if err := f.Set("abc"); err == nil {
		t.Error("expected parse error")
	}
	if err := f.Set("-250"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !f.set || f.value != -250 || f.String() != "-250" {
		t.Errorf("unexpected flag state %+v", f)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
simulation:
  time_multiplier: 100
  start_hour: 9
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	flagMultiplier.Set("500")
	defer func() {
		*flagConfig = ""
		flagMultiplier = optionalFloat{}
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Multiplier from flag, start hour from file
	if cfg.Simulation.TimeMultiplier != 500 {
		t.Errorf("expected multiplier 500 from flag, got %v", cfg.Simulation.TimeMultiplier)
	}
	if cfg.Simulation.StartHour != 9 {
		t.Errorf("expected start hour 9 from file, got %v", cfg.Simulation.StartHour)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("simulation:\n  sunset_hour: 5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, daynight.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

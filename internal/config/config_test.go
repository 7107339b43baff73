package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/meshload/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Loader defaults
	if len(cfg.Loader.AssetDirs) != 1 || cfg.Loader.AssetDirs[0] != "." {
		t.Errorf("expected asset dirs [.], got %v", cfg.Loader.AssetDirs)
	}
	if cfg.Loader.StrictNumbers {
		t.Error("expected strict numbers to be false by default")
	}
	if cfg.Loader.Scale != 1 {
		t.Errorf("expected scale 1, got %f", cfg.Loader.Scale)
	}

	// Viewer defaults
	if cfg.Viewer.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewer.Height)
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestDefaultTransformIsIdentity(t *testing.T) {
	m := Default().Loader.Transform()
	if m != math.Identity() {
		t.Errorf("expected identity transform, got %v", m)
	}
}

func TestLoaderTransform(t *testing.T) {
	lc := LoaderConfig{
		Scale:       2,
		Rotation:    [3]float32{0, 0, 90},
		Translation: [3]float32{1, 2, 3},
	}

	got := lc.Transform().TransformVec3(math.Vec3{X: 1})
	want := math.Vec3{X: 1, Y: 4, Z: 3}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLoaderOptions(t *testing.T) {
	if !(LoaderConfig{StrictNumbers: true}).Options().StrictNumbers {
		t.Error("expected strict decoder options")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "meshload.yaml")

	yamlContent := `
loader:
  asset_dirs: ["assets", "mods"]
  strict_numbers: true
  scale: 0.01
  rotation: [-90, 0, 0]
  translation: [0, 1, 0]

viewer:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  wireframe: true

logging:
  level: "debug"
  log_file: "meshload.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(cfg.Loader.AssetDirs) != 2 || cfg.Loader.AssetDirs[1] != "mods" {
		t.Errorf("unexpected asset dirs %v", cfg.Loader.AssetDirs)
	}
	if !cfg.Loader.StrictNumbers {
		t.Error("expected strict numbers to be true")
	}
	if cfg.Loader.Scale != 0.01 {
		t.Errorf("expected scale 0.01, got %f", cfg.Loader.Scale)
	}
	if cfg.Loader.Rotation[0] != -90 {
		t.Errorf("expected rotation X -90, got %f", cfg.Loader.Rotation[0])
	}
	if cfg.Loader.Translation[1] != 1 {
		t.Errorf("expected translation Y 1, got %f", cfg.Loader.Translation[1])
	}

	if cfg.Viewer.Width != 1920 || cfg.Viewer.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if !cfg.Viewer.Fullscreen || cfg.Viewer.VSync || !cfg.Viewer.Wireframe {
		t.Errorf("unexpected viewer flags %+v", cfg.Viewer)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "meshload.log" {
		t.Errorf("expected log file 'meshload.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
viewer:
  width: not a number
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
	if err := loadFromFile(cfg, "/nonexistent/path/meshload.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
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

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "meshload.yaml")

	cfg := Default()
	cfg.Loader.Scale = 3
	cfg.Viewer.Wireframe = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Loader.Scale != 3 || !loaded.Viewer.Wireframe {
		t.Errorf("saved values not restored: %+v", loaded)
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
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "strict flag",
			setup: func() { *flagStrict = true },
			verify: func(cfg *Config) {
				if !cfg.Loader.StrictNumbers {
					t.Error("expected strict numbers with strict flag")
				}
			},
			teardown: func() { *flagStrict = false },
		},
		{
			name:  "scale flag",
			setup: func() { *flagScale = 0.5 },
			verify: func(cfg *Config) {
				if cfg.Loader.Scale != 0.5 {
					t.Errorf("expected scale 0.5, got %f", cfg.Loader.Scale)
				}
			},
			teardown: func() { *flagScale = 0 },
		},
		{
			name:  "assets flag",
			setup: func() { *flagAssetDir = "extra" },
			verify: func(cfg *Config) {
				dirs := cfg.Loader.AssetDirs
				if dirs[len(dirs)-1] != "extra" {
					t.Errorf("expected extra as last asset dir, got %v", dirs)
				}
			},
			teardown: func() { *flagAssetDir = "" },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Viewer.Width)
				}
				if cfg.Viewer.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Viewer.Height)
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

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "meshload.yaml")

	yamlContent := `
viewer:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewer.Height)
	}
}

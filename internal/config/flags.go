package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagStrict    = flag.Bool("strict", false, "Fail on malformed numeric fields")
	flagScale     = flag.Float64("scale", 0, "Uniform import scale")
	flagAssetDir  = flag.String("assets", "", "Additional asset directory (highest priority)")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagWireframe = flag.Bool("wireframe", false, "Start the viewer in wireframe mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagStrict {
		cfg.Loader.StrictNumbers = true
	}
	if *flagScale > 0 {
		cfg.Loader.Scale = float32(*flagScale)
	}
	if *flagAssetDir != "" {
		cfg.Loader.AssetDirs = append(cfg.Loader.AssetDirs, *flagAssetDir)
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
	if *flagWireframe {
		cfg.Viewer.Wireframe = true
	}
}

// meshtool is a CLI utility for inspecting OBJ meshes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/meshload/internal/assets"
	"github.com/Faultbox/meshload/internal/config"
	"github.com/Faultbox/meshload/internal/logger"
)

var flagQuiet = flag.Bool("quiet", false, "Disable all logging")

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagQuiet {
		logger.Nop()
	} else {
		// Decode statistics are printed as tables; keep per-mesh info logs
		// for -debug.
		level := "warn"
		if cfg.Logging.Level == "debug" {
			level = "debug"
		}
		if err := logger.Init(level, cfg.Logging.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	manager := assets.NewManager(cfg.Loader)
	defer manager.Close()

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		err = cmdInfo(os.Stdout, manager, args)
	case "dump":
		err = cmdDump(os.Stdout, manager, args)
	case "bounds":
		err = cmdBounds(os.Stdout, manager, args)
	case "config":
		err = cmdConfig(os.Stdout, cfg, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, usage)
		} else {
			logger.Error("command failed", zap.String("command", command), zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - Wavefront OBJ mesh utility

Usage:
  meshtool [flags] <command> [options]

Commands:
  info <file.obj>...           Show decode statistics
  dump [-n N] <file.obj>       Print output vertices and triangles
  bounds <file.obj>            Show the axis-aligned bounding box
  config [path]                Write the effective config as YAML
                               (default: user config directory)

Flags:
  -config <path>   Config file (default ./meshload.yaml)
  -assets <dir>    Additional asset directory
  -scale <s>       Uniform import scale
  -strict          Fail on malformed numeric fields
  -debug           Debug logging
  -quiet           No logging at all

Examples:
  meshtool info models/*.obj
  meshtool -scale 0.01 bounds props/barrel.obj
  meshtool dump -n 12 cube.obj
  meshtool -scale 0.01 -strict config ./meshload.yaml`)
}

// usageError is printed as is, without the "Error:" prefix.
type usageError string

func (e usageError) Error() string { return string(e) }

func cmdInfo(w io.Writer, manager *assets.Manager, args []string) error {
	if len(args) < 1 {
		return usageError("Usage: meshtool info <file.obj>...")
	}

	loaded := make([]*assets.Mesh, 0, len(args))
	var bar *progressbar.ProgressBar
	if len(args) > 1 {
		bar = progressbar.Default(int64(len(args)), "decoding")
		defer bar.Close()
	}

	var failed []error
	for _, name := range args {
		m, err := manager.LoadMesh(name)
		if bar != nil {
			bar.Add(1)
		}
		if err != nil {
			failed = append(failed, err)
			continue
		}
		loaded = append(loaded, m)
	}

	fmt.Fprintf(w, "%-32s %9s %7s %8s %8s %10s %10s %10s\n",
		"MESH", "POSITIONS", "UVS", "NORMALS", "FACES", "TRIANGLES", "VERTICES", "PARSE")
	for _, m := range loaded {
		fmt.Fprintf(w, "%-32s %9d %7d %8d %8d %10d %10d %10s\n",
			m.Name, m.Meta.Positions, m.Meta.UVs, m.Meta.Normals,
			m.Meta.Faces, m.Meta.Triangles, m.Meta.Vertices, m.Meta.ParseTime.Round(time.Microsecond))
	}

	return errors.Join(failed...)
}

func cmdDump(w io.Writer, manager *assets.Manager, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	limit := fs.Int("n", 0, "Limit output to N vertices (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return usageError("Usage: meshtool dump [-n N] <file.obj>")
	}

	m, err := manager.LoadMesh(fs.Arg(0))
	if err != nil {
		return err
	}

	vertices := m.Buffers.Vertices
	if *limit > 0 && *limit < len(vertices) {
		vertices = vertices[:*limit]
	}

	fmt.Fprintf(w, "# %s: %d vertices, %d indices\n", m.Name, len(m.Buffers.Vertices), len(m.Buffers.Indices))
	for i, v := range vertices {
		fmt.Fprintf(w, "v %d pos(%g %g %g) n(%g %g %g) uv(%g %g)\n", i,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.UV.X, v.UV.Y)
	}

	indices := m.Buffers.Indices
	for i := 0; i+2 < len(indices); i += 3 {
		if *limit > 0 && int(indices[i+2]) >= len(vertices) {
			break
		}
		fmt.Fprintf(w, "t %d %d %d\n", indices[i], indices[i+1], indices[i+2])
	}
	return nil
}

func cmdBounds(w io.Writer, manager *assets.Manager, args []string) error {
	if len(args) < 1 {
		return usageError("Usage: meshtool bounds <file.obj>")
	}

	m, err := manager.LoadMesh(args[0])
	if err != nil {
		return err
	}

	b := m.Bounds
	size := b.Size()
	center := b.Center()
	fmt.Fprintf(w, "Mesh:   %s\n", m.Name)
	fmt.Fprintf(w, "Min:    (%g, %g, %g)\n", b.Min.X, b.Min.Y, b.Min.Z)
	fmt.Fprintf(w, "Max:    (%g, %g, %g)\n", b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintf(w, "Size:   (%g, %g, %g)\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "Center: (%g, %g, %g)\n", center.X, center.Y, center.Z)
	fmt.Fprintf(w, "Radius: %g\n", b.Radius())
	return nil
}

func cmdConfig(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return usageError("Usage: meshtool config [path]")
	}

	if len(args) == 0 {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(w, "Config written to %s\n", config.UserConfigPath())
		return nil
	}

	if err := cfg.SaveTo(args[0]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(w, "Config written to %s\n", args[0])
	return nil
}

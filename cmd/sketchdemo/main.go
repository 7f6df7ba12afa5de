// Command sketchdemo exports a demo drawing through any registered backend.
//
// Usage:
//
//	sketchdemo [-config export.toml] [-backend svg] [-output sketch.svg]
//
// Settings come from the defaults, then the config file (TOML or YAML),
// then the flags that were given explicitly.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend"
	"github.com/gogpu/sketch/backend/dxf"
	"github.com/gogpu/sketch/backend/dxfstitch"
	"github.com/gogpu/sketch/backend/raster"
	_ "github.com/gogpu/sketch/backend/svg"
	"github.com/gogpu/sketch/geom"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sketchdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "export config file (.toml, .yaml or .yml)")
		list       = fs.Bool("list", false, "list registered backends and exit")
		verbose    = fs.Bool("v", false, "log debug output")
		flags      = DefaultConfig()
	)
	fs.StringVar(&flags.Backend, "backend", flags.Backend, "backend name")
	fs.StringVar(&flags.Output, "output", flags.Output, "output file")
	fs.IntVar(&flags.Width, "width", flags.Width, "canvas width")
	fs.IntVar(&flags.Height, "height", flags.Height, "canvas height")
	fs.StringVar(&flags.View, "view", flags.View, "xy, xz, yz, orthographic or perspective")
	fs.StringVar(&flags.PDF, "pdf", flags.PDF, "PDF file rendered by the DXF scripts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	sketch.SetLogger(logger)
	defer sketch.SetLogger(nil)

	if *list {
		_, err := fmt.Fprintln(stdout, strings.Join(backend.Backends(), "\n"))
		return err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = flags.Backend
		case "output":
			cfg.Output = flags.Output
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "view":
			cfg.View = flags.View
		case "pdf":
			cfg.PDF = flags.PDF
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := newBackend(cfg)
	if err != nil {
		return err
	}
	if c, ok := b.(io.Closer); ok {
		defer c.Close()
	}

	if err := export(b, cfg); err != nil {
		return err
	}
	out := cfg.OutputPath()
	if err := backend.Save(b, out); err != nil {
		return err
	}
	logger.Info("sketch saved", "backend", cfg.Backend, "output", out, "width", cfg.Width, "height", cfg.Height)
	return nil
}

// newBackend creates the configured backend. Backends with settings in
// Config are built directly, any other registered name through the
// registry.
func newBackend(cfg Config) (backend.Backend, error) {
	switch cfg.Backend {
	case "raster":
		bg, err := sketch.ParseColor(cfg.Background)
		if err != nil {
			return nil, err
		}
		return raster.New(raster.WithBackground(bg)), nil
	case "dxf":
		return dxf.New(dxf.WithFilename(cfg.DXFPath()), dxf.WithPDF(cfg.PDF)), nil
	case "dxf-stitched":
		return dxfstitch.New(dxfstitch.WithFilename(cfg.DXFPath()), dxfstitch.WithPDF(cfg.PDF)), nil
	default:
		return backend.NewBackend(cfg.Backend)
	}
}

// export draws the demo scene on b.
func export(b backend.Backend, cfg Config) error {
	tr, err := cfg.Transformer()
	if err != nil {
		return err
	}
	color, err := sketch.ParseColor(cfg.Color)
	if err != nil {
		return err
	}

	w, h := float64(cfg.Width), float64(cfg.Height)
	cad := strings.HasPrefix(cfg.Backend, "dxf")
	content := sketch.Shapes{scene(cad)}
	if cfg.Frame && !cad {
		content = append(content, frame(w, h))
	}
	return backend.Export(b, cfg.Width, cfg.Height, tr, content,
		sketch.WithColor(color),
		sketch.WithLineWidth(cfg.LineWidth),
		sketch.WithTransform2D(geom.Translate(w/2, h/2)),
	)
}

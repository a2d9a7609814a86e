package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/pixel-eraser-go/app"
	"github.com/soocke/pixel-eraser-go/config"
)

func main() {
	cfgPath := flag.String("config", "pixel-eraser.json", "path to a JSON or YAML config file")
	envPath := flag.String("env", ".env", "path to a dotenv file with PIXEL_ERASER_* overrides")
	in := flag.String("in", "", `input image path, or "screen" to capture the display`)
	out := flag.String("out", "", "output image path (overwritten)")
	mode := flag.String("mode", "", "selection mode: single or multi")
	method := flag.String("method", "", "inpaint method: telea or ns")
	radius := flag.Float64("radius", 0, "inpaint radius in pixels")
	dbg := flag.Bool("debug", false, "enable debug logging and memory stats")
	save := flag.Bool("save-config", false, "write the effective configuration back to -config before running")
	flag.Parse()

	// Base config from file, then environment, then explicit flags.
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config %s: %v\n", *cfgPath, err)
		os.Exit(2)
	}
	envVals, err := config.ReadEnvFile(*envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "env file %s: %v\n", *envPath, err)
		os.Exit(2)
	}
	cfg.ApplyEnv(config.EnvLookup(envVals))
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.InputPath = *in
		case "out":
			cfg.OutputPath = *out
		case "mode":
			cfg.Mode = *mode
		case "method":
			cfg.Method = *method
		case "radius":
			cfg.Radius = *radius
		case "debug":
			cfg.Debug = *dbg
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if *save {
		if err := cfg.Save(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "save config %s: %v\n", *cfgPath, err)
			os.Exit(2)
		}
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	application := app.NewApp(cfg, logger)
	if err := application.Run(context.Background()); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

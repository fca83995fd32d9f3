// Package main is the entry point for the meshview mesh viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/app"
	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Parse CLI flags first
	flags, err := config.ParseFlags("meshview", args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if flags.DumpConfig != "" {
		if err := cfg.SaveTo(flags.DumpConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "config written to %s\n", flags.DumpConfig)
		if flags.MeshPath() == "" {
			return 0
		}
	}

	// Initialize logger
	err = logger.InitWithOptions(logger.Options{
		Level:   cfg.Logging.Level,
		Console: true,
		File: logger.FileConfig{
			Path:       cfg.Logging.LogFile,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   true,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== meshview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Load the mesh
	path := flags.MeshPath()
	mesh, err := model.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		logger.Error("failed to load mesh", zap.Error(err))
		return 1
	}

	b := mesh.Bounds()
	logger.Info("mesh loaded",
		zap.String("path", path),
		zap.Int("vertices", len(mesh.Vertices())),
		zap.Int("faces", len(mesh.Faces())),
		zap.Int("edges", len(mesh.Edges())),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("radius", b.Radius()),
	)
	if mesh.Empty() {
		logger.Warn("mesh has no faces, nothing will be drawn", zap.String("path", path))
	}

	// Create and run the viewer
	a, err := app.New(cfg, mesh, path)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}

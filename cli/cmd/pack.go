// Package cmd provides CLI commands for the kiln binary.
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/kiln-build/kiln/assetgen"
	"github.com/kiln-build/kiln/build"
	"github.com/kiln-build/kiln/config"
	"github.com/kiln-build/kiln/log"
	"github.com/kiln-build/kiln/metrics"
)

// Exit codes for pack.
const (
	exitSuccess     = 0
	exitConfigError = 1
	exitIOError     = 2
)

// PackCommand returns the pack command, the only command that writes
// build output.
func PackCommand() *cli.Command {
	return &cli.Command{
		Name:  "pack",
		Usage: "Pack an asset directory into generated fragments and emitted files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to kiln.yaml",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Asset directory to pack",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output directory (overrides config)",
			},
			&cli.StringFlag{
				Name:  "build-id",
				Usage: "Build identifier for logs and metrics",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Suppress build logging",
			},
		},
		Action: packAction,
	}
}

func packAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitConfigError)
	}
	if out := c.String("out"); out != "" {
		cfg.OutputDir = out
	}

	buildID := c.String("build-id")
	if buildID == "" {
		buildID = fmt.Sprintf("build-%d", time.Now().Unix())
	}

	var logger *log.Logger
	if !c.Bool("quiet") {
		logger = log.NewLogger(buildID)
		logger.Sugar().Infof("packing %s into %s", c.String("dir"), cfg.OutputDir)
	}
	collector := metrics.NewCollector(buildID)

	pipeline := build.New(cfg, logger, collector)
	result, err := pipeline.Run(c.String("dir"))
	if err != nil {
		if errors.Is(err, assetgen.ErrConfig) {
			return cli.Exit(err.Error(), exitConfigError)
		}
		return cli.Exit(err.Error(), exitIOError)
	}

	if !c.Bool("quiet") {
		fmt.Fprintf(c.App.Writer, "packed %d modules (%d inlined, %d emitted, %d bytes) into %s\n",
			result.Stats.ModulesProcessed, result.Stats.ModulesInlined,
			result.Stats.AssetsEmitted, result.Stats.BytesEmitted, cfg.OutputDir)
	}
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.Default(), nil
}

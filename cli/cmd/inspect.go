package cmd

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/kiln-build/kiln/build"
	"github.com/kiln-build/kiln/iox"
	"github.com/kiln-build/kiln/manifest"
)

// InspectCommand returns the inspect command. Inspect is read-only: it
// decodes a build's manifest cache record and renders it as YAML.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Render the manifest of a previous build",
		ArgsUsage: "<output-dir>",
		Action:    inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("output-dir required", exitConfigError)
	}
	outDir := c.Args().First()

	f, err := os.Open(filepath.Join(outDir, build.ManifestBin))
	if err != nil {
		return cli.Exit("no manifest found in "+outDir, exitIOError)
	}
	defer iox.DiscardClose(f)

	man, err := manifest.Decode(f)
	if err != nil {
		return cli.Exit(err.Error(), exitIOError)
	}
	return man.EncodeYAML(c.App.Writer)
}

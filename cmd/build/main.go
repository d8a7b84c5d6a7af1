package main

import (
	"os"

	"app-catalog-be/internal/bootstrap"
	"app-catalog-be/internal/config"

	"github.com/fatih/color"
)

// Standalone full rebuild of the static site. Unlike the in-request rebuild,
// a failure here fails the whole run.
func main() {
	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)

	color.Cyan("Rebuilding static site into %s ...", cfg.Site.PublicDir)

	if err := container.StaticService.RebuildAll(); err != nil {
		color.Red("Rebuild failed: %v", err)
		os.Exit(1)
	}

	color.Green("Rebuild complete.")
}

// Package main provides the entry point for the body damage viewer.
package main

import (
	"flag"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"bodymap/assets"
	"bodymap/internal/asset"
	"bodymap/internal/inspect"
	"bodymap/internal/taxonomy"
	"bodymap/internal/version"
	"bodymap/internal/view"
	"bodymap/ui/mainwindow"
	"bodymap/ui/prefs"
)

func main() {
	var (
		reportPath = flag.String("report", "", "inspection report JSON to load at startup")
		diagramURL = flag.String("diagrams", "", "base URL for diagram assets (default: built-in set)")
		readOnly   = flag.Bool("readonly", false, "disable part selection")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	log.Info().Str("version", version.String()).Msg("starting body map viewer")

	appPrefs := prefs.Load()

	var loader asset.Loader
	if *diagramURL != "" {
		loader = asset.NewHTTPLoader(*diagramURL, log)
	} else {
		loader = asset.NewFSLoader(assets.Diagrams())
	}

	lang := taxonomy.Language(appPrefs.String(prefs.KeyLanguage, string(taxonomy.LangEN)))
	cfg := view.Config{
		ReadOnly:   *readOnly,
		EnableZoom: appPrefs.Bool(prefs.KeyEnableZoom, true),
		EnablePan:  appPrefs.Bool(prefs.KeyEnablePan, true),
		Language:   lang,
	}
	ctrl := view.NewController(loader, cfg, log)

	if *reportPath != "" {
		data, err := os.ReadFile(*reportPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *reportPath).Msg("reading inspection report")
		}
		report, err := inspect.DecodeReport(data)
		if err != nil {
			log.Fatal().Err(err).Msg("decoding inspection report")
		}
		ctrl.SetRecord(report.Unify())
	}

	fyneApp := fyneapp.New()
	win := mainwindow.New(fyneApp, ctrl, appPrefs, log)
	win.ShowInitialView()
	win.ShowAndRun()
}

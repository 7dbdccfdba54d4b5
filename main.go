// helmdesk - the Morgan Forge Regattas support chat widget for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/morganforge/helmdesk-tui/internal/config"
	"github.com/morganforge/helmdesk-tui/internal/locale"
	hlog "github.com/morganforge/helmdesk-tui/internal/log"
	"github.com/morganforge/helmdesk-tui/internal/session"
	"github.com/morganforge/helmdesk-tui/internal/storage"
	"github.com/morganforge/helmdesk-tui/internal/ui/styles"
	"github.com/morganforge/helmdesk-tui/internal/ui/widget"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to config file (default ~/.helmdesk/config.toml)")
		languageTag = flag.String("language", "", "conversation language tag (en, es, fr, de, it, ru)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("helmdesk %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: helmdesk needs an interactive terminal")
		os.Exit(1)
	}

	// Configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides file and environment.
	if *languageTag != "" {
		cfg.Widget.Language = *languageTag
	}

	// Logging goes to a file; the terminal belongs to the widget.
	logPath, err := cfg.LogPath()
	if err == nil {
		if w, werr := hlog.FileWriter(logPath); werr == nil {
			defer w.Close()
			hlog.Configure(hlog.Config{Level: cfg.Log.Level, Output: w})
		}
	}
	logger := hlog.WithComponent("main")

	// Transcript archive, best-effort.
	var archive *storage.Archive
	if cfg.Archive.Enabled {
		if path, perr := cfg.ArchivePath(); perr == nil {
			if arc, aerr := storage.Open(path); aerr == nil {
				archive = arc
				defer archive.Close()
			} else {
				logger.Warn().Err(aerr).Msg("transcript archive unavailable")
			}
		}
	}

	// Conversation
	ctrl := session.NewController()
	ctrl.Start(session.Config{
		Language:       locale.Match(cfg.Widget.Language),
		RemoteEndpoint: cfg.Remote.Endpoint,
		RemoteKey:      cfg.Remote.Key,
	})

	theme := styles.NewTheme(cfg.Widget.Theme, cfg.Widget.PrimaryColor)
	m := widget.New(ctrl, theme, archive)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running helmdesk: %v\n", err)
		os.Exit(1)
	}
}

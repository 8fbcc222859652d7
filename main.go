// revitassist - Trợ lý Xây dựng & BIM cho kỹ sư Viettel Construction.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vccbim/revitassist-tui/internal/cli"
	"github.com/vccbim/revitassist-tui/internal/config"
	"github.com/vccbim/revitassist-tui/internal/gemini"
	"github.com/vccbim/revitassist-tui/internal/logging"
	"github.com/vccbim/revitassist-tui/internal/speech"
	"github.com/vccbim/revitassist-tui/internal/ui/chat"
	"github.com/vccbim/revitassist-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	inv := cli.Parse(os.Args[1:])

	switch inv.Command {
	case cli.CmdVersion:
		fmt.Printf("revitassist %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	case cli.CmdHelp:
		cli.Usage(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lỗi cấu hình: %v\n", err)
		os.Exit(1)
	}
	if model := inv.Args.Flag("model"); model != "" {
		cfg.Gemini.Model = model
	}

	logPath, _ := cfg.LogPath()
	log := logging.NewOrNop(logPath)
	defer log.Sync()

	client := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		BaseURL:     cfg.Gemini.BaseURL,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Timeout(),
	}, log)

	switch inv.Command {
	case cli.CmdAsk:
		if err := cli.Ask(context.Background(), client, inv, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Lỗi: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdChat:
		if err := cli.Chat(context.Background(), client, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Lỗi: %v\n", err)
			os.Exit(1)
		}
	default:
		runTUI(cfg, client, inv, log)
	}
}

// runTUI starts the full-screen shell.
func runTUI(cfg *config.Config, client *gemini.Client, inv cli.Invocation, log *zap.Logger) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Không có TTY: dùng 'revitassist chat' hoặc 'revitassist ask'.")
		os.Exit(1)
	}

	showSidebar := cfg.UI.ShowSidebar && !inv.Args.BoolFlag("no-sidebar")
	recognizer := speech.NewCommandRecognizer(cfg.Speech.Command, log)
	theme := styles.NewTheme()

	m := chat.New(client, recognizer, theme, log, showSidebar)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Live-reload notice when config.toml changes under the session
	if path, err := config.Path(); err == nil {
		if watcher, err := config.Watch(path, log, func(*config.Config) {
			p.Send(chat.ConfigReloadedMsg{})
		}); err == nil {
			defer watcher.Close()
		} else {
			log.Warn("config watch unavailable", zap.Error(err))
		}
	}

	if _, err := p.Run(); err != nil {
		log.Error("tui crashed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Lỗi giao diện: %v\n", err)
		os.Exit(1)
	}
}

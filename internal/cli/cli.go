// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the plain command-line surface of the
// assistant: one-shot questions, a line-based chat loop for terminals
// that cannot run the TUI, and the usual help/version plumbing.
package cli

import (
	"fmt"
	"io"
)

// Command identifies what the process should do after parsing args.
type Command int

const (
	// CmdTUI launches the full-screen shell (the default).
	CmdTUI Command = iota
	// CmdAsk answers one question and exits.
	CmdAsk
	// CmdChat runs the line-based chat loop.
	CmdChat
	// CmdVersion prints version info.
	CmdVersion
	// CmdHelp prints usage.
	CmdHelp
)

// Invocation is the parsed command line.
type Invocation struct {
	Command  Command
	Question string
	Args     *ArgParser
}

// Parse maps os.Args[1:] onto a command.
func Parse(raw []string) Invocation {
	args := NewArgParser(raw)

	switch args.Subcommand() {
	case "ask":
		return Invocation{
			Command:  CmdAsk,
			Question: args.JoinPositionalFrom(1),
			Args:     args,
		}
	case "chat":
		return Invocation{Command: CmdChat, Args: args}
	case "version":
		return Invocation{Command: CmdVersion, Args: args}
	case "help":
		return Invocation{Command: CmdHelp, Args: args}
	}

	if args.BoolFlag("version") {
		return Invocation{Command: CmdVersion, Args: args}
	}
	if args.BoolFlag("help") || args.BoolFlag("h") {
		return Invocation{Command: CmdHelp, Args: args}
	}
	return Invocation{Command: CmdTUI, Args: args}
}

// Usage writes the command overview.
func Usage(w io.Writer) {
	fmt.Fprint(w, `revitassist - Trợ lý Xây dựng & BIM (Viettel Construction)

Usage:
  revitassist              Mở giao diện chat toàn màn hình
  revitassist ask <câu hỏi>  Hỏi một câu và in trả lời
  revitassist chat         Chat dạng dòng lệnh (không cần TTY đầy đủ)
  revitassist version      In phiên bản
  revitassist help         In hướng dẫn này

Flags:
  --model NAME    Dùng model Gemini khác (mặc định theo config)
  --plain         Tắt định dạng markdown khi in trả lời
  --no-sidebar    Mở TUI không kèm khung tài liệu

Environment:
  GEMINI_API_KEY       API key cho Gemini
  REVITASSIST_MODEL    Ghi đè model

Config: ~/.revitassist/config.toml
`)
}

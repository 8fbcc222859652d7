// args.go - Unified argument parsing for the revitassist CLI.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "strings"

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser handles the flag formats used by the CLI consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
//   - Subcommands: first positional argument
type ArgParser struct {
	subcommand string
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
	raw        []string
}

// NewArgParser parses raw arguments into flags and positionals.
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
		raw:        raw,
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") {
			if strings.Contains(arg, "=") {
				parts := strings.SplitN(arg, "=", 2)
				name := strings.TrimLeft(parts[0], "-")
				value := parts[1]
				if value == "true" || value == "false" {
					parser.boolFlags[name] = value == "true"
				} else {
					parser.flags[name] = value
				}
				i++
				continue
			}

			name := strings.TrimLeft(arg, "-")
			if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				parser.flags[name] = raw[i+1]
				i += 2
			} else {
				parser.boolFlags[name] = true
				i++
			}
		} else {
			parser.positional = append(parser.positional, arg)
			i++
		}
	}

	if len(parser.positional) > 0 {
		parser.subcommand = parser.positional[0]
	}
	return parser
}

// Subcommand returns the first positional argument, or "".
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns a string flag value, or "".
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// FlagOrDefault returns a string flag value with a fallback.
func (p *ArgParser) FlagOrDefault(name, defaultValue string) string {
	if v, ok := p.flags[name]; ok {
		return v
	}
	return defaultValue
}

// BoolFlag reports whether a boolean flag was set.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// HasFlag reports whether a flag was provided in either form.
func (p *ArgParser) HasFlag(name string) bool {
	if _, ok := p.flags[name]; ok {
		return true
	}
	_, ok := p.boolFlags[name]
	return ok
}

// Positional returns the positional argument at index, or "".
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns positional arguments from index onward.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return nil
	}
	return p.positional[index:]
}

// JoinPositionalFrom joins positional arguments into one string, the
// usual shape for a question typed without quotes.
func (p *ArgParser) JoinPositionalFrom(index int) string {
	return strings.TrimSpace(strings.Join(p.PositionalFrom(index), " "))
}

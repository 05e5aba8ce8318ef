/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cli implements the nmstatus command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/carverauto/nmstatus/pkg/config"
	"github.com/carverauto/nmstatus/pkg/logger"
	"github.com/carverauto/nmstatus/pkg/nm"
	"github.com/carverauto/nmstatus/pkg/report"
)

const (
	DefaultConfigPath = "/etc/nmstatus/nmstatus.json"

	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// SubcommandHandler defines the interface for parsing subcommand flags.
type SubcommandHandler interface {
	Parse(args []string, cfg *CmdConfig) error
}

// VersionHandler handles flags for the version subcommand.
type VersionHandler struct{}

// Parse accepts no flags or arguments.
func (VersionHandler) Parse(args []string, _ *CmdConfig) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing version flags: %w", err)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %v", errUnexpectedArgs, fs.Args())
	}

	return nil
}

// StatusHandler handles flags for the status subcommand.
type StatusHandler struct{}

// Parse processes the command-line arguments for the status subcommand.
func (StatusHandler) Parse(args []string, cfg *CmdConfig) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	format := fs.String("format", cfg.Format, "output format: json or text")
	color := fs.Bool("color", cfg.Color, "style text output")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing status flags: %w", err)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %v", errUnexpectedArgs, fs.Args())
	}

	if err := checkFormat(*format); err != nil {
		return err
	}

	cfg.Format = *format
	cfg.Color = *color

	return nil
}

// checkFormat rejects output formats other than json and text; empty defers
// to the config file.
func checkFormat(format string) error {
	switch format {
	case "", nm.FormatJSON, nm.FormatText:
		return nil
	default:
		return fmt.Errorf("%w: %q", nm.ErrUnknownFormat, format)
	}
}

// ParseFlags parses global flags, then the subcommand and its flags.
func ParseFlags(args []string) (*CmdConfig, error) {
	fs := flag.NewFlagSet("nmstatus", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	help := fs.Bool("help", false, "show help message")
	configFile := fs.String("config", DefaultConfigPath, "path to config file")
	format := fs.String("format", "", "output format: json or text")
	debug := fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &CmdConfig{Help: true}, nil
		}

		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := &CmdConfig{
		Help:       *help,
		ConfigFile: *configFile,
		Format:     *format,
		Debug:      *debug,
		Args:       fs.Args(),
	}

	if cfg.Help {
		return cfg, nil
	}

	if err := checkFormat(cfg.Format); err != nil {
		return cfg, err
	}

	if len(cfg.Args) == 0 {
		return cfg, errMissingCommand
	}

	cfg.SubCmd = cfg.Args[0]

	subcommands := map[string]SubcommandHandler{
		"version": VersionHandler{},
		"status":  StatusHandler{},
	}

	handler, exists := subcommands[cfg.SubCmd]
	if !exists {
		return cfg, fmt.Errorf("%w: %q", errUnknownCommand, cfg.SubCmd)
	}

	if err := handler.Parse(cfg.Args[1:], cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// App wires configuration, logging and the collector for one invocation.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewSource builds the status source; nil uses nm.NewCollectorFromConfig.
	NewSource func(log logger.Logger, cfg *nm.Config) (StatusSource, error)
}

func defaultSource(log logger.Logger, cfg *nm.Config) (StatusSource, error) {
	return nm.NewCollectorFromConfig(log, cfg)
}

// Run executes args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	cmd, err := ParseFlags(args)
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n\n", err)
		ShowHelp(a.Stderr)

		return exitUsage
	}

	if cmd.Help {
		ShowHelp(a.Stdout)
		return exitOK
	}

	if err := a.execute(ctx, cmd); err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return exitError
	}

	return exitOK
}

func (a *App) execute(ctx context.Context, cmd *CmdConfig) error {
	nmCfg, log, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	newSource := a.NewSource
	if newSource == nil {
		newSource = defaultSource
	}

	source, err := newSource(log, nmCfg)
	if err != nil {
		return err
	}

	switch cmd.SubCmd {
	case "version":
		v, err := source.Version(ctx)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(a.Stdout, v)

		return err
	default:
		v, err := source.Status(ctx)
		if err != nil {
			return err
		}

		return a.render(v, nmCfg.Format, cmd.Color)
	}
}

// loadConfig reads the config file and environment, then applies the
// command-line overrides.
func loadConfig(ctx context.Context, cmd *CmdConfig) (*nm.Config, logger.Logger, error) {
	nmCfg := nm.DefaultConfig()

	if err := config.NewConfig(nil).LoadAndValidate(ctx, cmd.ConfigFile, nmCfg); err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Format != "" {
		nmCfg.Format = cmd.Format
	}

	if err := nmCfg.Validate(); err != nil {
		return nil, nil, err
	}

	if _, err := nmCfg.Normalize(); err != nil {
		return nil, nil, err
	}

	if cmd.Debug {
		nmCfg.Logging.Debug = true
	}

	log, err := logger.NewComponentLogger("nmstatus", nmCfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	return nmCfg, log, nil
}

func (a *App) render(v report.Value, format string, color bool) error {
	if format == nm.FormatText {
		_, err := io.WriteString(a.Stdout, report.NewTextRenderer(color).Render(v))
		return err
	}

	data, err := report.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	_, err = fmt.Fprintf(a.Stdout, "%s\n", data)

	return err
}

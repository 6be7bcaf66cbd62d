// pattern: Imperative Shell
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"twoface/internal/cli"
	"twoface/internal/config"
	"twoface/internal/events"
	"twoface/internal/instance"
	"twoface/internal/logging"
	"twoface/internal/tui"
)

var version = "dev"

func main() {
	// Stop parsing flags after the first non-flag arg (the subcommand),
	// so that --help after a subcommand is handled by the subcommand.
	flag.CommandLine.SetInterspersed(false)

	configDir := flag.StringP("config-dir", "c", "", "config directory (default: ~/.config/twoface)")

	// Override flag.Usage before Parse so --help uses the CLI app's help
	flag.Usage = func() {
		app := cli.BuildApp(version, *configDir)
		app.PrintHelp(os.Stderr)
		flag.PrintDefaults()
	}

	flag.Parse()

	app := cli.BuildApp(version, *configDir)

	if app.Execute(flag.Args()) {
		runTUI(*configDir)
	}
}

// logConfig returns the log manager settings for a data directory.
func logConfig(dataDir, level string) logging.Config {
	return logging.Config{
		FilePath:       filepath.Join(dataDir, "twoface.log"),
		MaxSizeMB:      10,
		MaxBackups:     3,
		MaxAgeDays:     7,
		ChannelBufSize: 1000,
		Level:          level,
	}
}

// runTUI launches the interactive client.
func runTUI(configDir string) {
	cfg, err := cli.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}

	dataDir := cli.ResolveDataDir(configDir)

	// Acquire single-instance lock
	fl, err := instance.Lock(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer instance.Cleanup(dataDir, fl)

	logManager, err := logging.NewManager(logConfig(dataDir, cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("application starting", "version", version, "windows", len(cfg.Layout.Windows))

	if err := instance.WritePID(dataDir); err != nil {
		appLogger.Error("failed to write pid file", "error", err)
	}

	configPath := config.Path(configDir)
	model := tui.NewModel(&cfg, configPath, logManager, logManager.Entries())
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := config.NewWatcher(configPath, logManager.For("config"))
	if err != nil {
		appLogger.Warn("config hot reload disabled", "error", err)
	} else {
		go func() {
			err := watcher.Run(ctx, func(c config.Config) {
				p.Send(events.ConfigReloadedMsg{Config: c})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				appLogger.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		appLogger.Error("application exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	appLogger.Info("application stopped")
}

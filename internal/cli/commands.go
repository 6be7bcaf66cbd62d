// pattern: Imperative Shell
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/creack/pty"
	flag "github.com/spf13/pflag"

	"twoface/internal/config"
	"twoface/internal/instance"
)

// ResolveDataDir returns the data directory for lock, pid and log files.
// If configDir is specified, uses that; otherwise uses ~/.config/twoface.
func ResolveDataDir(configDir string) string {
	if configDir != "" {
		return configDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "twoface")
	}
	return filepath.Join(home, ".config", "twoface")
}

// LoadConfig loads the configuration from configDir or the default location.
func LoadConfig(configDir string) (config.Config, error) {
	if configDir != "" {
		return config.LoadFromDir(configDir)
	}
	return config.Load()
}

// terminalSize reads the size of the terminal attached to stdout.
var terminalSize = func() (int, int, error) {
	return pty.Getsize(os.Stdout)
}

// BuildApp creates and configures the CLI application with all commands and groups.
func BuildApp(version string, configDir string) *App {
	app := NewApp(version)

	app.AddCommand(&Command{
		Name:    "replay",
		Summary: "Feed a scripted resize burst through the debouncer",
		Usage:   "Usage: twoface replay <script.yaml> [--verbose]",
		Run: func(args []string) error {
			fs := flag.NewFlagSet("replay", flag.ContinueOnError)
			verbose := fs.BoolP("verbose", "v", false, "print window geometry after every pass")
			if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
				fmt.Fprintf(os.Stderr, "Usage: twoface replay <script.yaml> [--verbose]\n")
				os.Exit(1)
			}
			cfg := mustLoadConfig(configDir)
			script, err := LoadScript(fs.Arg(0))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if err := runReplay(os.Stdout, cfg, script, *verbose); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return nil
		},
	})

	app.AddCommand(&Command{
		Name:    "status",
		Summary: "Report whether a client is running",
		Usage:   "Usage: twoface status",
		Run: func(args []string) error {
			return runStatusCommand(os.Stdout, ResolveDataDir(configDir))
		},
	})

	app.AddCommand(&Command{
		Name:    "cleanup",
		Summary: "Remove stale lock and pid files",
		Usage:   "Usage: twoface cleanup",
		Run: func(args []string) error {
			return runCleanupCommand(configDir)
		},
	})

	app.AddCommand(&Command{
		Name:    "version",
		Summary: "Print version and exit",
		Usage:   "Usage: twoface version",
		Run: func(args []string) error {
			fmt.Println(version)
			return nil
		},
	})

	layoutGroup := app.AddGroup("layout", "Inspect the configured layout")
	RegisterLayoutCommands(layoutGroup, configDir)

	return app
}

func mustLoadConfig(configDir string) config.Config {
	cfg, err := LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// runStatusCommand prints whether an instance holds the lock for dataDir.
func runStatusCommand(w io.Writer, dataDir string) error {
	running, pid, err := instance.Running(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	switch {
	case !running:
		fmt.Fprintln(w, "No twoface instance is running.")
	case pid > 0:
		fmt.Fprintf(w, "twoface is running (pid %d).\n", pid)
	default:
		fmt.Fprintln(w, "twoface is running.")
	}
	return nil
}

// runCleanupCommand removes stale lock and pid files from a crashed instance.
func runCleanupCommand(configDir string) error {
	dataDir := ResolveDataDir(configDir)

	// Try to acquire the lock to verify no instance is actually running
	fl, err := instance.Lock(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: a twoface instance appears to be running. Stop it first.\n")
		os.Exit(1)
	}
	// We got the lock; no instance is running. Clean up and release.
	instance.Cleanup(dataDir, fl)
	fmt.Println("Cleaned up stale lock and pid files.")
	return nil
}

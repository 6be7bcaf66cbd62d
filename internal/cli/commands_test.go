// pattern: Imperative Shell
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"twoface/internal/instance"
)

func TestBuildApp_VersionCommand_PrintsVersion(t *testing.T) {
	app := BuildApp("1.2.3", "")

	// Find the version command
	versionCmd, ok := app.commands["version"]
	if !ok {
		t.Fatal("version command not registered")
	}

	// Capture stdout
	oldStdout := os.Stdout
	defer func() { os.Stdout = oldStdout }()

	r, w, _ := os.Pipe()
	os.Stdout = w

	err := versionCmd.Run(nil)

	w.Close()
	buf := &bytes.Buffer{}
	buf.ReadFrom(r)
	os.Stdout = oldStdout

	if err != nil {
		t.Errorf("version command returned error: %v", err)
	}

	output := buf.String()
	if output != "1.2.3\n" {
		t.Errorf("version command output = %q, want \"1.2.3\\n\"", output)
	}
}

func TestBuildApp_NoArgs_ReturnsTrueForTUI(t *testing.T) {
	app := BuildApp("1.0.0", "")
	result := app.Execute(nil)
	if !result {
		t.Errorf("Execute(nil) returned %v, want true", result)
	}
}

func TestBuildApp_RegistersCommands(t *testing.T) {
	app := BuildApp("1.0.0", "")

	for _, name := range []string{"replay", "status", "cleanup", "version"} {
		if _, ok := app.commands[name]; !ok {
			t.Errorf("%s command not registered", name)
		}
	}
	group, ok := app.groups["layout"]
	if !ok {
		t.Fatal("layout group not registered")
	}
	for _, name := range []string{"show", "check", "preview"} {
		if _, ok := group.Commands[name]; !ok {
			t.Errorf("layout %s command not registered", name)
		}
	}
}

func TestBuildApp_LayoutShow_UsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	content := "layout:\n  rows: 10\n  cols: 20\n  windows:\n    - {id: solo, rows: 10, cols: 20}\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	app := BuildApp("1.0.0", dir)

	oldStdout := os.Stdout
	defer func() { os.Stdout = oldStdout }()
	r, w, _ := os.Pipe()
	os.Stdout = w

	result := app.Execute([]string{"layout", "show"})

	w.Close()
	buf := &bytes.Buffer{}
	buf.ReadFrom(r)
	os.Stdout = oldStdout

	if result {
		t.Error("Execute(layout show) returned true, want false")
	}
	if !strings.Contains(buf.String(), "solo") || !strings.Contains(buf.String(), "10x20") {
		t.Errorf("layout show output missing configured layout:\n%s", buf.String())
	}
}

func TestResolveDataDir(t *testing.T) {
	if got := ResolveDataDir("/tmp/custom"); got != "/tmp/custom" {
		t.Errorf("ResolveDataDir(custom) = %q, want /tmp/custom", got)
	}
	if got := ResolveDataDir(""); !strings.HasSuffix(got, filepath.Join(".config", "twoface")) {
		t.Errorf("ResolveDataDir(\"\") = %q, want suffix .config/twoface", got)
	}
}

func TestLoadConfig_FromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: latte\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Theme != "latte" {
		t.Errorf("Theme = %q, want latte", cfg.Theme)
	}
}

func TestRunStatusCommand(t *testing.T) {
	dir := t.TempDir()

	buf := &bytes.Buffer{}
	if err := runStatusCommand(buf, dir); err != nil {
		t.Fatalf("runStatusCommand() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No twoface instance") {
		t.Errorf("status without lock = %q", buf.String())
	}

	fl, err := instance.Lock(dir)
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	defer instance.Cleanup(dir, fl)
	if err := instance.WritePID(dir); err != nil {
		t.Fatalf("WritePID() error = %v", err)
	}

	buf.Reset()
	if err := runStatusCommand(buf, dir); err != nil {
		t.Fatalf("runStatusCommand() error = %v", err)
	}
	if !strings.Contains(buf.String(), "is running (pid") {
		t.Errorf("status with lock = %q", buf.String())
	}
}

// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate keeps config lookups away from the developer's home and moves
// the test into an empty working directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, env := range []string{
		"TASKER_SNAPSHOT", "TASKER_LOG_LEVEL", "TASKER_LOG_FORMAT",
		"TASKER_LOG_TIMESTAMPS", "TASKER_LOG_CALLER", "TASKER_LOG_DIR", "TASKER_LOG_TO_FILE",
	} {
		t.Setenv(env, "")
	}
	wd := t.TempDir()
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	return wd
}

func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := RunWithIO(context.Background(), args, IO{
		In:  strings.NewReader(input),
		Out: &stdout,
		Err: &stderr,
	})
	return stdout.String(), stderr.String(), err
}

// TestRun tests the main entry point.
func TestRun(t *testing.T) {
	isolate(t)

	t.Run("shows help with --help flag", func(t *testing.T) {
		out, _, err := run(t, "", "--help")
		if err != nil {
			t.Fatalf("expected no error with --help, got %v", err)
		}
		if !strings.Contains(out, "Usage:") {
			t.Errorf("help output missing usage: %q", out)
		}
	})

	t.Run("shows help with -h flag", func(t *testing.T) {
		if _, _, err := run(t, "", "-h"); err != nil {
			t.Errorf("expected no error with -h, got %v", err)
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		out, _, err := run(t, "", "help")
		if err != nil {
			t.Fatalf("expected no error with help command, got %v", err)
		}
		if !strings.Contains(out, "-snapshot") {
			t.Errorf("help should list config flags, got %q", out)
		}
	})

	t.Run("shows version with -v flag", func(t *testing.T) {
		out, _, err := run(t, "", "-v")
		if err != nil {
			t.Fatalf("expected no error with -v, got %v", err)
		}
		if out != "tasker version "+Version+"\n" {
			t.Errorf("version output: got %q", out)
		}
	})

	t.Run("version command", func(t *testing.T) {
		out, _, err := run(t, "", "version")
		if err != nil || !strings.HasPrefix(out, "tasker version") {
			t.Errorf("version command: out=%q err=%v", out, err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		_, stderr, err := run(t, "", "unknown-command")
		if err == nil {
			t.Fatal("expected error for unknown command, got nil")
		}
		if !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
		if !strings.Contains(stderr, "Unknown command: unknown-command") {
			t.Errorf("stderr should name the command, got %q", stderr)
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		_, _, err := run(t, "", "-log-level", "loud", "version")
		if err == nil {
			t.Error("expected error for invalid log level")
		}
	})
}

func TestReplCommand(t *testing.T) {
	wd := isolate(t)

	input := strings.Join([]string{
		"1", "Buy milk", "2 liters", "high",
		"6", "",
		"4", "Buy milk",
		"7", "",
		"5",
	}, "\n") + "\n"

	out, _, err := run(t, input)
	if err != nil {
		t.Fatalf("repl: %v", err)
	}
	if !strings.HasPrefix(out, "1: Add Task\n") {
		t.Errorf("repl should start with the menu, got %q", out)
	}
	for _, want := range []string{"Data stored successfully", `Task "Buy milk" removed`, "Data loaded successfully", "Buy milk | High |"} {
		if !strings.Contains(out, want) {
			t.Errorf("repl output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(wd, "tasks.json")); err != nil {
		t.Errorf("default snapshot not written to working directory: %v", err)
	}
}

func TestReplCommandSnapshotFlag(t *testing.T) {
	wd := isolate(t)

	out, _, err := run(t, "1\na\nb\nlow\n6\n\n", "-snapshot", "custom.json")
	if err != nil {
		t.Fatalf("repl: %v", err)
	}
	if !strings.Contains(out, "custom.json]") {
		t.Errorf("save prompt should offer the configured snapshot, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(wd, "custom.json")); err != nil {
		t.Errorf("snapshot flag ignored: %v", err)
	}
}

func TestReplCommandSessionLog(t *testing.T) {
	wd := isolate(t)
	logDir := filepath.Join(wd, "logs")

	if _, _, err := run(t, "9\n", "-log-to-file", "-log-dir", logDir); err != nil {
		t.Fatalf("repl: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(logDir, "*", "*.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one session log, got %v", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "unrecognized command") {
		t.Errorf("session log missing debug entry: %s", data)
	}
}

func TestValidateCommand(t *testing.T) {
	wd := isolate(t)

	good := filepath.Join(wd, "good.json")
	goodJSON := `[{"name":"a","description":"b","priority":"Medium","add_time":"2024-03-05T14:07:09Z"}]`
	if err := os.WriteFile(good, []byte(goodJSON), 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(wd, "bad.json")
	badJSON := `[{"name":"a","description":"b","priority":"Urgent","add_time":"2024-03-05T14:07:09Z"}]`
	if err := os.WriteFile(bad, []byte(badJSON), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("valid file", func(t *testing.T) {
		out, _, err := run(t, "", "validate", good)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		if !strings.Contains(out, "ok (1 tasks)") {
			t.Errorf("validate output: got %q", out)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		out, _, err := run(t, "", "validate", good, bad)
		if err == nil {
			t.Fatal("expected error for invalid snapshot")
		}
		if !strings.Contains(err.Error(), "1 of 2") {
			t.Errorf("error should count failures, got %v", err)
		}
		if !strings.Contains(out, "[0].priority") {
			t.Errorf("validate should report the failing field, got %q", out)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		if _, _, err := run(t, "", "validate"); err == nil {
			t.Error("expected error without files")
		}
	})
}

func TestConfigCommand(t *testing.T) {
	isolate(t)

	t.Run("example", func(t *testing.T) {
		out, _, err := run(t, "", "config")
		if err != nil {
			t.Fatalf("config: %v", err)
		}
		if !strings.Contains(out, "snapshot_file") {
			t.Errorf("example config missing snapshot_file: %q", out)
		}
	})

	t.Run("show", func(t *testing.T) {
		t.Setenv("TASKER_LOG_LEVEL", "debug")
		out, _, err := run(t, "", "-log-format", "json", "config", "show")
		if err != nil {
			t.Fatalf("config show: %v", err)
		}
		for _, line := range strings.Split(out, "\n") {
			switch {
			case strings.HasPrefix(line, "log_level "):
				if !strings.HasSuffix(line, "# environment") {
					t.Errorf("log_level source: %q", line)
				}
			case strings.HasPrefix(line, "log_format "):
				if !strings.HasSuffix(line, "# flag") {
					t.Errorf("log_format source: %q", line)
				}
			case strings.HasPrefix(line, "log_caller "):
				if !strings.HasSuffix(line, "# default") {
					t.Errorf("log_caller source: %q", line)
				}
			}
		}
	})

	t.Run("bad argument", func(t *testing.T) {
		if _, _, err := run(t, "", "config", "edit"); err == nil {
			t.Error("expected error for unknown config argument")
		}
	})
}

func TestViewCommandRequiresTTY(t *testing.T) {
	isolate(t)
	if _, _, err := run(t, "", "view", "tasks.json"); err == nil {
		t.Error("expected error without a TTY")
	}
}

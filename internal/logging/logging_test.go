package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInit_WritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	if err := Init(Options{Verbose: true, LogDir: dir, Console: &console}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %s", zerolog.GlobalLevel())
	}

	log.Info().Str("component", "test").Msg("hello from test")

	if !strings.Contains(console.String(), "hello from test") {
		t.Errorf("console output missing message: %q", console.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("log file missing structured field: %s", data)
	}
}

func TestInit_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Init(Options{LogDir: filepath.Join(blocker, "logs"), Console: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("expected an error when the log directory cannot be created")
	}
}

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_CreatesDirAndWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "console.log")

	log, closer, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	log.Info().Str("component", "test").Msg("hello")
	closer()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) {
		t.Fatalf("log file missing entry: %q", string(data))
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Fatalf("log file missing field: %q", string(data))
	}
}

func TestOpen_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	log, closer, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	log.Info().Msg("first")
	closer()

	log, closer, err = Open(path)
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	log.Info().Msg("second")
	closer()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("reopening must append, got %q", string(data))
	}
}

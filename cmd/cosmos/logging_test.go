package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "cosmos.log")

	logger, closer, err := setupLogging(false, false, path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if closer != nil {
		t.Error("expected no log file when disabled")
		closer.Close()
	}
	logger.Info("dropped")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("log file created while disabled")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "cosmos.log")

	logger, closer, err := setupLogging(false, true, path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if closer == nil {
		t.Fatal("expected log file with --debug")
	}
	logger.Debug("scene ready", "bodies", 9)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "scene ready") || !strings.Contains(string(data), "bodies=9") {
		t.Errorf("log content = %q", data)
	}
}

func TestSetupLogging_InfoLevelWithoutDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cosmos.log")
	logger, closer, err := setupLogging(true, false, path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("log content = %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cosmos.log")

	// Write just over 10MB
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("write large log: %v", err)
	}

	_, closer, err := setupLogging(true, false, path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != "cosmos.log" && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("expected a rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log file is %d bytes, want fresh file", info.Size())
	}
}

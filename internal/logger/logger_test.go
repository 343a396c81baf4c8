package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func TestLog(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Log should not panic
	Log("test message")
	Log("test with %s", "argument")
	Log("test with %d and %s", 42, "string")
}

func TestLogFile_Exists(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Enable debug level to test Log() which maps to debug
	SetDebug(true)
	defer SetDebug(false)

	testMsg := "test-unique-string-12345"
	Log("%s", testMsg)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), testMsg) {
		t.Error("Log file should contain the logged message")
	}
}

func TestLog_LevelFiltering(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// At the default Info level, Debug output is suppressed
	SetDebug(false)
	Debug("debug-suppressed-marker")
	Info("info-visible-marker")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if strings.Contains(string(content), "debug-suppressed-marker") {
		t.Error("Debug message should be suppressed at Info level")
	}
	if !strings.Contains(string(content), "info-visible-marker") {
		t.Error("Info message should be written at Info level")
	}
}

func TestWithComponent(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := WithComponent("api")
	log.Info("component test message")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "component=api") {
		t.Error("Log line should carry the component attribute")
	}
}

func TestClose(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Close should not panic
	Close()
}

func TestLog_Concurrent(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Log("concurrent message %d", n)
		}(i)
	}
	wg.Wait()
}

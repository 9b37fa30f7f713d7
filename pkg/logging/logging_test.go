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

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp dir for log file
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			// Check that log file was created
			logPath := filepath.Join(tempDir, "confval", "confval.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := getLogFilePath()
	if !filepath.IsAbs(got) {
		t.Errorf("getLogFilePath() returned relative path: %s", got)
	}
	want := filepath.Join("/custom/state", "confval", "confval.log")
	if got != want {
		t.Errorf("getLogFilePath() = %s, want %s", got, want)
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test-component") {
		t.Errorf("GetLogger() output missing component field: %s", output)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := WithFields(map[string]interface{}{
		"key1": "value1",
		"key2": 42,
	})
	logger.Info().Msg("test message with fields")

	output := buf.String()
	for _, want := range []string{"key1", "value1", "key2", "42"} {
		if !strings.Contains(output, want) {
			t.Errorf("WithFields() output missing %q: %s", want, output)
		}
	}
}

func TestMust_NoError(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Must(nil) should not panic, got %v", r)
		}
	}()
	Must(nil, "this should not exit")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "test-op")
	done()

	output := buf.String()
	if !strings.Contains(output, "Operation started") || !strings.Contains(output, "Operation completed") {
		t.Errorf("LogOperationStart() output incomplete: %s", output)
	}
}

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"chatty", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(Config{Level: tt.level})
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			if !log.Core().Enabled(tt.want) {
				t.Errorf("level %s should be enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && log.Core().Enabled(tt.want-1) {
				t.Errorf("level %s should be disabled", tt.want-1)
			}
		})
	}
}

func TestNew_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(Config{Level: "warn", Encoding: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	log.Info("hidden")
	log.Warn("variations left open", zap.Int("count", 2))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, `"msg":"variations left open"`) || !strings.Contains(out, `"count":2`) {
		t.Errorf("writer output = %q, want JSON warning", out)
	}
}

func TestNew_OutputPathWinsOverWriter(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "run.log")

	log, err := New(Config{Encoding: "json", OutputPath: path, Writer: &buf})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	log.Info("to file")
	_ = log.Sync()

	if buf.Len() != 0 {
		t.Errorf("writer should stay empty, got %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgn2anki.log")

	log, err := New(Config{Level: "info", Encoding: "json", OutputPath: path})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	log.Info("lines extracted")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"lines extracted"`) {
		t.Errorf("log file = %q, want JSON message", data)
	}
}

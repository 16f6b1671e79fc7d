package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		log := New(tt.level, &buf)
		log.Debug("debug %d", 1)
		log.Info("info %d", 2)
		log.Warn("warn")
		log.Error("error")

		out := buf.String()
		if got := strings.Contains(out, "[DBG] "); got != tt.wantDebug {
			t.Errorf("level %d: debug emitted=%v, want %v", tt.level, got, tt.wantDebug)
		}
		if got := strings.Contains(out, "[INF] "); got != tt.wantInfo {
			t.Errorf("level %d: info emitted=%v, want %v", tt.level, got, tt.wantInfo)
		}
		for _, prefix := range []string{"[WRN] ", "[ERR] "} {
			if got := strings.Contains(out, prefix); got != tt.wantInfo {
				t.Errorf("level %d: %s emitted=%v, want %v", tt.level, prefix, got, tt.wantInfo)
			}
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)
	log.Info("hidden")
	log.SetLevel(LevelNormal)
	log.Info("shown")

	if log.GetLevel() != LevelNormal {
		t.Fatalf("expected LevelNormal, got %d", log.GetLevel())
	}
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "book.log")
	w, closeFn, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	log := New(LevelNormal, w)
	log.Info("hello %s", "file")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("log line missing: %q", data)
	}

	w, closeFn, err = OpenFile("stderr")
	if err != nil || w != os.Stderr {
		t.Fatalf("expected stderr writer, got %v, %v", w, err)
	}
	_ = closeFn()
}

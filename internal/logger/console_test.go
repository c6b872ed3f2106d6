package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestConsoleLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		logFunc   func(cl *ConsoleLogger)
		wantMatch string
		wantEmpty bool
	}{
		{
			name:      "info passes at info level",
			logLevel:  "info",
			logFunc:   func(cl *ConsoleLogger) { cl.Infof("hello %s", "world") },
			wantMatch: "[INFO] hello world",
		},
		{
			name:      "debug filtered at info level",
			logLevel:  "info",
			logFunc:   func(cl *ConsoleLogger) { cl.Debugf("hidden") },
			wantEmpty: true,
		},
		{
			name:      "trace passes at trace level",
			logLevel:  "trace",
			logFunc:   func(cl *ConsoleLogger) { cl.Tracef("verbose") },
			wantMatch: "[TRACE] verbose",
		},
		{
			name:      "warn passes at error level is filtered",
			logLevel:  "error",
			logFunc:   func(cl *ConsoleLogger) { cl.Warnf("warning") },
			wantEmpty: true,
		},
		{
			name:      "error always passes",
			logLevel:  "error",
			logFunc:   func(cl *ConsoleLogger) { cl.Errorf("boom: %v", "failure") },
			wantMatch: "[ERROR] boom: failure",
		},
		{
			name:      "invalid level defaults to info",
			logLevel:  "bogus",
			logFunc:   func(cl *ConsoleLogger) { cl.Debugf("hidden") },
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewConsoleLogger(&buf, tt.logLevel)
			tt.logFunc(cl)

			got := buf.String()
			if tt.wantEmpty {
				if got != "" {
					t.Errorf("output = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.wantMatch) {
				t.Errorf("output = %q, want substring %q", got, tt.wantMatch)
			}
			// Timestamp prefix: "[HH:MM:SS] ".
			if !strings.HasPrefix(got, "[") || len(got) < 11 {
				t.Errorf("output %q missing timestamp prefix", got)
			}
		})
	}
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "info")
	// Must not panic.
	cl.Infof("dropped")
	cl.Errorf("dropped")
}

func TestConsoleLoggerNoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")
	cl.Infof("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output %q contains ANSI escapes for a non-TTY writer", buf.String())
	}
}

func TestConsoleLoggerConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cl.Infof("concurrent message")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 20 {
		t.Errorf("got %d lines, want 20", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "concurrent message") {
			t.Errorf("interleaved line: %q", line)
		}
	}
}

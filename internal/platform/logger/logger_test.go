package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %s, got %s", in, want, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat(" JSON ") != FormatJSON {
		t.Fatalf("expected json")
	}
	if ParseFormat("yaml") != FormatText {
		t.Fatalf("expected text fallback")
	}
}

func TestNewWithWriter_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, Options{Level: zerolog.InfoLevel, Format: FormatJSON, App: "animal-sounds"})

	l.Debug().Msg("hidden")
	l.Info().Str("k", "v").Msg("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if entry["message"] != "visible" || entry["app"] != "animal-sounds" || entry["k"] != "v" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewWithWriter_AlsoWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "api.log")

	var buf bytes.Buffer
	l := NewWithWriter(&buf, Options{Level: zerolog.InfoLevel, Format: FormatText, File: path})
	l.Info().Msg("hello file")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), "hello file") {
		t.Fatalf("expected message in file, got %q", string(b))
	}
	if !strings.Contains(buf.String(), "hello file") {
		t.Fatalf("expected message on console, got %q", buf.String())
	}
}

func TestNewWithWriter_BadLogFileWarns(t *testing.T) {
	// un archivo común donde debería ir el directorio del log
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	path := filepath.Join(blocker, "logs", "api.log")

	var buf bytes.Buffer
	l := NewWithWriter(&buf, Options{Level: zerolog.InfoLevel, Format: FormatJSON, File: path})

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "logging to console only") {
		t.Fatalf("expected warning about log file, got %q", out)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("expected path in warning, got %q", out)
	}

	// el logger sigue andando sobre la consola
	buf.Reset()
	l.Info().Msg("still alive")
	if !strings.Contains(buf.String(), "still alive") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Errorf("missing messages:\n%s", out)
	}
}

func TestNamedSharesSink(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelInfo)
	root.SetOutput(&buf)
	child := root.Named("face").Named("anim")

	child.Info("step %s", "03:37")
	if !strings.Contains(buf.String(), "[INFO] face.anim: step 03:37") {
		t.Errorf("unexpected line %q", buf.String())
	}

	root.SetLevel(LevelError)
	buf.Reset()
	child.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("child ignored parent level: %q", buf.String())
	}
	if child.Enabled(LevelWarn) {
		t.Error("Enabled(LevelWarn) = true after SetLevel(LevelError)")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	if l.Enabled(LevelError) {
		t.Error("Discard logger reports errors enabled")
	}
}

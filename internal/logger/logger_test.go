package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	log.Info("catalog reloaded", "palettes", 18)

	assert.Contains(t, buf.String(), `"msg":"catalog reloaded"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"palettes":18`)
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{"production uses json", "production", true},
		{"development uses pretty", "development", false},
		{"staging uses pretty", "staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{Level: slog.LevelInfo, Environment: tt.environment, Writer: &buf, NoColor: true})
			log.Info("test")

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"test"`)
			} else {
				assert.Contains(t, buf.String(), "INF test")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), tt.input)
	}
}

func TestPrettyHandler_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, termenv.Ascii)
	log := slog.New(h)

	log.Debug("suggestion request", "model", "gemini-pro", "prompt", "calm sea")

	line := buf.String()
	assert.NotContains(t, line, "\x1b[", "ascii profile must not emit escapes")
	assert.Contains(t, line, "DBG suggestion request")
	assert.Contains(t, line, "model=gemini-pro")
	assert.Contains(t, line, `prompt="calm sea"`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestNew_NoColorDropsEscapes(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelDebug, Environment: "development", Writer: &buf, NoColor: true})

	log.Warn("overlay rejected", "path", "palettes.yaml")

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "WRN overlay rejected path=palettes.yaml")
}

func TestPrettyHandler_ColoredOutput(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil, termenv.ANSI)
	slog.New(h).Warn("overlay rejected")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "WRN")
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}, termenv.Ascii))

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrettyHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil, termenv.Ascii))

	log.With("component", "catalog").WithGroup("overlay").Info("reloaded", "palettes", 19, slog.Group("themes", "count", 9))

	line := buf.String()
	assert.Contains(t, line, "component=catalog")
	assert.Contains(t, line, "overlay.palettes=19")
	assert.Contains(t, line, "overlay.themes.count=9")
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: "json", Writer: &buf})

	log.WithError(errors.New("boom")).WithField("slug", "earthly").Error("failed")

	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"slug":"earthly"`)
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing to see")
	assert.NotNil(t, log.Logger)
}

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
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
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("scanner")
	logger.Info().Msg("walking tree")

	assert.True(t, strings.Contains(buf.String(), `"component":"scanner"`),
		"log line should carry the component field: %s", buf.String())
}

func TestLogFilePathIsUnderStateDir(t *testing.T) {
	path := getLogFilePath()
	assert.True(t, strings.HasSuffix(path, "duplink/duplink.log"), "got %s", path)
}

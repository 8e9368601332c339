package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var testCases = []struct {
		description string
		level       slog.Level
		format      string
		expect      []string
		absent      []string
	}{
		{
			description: "text with err key",
			level:       slog.LevelInfo,
			format:      "text",
			expect:      []string{"level=WARN", "err=boom", "component=transform"},
			absent:      []string{"suppressed"},
		},
		{
			description: "json",
			level:       slog.LevelDebug,
			format:      "json",
			expect:      []string{`"level":"WARN"`, `"err":"boom"`, `"component":"transform"`, "suppressed"},
		},
	}

	for _, testCase := range testCases {
		buf := bytes.Buffer{}
		logger := Component(New(testCase.level, testCase.format, &buf), "transform")
		logger.Debug("suppressed")
		logger.Warn("decorator failed", "error", errors.New("boom"))
		output := buf.String()
		for _, fragment := range testCase.expect {
			assert.Contains(t, output, fragment, testCase.description)
		}
		for _, fragment := range testCase.absent {
			assert.NotContains(t, output, fragment, testCase.description)
		}
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	assert.Nil(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	assert.Nil(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.NotNil(t, err)
}

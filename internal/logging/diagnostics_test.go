package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// TestDiagnosticFormatter tests rendering per level
func TestDiagnosticFormatter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *logrus.Logger)
		expected string
	}{
		{
			name:     "Error line",
			log:      func(l *logrus.Logger) { l.Error("unknown input format 'foo'") },
			expected: "error: unknown input format 'foo'\n",
		},
		{
			name:     "Warning as JSON",
			log:      func(l *logrus.Logger) { l.Warn("raw MPX sample rate not defined, assuming 171000 Hz") },
			expected: "{\"warning\":\"raw MPX sample rate not defined, assuming 171000 Hz\"}\n",
		},
		{
			name:     "Warning escapes quotes",
			log:      func(l *logrus.Logger) { l.Warn(`say "hi"`) },
			expected: "{\"warning\":\"say \\\"hi\\\"\"}\n",
		},
		{
			name: "Info with sorted fields",
			log: func(l *logrus.Logger) {
				l.WithFields(logrus.Fields{"input": "mpx", "channels": 1}).Info("configuration")
			},
			expected: "info: configuration channels=1 input=mpx\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewDiagnostics(&buf, false)

			tt.log(logger)

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

// TestNewDiagnostics_Level tests the verbose switch
func TestNewDiagnostics_Level(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewDiagnostics(&buf, false)
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())
	assert.Equal(t, logrus.InfoLevel, quiet.GetLevel())

	verbose := NewDiagnostics(&buf, true)
	verbose.Debug("shown")
	assert.Equal(t, "debug: shown\n", buf.String())
}

// TestVerboseFromEnv tests the debug environment switch
func TestVerboseFromEnv(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"ON", true},
		{"T", true},
		{"0", false},
		{"", false},
		{"off", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(DebugEnv, tt.value)
			assert.Equal(t, tt.expected, VerboseFromEnv())
		})
	}
}

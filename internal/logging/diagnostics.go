package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DebugEnv enables debug-level diagnostics when set to a true value
const DebugEnv = "GOREDSEA_DEBUG"

// DiagnosticFormatter renders entries the way the decoder reports problems
// on stderr: errors as "error: <msg>", warnings as a single-key JSON
// object so they can share a stream with JSON output, anything else as
// "<level>: <msg>" followed by its fields.
type DiagnosticFormatter struct{}

// Format implements logrus.Formatter
func (f *DiagnosticFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	switch entry.Level {
	case logrus.WarnLevel:
		line, err := json.Marshal(map[string]string{"warning": entry.Message})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal warning: %w", err)
		}
		b.Write(line)
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		b.WriteString("error: ")
		b.WriteString(entry.Message)
	default:
		b.WriteString(entry.Level.String())
		b.WriteString(": ")
		b.WriteString(entry.Message)
		writeFields(&b, entry.Data)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func writeFields(b *bytes.Buffer, data logrus.Fields) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, data[k])
	}
}

// NewDiagnostics creates the logger for the diagnostics channel
func NewDiagnostics(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&DiagnosticFormatter{})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// VerboseFromEnv reports whether DebugEnv asks for debug output
func VerboseFromEnv() bool {
	v, ok := os.LookupEnv(DebugEnv)
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "yes", "on":
		return true
	}
	on, err := strconv.ParseBool(v)
	return err == nil && on
}

// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    LogLevel
	}{
		{"verbose mode", true, LevelDebug},
		{"quiet mode", false, LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.verbose)
			require.NotNil(t, logger)
			assert.Equal(t, tt.want, logger.GetLevel())
			assert.Equal(t, os.Stdout, logger.out)
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOptions(LoggerOptions{Level: LevelWarn, Output: &buf, ShowLevel: true})

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	assert.Equal(t, "[WARN] warn 3\n[ERROR] error 4\n", buf.String())

	logger.SetLevel(LevelDebug)
	buf.Reset()
	logger.Debug("now visible")
	assert.Equal(t, "[DEBUG] now visible\n", buf.String())
}

func TestDiscard_Level(t *testing.T) {
	logger := Discard()
	assert.Equal(t, LevelSilent, logger.GetLevel())
	logger.Error("never printed")
}

func TestLogger_SilentDropsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOptions(LoggerOptions{Level: LevelSilent, Output: &buf})
	logger.Error("boom")
	assert.Empty(t, buf.String())
}

func TestWithFields_ParentUnchanged(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerWithOptions(LoggerOptions{Level: LevelInfo, Output: &buf})
	child := parent.WithField("path", "/tmp/a").WithFields(map[string]interface{}{"algorithm": "md5"})

	child.Info("hashed")
	parent.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "hashed {algorithm=md5, path=/tmp/a}", lines[0])
	assert.Equal(t, "plain", lines[1])
}

func TestJSONFormatter_Format(t *testing.T) {
	f := &JSONFormatter{}
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	data, err := f.Format(LogEntry{
		Timestamp: ts,
		Level:     LevelInfo,
		Message:   "hashed file",
		Fields:    map[string]interface{}{"size": 24},
	})
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(data, []byte("\n")))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "2025-01-02T03:04:05Z", got["timestamp"])
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "hashed file", got["message"])
	assert.Equal(t, map[string]interface{}{"size": float64(24)}, got["fields"])
}

func TestJSONFormatter_UnmarshalableField(t *testing.T) {
	f := &JSONFormatter{}
	data, err := f.Format(LogEntry{
		Level:   LevelWarn,
		Message: "odd field",
		Fields:  map[string]interface{}{"ch": make(chan int)},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "fields_error")
	assert.Contains(t, string(data), "odd field")
}

func TestTextFormatter_Timestamp(t *testing.T) {
	f := &TextFormatter{TimeFormat: "2006-01-02", ShowLevel: true}
	data, err := f.Format(LogEntry{
		Timestamp: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
		Level:     LevelError,
		Message:   "failed",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-07 [ERROR] failed\n", string(data))
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelSilent,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestParseLogFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseLogFormat(" JSON "))
	assert.Equal(t, FormatText, ParseLogFormat("plain"))
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "unknown", LogFormat(9).String())
}

func TestEnsureLogger(t *testing.T) {
	assert.NotNil(t, EnsureLogger(nil))

	l := Discard()
	assert.Same(t, l, EnsureLogger(l))
}

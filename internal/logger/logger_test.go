package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	Setup(level, buf)
	t.Cleanup(func() { Setup("info", os.Stdout) })
	return buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSetupLevels(t *testing.T) {
	testCases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"unknown": logrus.InfoLevel,
	}

	for level, expected := range testCases {
		t.Run(level, func(t *testing.T) {
			captureJSON(t, level)
			assert.Equal(t, expected, logrus.GetLevel())
		})
	}
}

func TestWithContextRequestID(t *testing.T) {
	buf := captureJSON(t, "info")

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	WithContext(ctx).Info("hello")

	entry := decodeLine(t, buf)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	buf := captureJSON(t, "info")

	WithContext(context.Background()).Info("plain")

	entry := decodeLine(t, buf)
	_, ok := entry["request_id"]
	assert.False(t, ok)
}

func TestWithFieldsAndError(t *testing.T) {
	buf := captureJSON(t, "debug")

	New().
		WithFields(map[string]interface{}{"subject": "team", "id": 7}).
		WithField("operation", "notes").
		WithError(errors.New("boom")).
		Debug("storage fault")

	entry := decodeLine(t, buf)
	assert.Equal(t, "team", entry["subject"])
	assert.Equal(t, float64(7), entry["id"])
	assert.Equal(t, "notes", entry["operation"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "debug", entry["level"])
}

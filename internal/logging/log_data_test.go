package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging()
	buffer := &bytes.Buffer{}
	logger.Out = buffer
	return logger, buffer
}

func decodeLines(t *testing.T, buffer *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	decoder := json.NewDecoder(buffer)
	for decoder.More() {
		line := map[string]interface{}{}
		require.NoError(t, decoder.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestLogData_Log(t *testing.T) {
	logger, buffer := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("transactionCount", 3)
	logData.AddTiming("listTransactionsMs")()
	end := logData.AddToExistingTiming("statisticsMs")
	end()
	logData.AddToExistingTiming("statisticsMs")()

	logData.Log().Info("done")

	lines := decodeLines(t, buffer)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["loglevel"])
	assert.Equal(t, float64(3), lines[0]["transactionCount"])
	assert.Contains(t, lines[0], "listTransactionsMs")
	assert.Contains(t, lines[0], "statisticsMs")
}

func TestLogData_NilIsSafe(t *testing.T) {
	var logData *LogData

	assert.NotPanics(t, func() {
		logData.AddData("key", "value")
		logData.AddTiming("timing")()
		logData.AddToExistingTiming("timing")()
		_ = logData.Log()
	})
}

func TestSetLevel(t *testing.T) {
	logger := SetupLogging()

	require.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	assert.Error(t, SetLevel(logger, "chatty"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)
}

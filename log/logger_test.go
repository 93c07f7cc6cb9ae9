package log

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Now().Unix()
	err = errors.New("error message")
)

// Fatal and Crit exit the process and are not tested.
func TestLogger(t *testing.T) {
	SetLogger(6, false, true)
	assert.False(t, JSONFormat)
	assert.Equal(t, logrus.TraceLevel, logrus.GetLevel())

	WithFields("timestamp", now, "err", err).Debugf("test WithFields Debugf at %v", now)
	WithFields("timestamp", now, "odd").Info("test WithFields with odd fields")
	WithFields(1, now).Info("test WithFields with non string key")

	Trace("test Trace", "timestamp", now, "err", err)
	Tracef("test Tracef, timestamp=%v err=%v", now, err)
	Debug("test Debug", "timestamp", now, "err", err)
	Debugf("test Debugf, timestamp=%v err=%v", now, err)
	Info("test Info", "timestamp", now, "err", err)
	Infof("test Infof, timestamp=%v err=%v", now, err)
	Println("test Println", "timestamp", now, "err", err)
	Warn("test Warn", "timestamp", now, "err", err)
	Warnf("test Warnf, timestamp=%v err=%v", now, err)
	Error("test Error", "timestamp", now, "err", err)
	Errorf("test Errorf, timestamp=%v err=%v", now, err)

	assert.Panics(t, func() { Panic("test Panic", "timestamp", now, "err", err) }, "not panic")
	assert.Panics(t, func() { Panicf("test Panicf, timestamp=%v err=%v", now, err) }, "not panic")
}

func TestJSONLogger(t *testing.T) {
	SetLogger(4, true, false)
	defer SetLogger(4, false, false)
	assert.True(t, JSONFormat)
	_, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestSetLogFile(t *testing.T) {
	SetLogger(4, false, false)
	defer SetLogger(4, false, false)

	require.NoError(t, SetLogFile("", 0, 0))

	logFile := filepath.Join(t.TempDir(), "logs", "xrplcodec.log")
	require.NoError(t, SetLogFile(logFile, 1, 2))
	Info("written to file", "timestamp", now)

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "written to file")
}

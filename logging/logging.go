// Package logging configures the process-wide logrus logger shared by the
// command-line tools.
package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RunField is the log field that identifies one invocation.
const RunField = "run"

// Init directs logs to w at info level and tags every entry with a fresh
// run id, which is returned.
func Init(w io.Writer) string {
	id := uuid.NewString()

	logger := logrus.StandardLogger()
	logger.SetOutput(w)
	logger.SetLevel(logrus.InfoLevel)
	logger.ReplaceHooks(make(logrus.LevelHooks))
	logger.AddHook(runHook(id))

	return id
}

// SetDebug enables or disables debug logging.
func SetDebug(debug bool) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debug("Debug logging enabled")
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}

type runHook string

func (h runHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h runHook) Fire(e *logrus.Entry) error {
	e.Data[RunField] = string(h)
	return nil
}

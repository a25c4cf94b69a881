package factory

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/compute-tools/vm-restore-points/orchestrator"
	"github.com/compute-tools/vm-restore-points/writer"
)

var ApplicationLoggerStdout = writer.NewPausableWriter(os.Stdout)
var ApplicationLoggerStderr = writer.NewPausableWriter(os.Stderr)

func BuildLogger(debug bool) orchestrator.Logger {
	log := logrus.New()
	log.SetOutput(ApplicationLoggerStdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return logrusLogger{log: log}
}

type logrusLogger struct {
	log *logrus.Logger
}

func (l logrusLogger) Debug(tag, msg string, args ...interface{}) {
	l.entry(tag).Debugf(msg, args...)
}

func (l logrusLogger) Info(tag, msg string, args ...interface{}) {
	l.entry(tag).Infof(msg, args...)
}

func (l logrusLogger) Warn(tag, msg string, args ...interface{}) {
	l.entry(tag).Warnf(msg, args...)
}

func (l logrusLogger) Error(tag, msg string, args ...interface{}) {
	l.entry(tag).Errorf(msg, args...)
}

func (l logrusLogger) entry(tag string) *logrus.Entry {
	if tag == "" {
		return logrus.NewEntry(l.log)
	}
	return l.log.WithField("tag", tag)
}

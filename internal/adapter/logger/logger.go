package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type LoggerAdapter struct {
	log *logrus.Logger
}

// NewLoggerAdapter logs JSON at info level in production and human readable
// text at debug level everywhere else.
func NewLoggerAdapter(env string) *LoggerAdapter {
	return newLoggerAdapter(env, os.Stdout)
}

func newLoggerAdapter(env string, out io.Writer) *LoggerAdapter {
	log := logrus.New()
	log.SetOutput(out)

	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	}

	return &LoggerAdapter{log: log}
}

// NewLoggerAdapterFrom wraps an existing logrus logger.
func NewLoggerAdapterFrom(log *logrus.Logger) *LoggerAdapter {
	return &LoggerAdapter{log: log}
}

func (l *LoggerAdapter) entry(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Print(...interface{})
	Printf(string, ...interface{})
	Debug(...interface{})
	Debugf(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
	Fatal(...interface{})
	Fatalf(string, ...interface{})

	// WithField returns a logger that carries the given key/value pair
	// on every line it emits.
	WithField(string, interface{}) Logger
}

type logger struct {
	*logrus.Entry
}

func New(env string) Logger {
	l := logrus.New()

	if env == "prod" {
		l.Formatter = &logrus.JSONFormatter{}
		l.Level = logrus.InfoLevel
	} else {
		l.Formatter = &logrus.TextFormatter{}
		l.Level = logrus.DebugLevel
	}

	return logger{l.WithField("env", env)}
}

// NewSilent returns a logger that discards everything. Meant for
// tests.
func NewSilent() Logger {
	l := logrus.New()
	l.Out = io.Discard
	return logger{logrus.NewEntry(l)}
}

func (l logger) Print(args ...interface{}) {
	l.Println(args...)
}

func (l logger) Debug(args ...interface{}) {
	l.Debugln(args...)
}

func (l logger) Error(args ...interface{}) {
	l.Errorln(args...)
}

func (l logger) Fatal(args ...interface{}) {
	l.Fatalln(args...)
}

func (l logger) WithField(key string, value interface{}) Logger {
	return logger{l.Entry.WithField(key, value)}
}

package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

// Level mirrors logrus severity ordering: the lower the value, the more
// severe the event.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func init() {
	// Per-module filtering happens before logrus is ever reached, so logrus
	// itself lets everything through.
	logrus.SetLevel(logrus.DebugLevel)
}

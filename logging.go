package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging configures the standard logrus logger. A non-empty logFile
// adds a size-rotated file next to stderr; the returned closer is nil
// otherwise.
func setupLogging(debug bool, logFile string) io.Closer {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if logFile == "" {
		logrus.SetOutput(os.Stderr)
		return nil
	}

	rotated := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, rotated))
	return rotated
}

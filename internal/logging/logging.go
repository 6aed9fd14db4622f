// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"path"
	"runtime"
	"strconv"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup applies cfg to the standard logrus logger and returns the writer logs go to.
// When cfg.File is empty, logs go to fallback (stderr if fallback is nil).
func Setup(cfg config.LoggingConfig, fallback io.Writer) (io.Writer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := Writer(cfg, fallback)

	logrus.SetLevel(level)
	logrus.SetOutput(out)
	logrus.SetReportCaller(level >= logrus.DebugLevel)
	logrus.SetFormatter(&logrus.JSONFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (function string, file string) {
			function = path.Base(f.Function)
			file = path.Base(f.File) + ":" + strconv.Itoa(f.Line)
			return
		},
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})

	return out, nil
}

// Writer returns the destination for log output described by cfg.
func Writer(cfg config.LoggingConfig, fallback io.Writer) io.Writer {
	if cfg.File != "" {
		return &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
			LocalTime:  true,
		}
	}
	if fallback != nil {
		return fallback
	}
	return os.Stderr
}

package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"dodge/config"
)

// Logger is usable before Init; Init reconfigures it from config.
var Logger = logrus.New()

func Init(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	out := io.Writer(os.Stdout)
	if cfg.Logger.File != "" {
		file, err := os.OpenFile(cfg.Logger.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			out = io.MultiWriter(os.Stdout, file)
		} else {
			Logger.Warnf("cannot open log file %s: %v", cfg.Logger.File, err)
		}
	}
	Logger.SetOutput(out)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
	})
}

// Package logging builds the logrus logger shared by the game's components.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/wayfarer/internal/config"
)

// New creates a logger from the log section of the config.
// Unknown levels fall back to info; any format other than "json" uses text.
func New(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(os.Stdout)
	return log
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Package logger configures the process-wide zerolog logger.
package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger for the given environment. Development gets
// a human-readable console writer at debug level; anything else logs leveled
// JSON at info level.
func Init(env string) {
	if env == "development" {
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
		return
	}
	log.Logger = log.Logger.Level(zerolog.InfoLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}

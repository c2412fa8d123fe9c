package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/wonny/techscreener/pkg/logger"
)

// cronLogger routes cron's own messages (wake, run, skip, panics) into zerolog
type cronLogger struct {
	zlog zerolog.Logger
}

func newCronLogger(log *logger.Logger) cron.Logger {
	return cronLogger{zlog: log.Zerolog().With().Str("component", "cron").Logger()}
}

// Info is logged at debug level; cron emits one per tick
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.zlog.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.zlog.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

package cron

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// zapLogger adapts zap to cron.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l zapLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}

// NewScheduler returns a cron with every registered job added but not started.
// Panicking jobs are recovered and logged.
func NewScheduler(logger *zap.Logger) (*cron.Cron, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := zapLogger{s: logger.Named("cron").Sugar()}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl)))
	for name, j := range Jobs() {
		run := j.Run
		if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
			return nil, fmt.Errorf("register job %s: %w", name, err)
		}
		logger.Info("cron job registered", zap.String("job", name), zap.String("schedule", j.Schedule))
	}
	return c, nil
}

// StartCron builds the scheduler and starts it.
func StartCron(logger *zap.Logger) (*cron.Cron, error) {
	c, err := NewScheduler(logger)
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

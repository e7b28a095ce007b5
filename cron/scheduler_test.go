package cron

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewScheduler_AddsJobs(t *testing.T) {
	Register("schedtest", "@every 1h", func(...string) {})
	defer Unregister("schedtest")

	c, err := NewScheduler(nil)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	if n := len(c.Entries()); n < 1 {
		t.Errorf("entries = %d, want at least 1", n)
	}
}

func TestNewScheduler_BadSchedule(t *testing.T) {
	Register("badsched", "not a schedule", func(...string) {})
	defer Unregister("badsched")

	if _, err := NewScheduler(nil); err == nil {
		t.Fatal("want error for invalid schedule")
	}
}

func TestZapLogger_Error(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zapLogger{s: zap.New(core).Sugar()}
	l.Error(errors.New("boom"), "job failed", "job", "x")
	l.Info("tick")

	if got := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); got != 1 {
		t.Fatalf("error logs = %d, want 1", got)
	}
	fields := logs.FilterLevelExact(zapcore.ErrorLevel).All()[0].ContextMap()
	if fields["job"] != "x" || fields["error"] != "boom" {
		t.Errorf("fields = %v", fields)
	}
}

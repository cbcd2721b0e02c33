package logger_test

import (
	"testing"

	"github.com/ihangire/ihangire/internal/logger"
)

func TestNew_SafeBeforeInit(t *testing.T) {
	l := logger.New()
	if l.Log == nil {
		t.Fatal("New() returned a nil zap logger")
	}
	l.Log.Info("noop logger must not panic")
}

func TestInit(t *testing.T) {
	cases := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug", "debug", false},
		{"warn", "warn", false},
		{"unknown level", "loud", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := logger.New()
			err := l.Init(tc.level)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Init(%q) did not return error", tc.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("Init(%q) returned error: %v", tc.level, err)
			}
			if l.Log == nil {
				t.Fatal("Init left a nil zap logger")
			}
		})
	}
}

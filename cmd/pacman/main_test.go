package main

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/stefanfaur/JAPC/internal/config"
)

func TestExecuteNormalQuitExitsZero(t *testing.T) {
	l, hook := test.NewNullLogger()
	var got config.Config
	code := execute(context.Background(), []string{"pacman", "--seed", "4"}, l, func(cfg config.Config, _ *logrus.Logger) error {
		got = cfg
		return nil
	})
	if code != 0 || len(hook.AllEntries()) != 0 {
		t.Fatalf("expected a silent exit 0, got %d with %d log entries", code, len(hook.AllEntries()))
	}
	if got.Seed != 4 {
		t.Fatalf("seed not passed through, got %d", got.Seed)
	}
}

func TestExecuteRunErrorIsLogged(t *testing.T) {
	l, hook := test.NewNullLogger()
	code := execute(context.Background(), []string{"pacman"}, l, func(config.Config, *logrus.Logger) error {
		return errors.Wrap(errors.New("device lost"), "run game")
	})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	e := hook.LastEntry()
	if e == nil || e.Message != "pacman exited with error" || e.Level != logrus.ErrorLevel {
		t.Fatalf("unexpected log entry %+v", e)
	}
}

func TestExecuteRejectsInvalidConfig(t *testing.T) {
	l, _ := test.NewNullLogger()
	started := false
	code := execute(context.Background(), []string{"pacman", "--speed", "0"}, l, func(config.Config, *logrus.Logger) error {
		started = true
		return nil
	})
	if code != 1 || started {
		t.Fatalf("expected exit 1 before start, got %d started=%v", code, started)
	}
}

package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/stefanfaur/JAPC/internal/app"
	"github.com/stefanfaur/JAPC/internal/audio"
	"github.com/stefanfaur/JAPC/internal/config"
	"github.com/stefanfaur/JAPC/internal/fonts"
	"github.com/stefanfaur/JAPC/internal/game"
	"github.com/stefanfaur/JAPC/internal/render"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("load .env")
	}

	os.Exit(execute(context.Background(), os.Args, log, run))
}

// execute runs the command line and returns the process exit code. A quit
// from inside the game is a nil error and exits 0.
func execute(ctx context.Context, args []string, log *logrus.Logger, start func(config.Config, *logrus.Logger) error) int {
	cmd := &cli.Command{
		Name:  "pacman",
		Usage: "move the square, dodge the walls, eat the dots",
		Flags: config.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.FromCommand(cmd)
			if err != nil {
				return errors.Wrap(err, "config")
			}
			return start(cfg, log)
		},
	}
	if err := cmd.Run(ctx, args); err != nil {
		log.WithError(err).Error("pacman exited with error")
		return 1
	}
	return 0
}

func run(cfg config.Config, log *logrus.Logger) error {
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	face, err := fonts.Load(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	sounds := audio.NewManager(cfg.SoundsDir, cfg.Audio, log)
	state, err := game.New(cfg, game.WithLogger(log), game.WithSounds(sounds))
	if err != nil {
		return errors.Wrap(err, "new game")
	}
	return app.Run(app.New(state, render.NewScreen(face)), "Pacman", cfg.Scale)
}

package main

import (
	"flag"
	"io"
	"os"
	"time"

	"maze-gen/internal/app"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New()
	logger.SetOutput(os.Stderr)
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithError(err).Warn("unknown log level, using info")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := app.NewSession(*cfg, seed, logger)
	if err != nil {
		logger.WithError(err).Fatal("bad configuration")
	}

	run := app.RunWindow
	if cfg.Shell == app.ShellTerminal {
		// The terminal owns stdout; keep log lines out of the picture.
		logger.SetOutput(io.Discard)
		run = app.RunTerminal
	}
	if err := run(session, logger); err != nil {
		logger.SetOutput(os.Stderr)
		logger.WithError(err).WithField("shell", cfg.Shell).Fatal("shell failed")
	}
}

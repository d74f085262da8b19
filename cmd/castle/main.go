// Package main runs a single game of the castle adventure on the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/castle/content"
	"github.com/cory-johannsen/castle/internal/config"
	"github.com/cory-johannsen/castle/internal/game/session"
	"github.com/cory-johannsen/castle/internal/observability"
)

const prompt = "Enter Command (help for help): "

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	worldPath := flag.String("world", "", "path to a world YAML file (overrides game.world_file)")
	logLevel := flag.String("log-level", "warn", "log level for diagnostics on stderr")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *worldPath != "" {
		cfg.Game.WorldFile = *worldPath
	}
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = "console"

	logger, err := observability.NewLogger(cfg.Logging, "castle")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bp, err := content.Load(cfg.Game.WorldFile)
	if err != nil {
		logger.Fatal("loading world", zap.String("path", cfg.Game.WorldFile), zap.Error(err))
	}

	sessions := session.NewManager(session.ManagerConfig{
		Blueprint: bp,
		Rules:     cfg.Game,
		Logger:    logger,
	})
	sess, err := sessions.Start()
	if err != nil {
		logger.Fatal("starting game", zap.Error(err))
	}
	defer func() { _ = sessions.End(sess.ID()) }()

	in := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		fmt.Fprint(out, prompt)
		_ = out.Flush()

		line := "exit"
		if in.Scan() {
			line = strings.ToLower(in.Text())
		}
		reply := sess.Handle(line)
		for _, l := range reply.Lines {
			fmt.Fprintln(out, l)
		}
		if reply.Status != session.Continue {
			for _, l := range reply.Ending {
				fmt.Fprintln(out, l)
			}
			return
		}
	}
}

/*
Package main runs the tokenflow autocomplete engine.

tokenflow watches a rich-text document for a trigger token followed by a
partial token, offers a bounded list of prefix completions, and commits
the chosen one back as an immutable entity span. It fronts the engine
either as a msgpack IPC server for host-editor integration, or as an
interactive CLI playground for testing and debugging.

# Usage

Start the IPC server with default settings:

	tokenflow

Run the playground with a custom trigger:

	tokenflow -c -trigger "@@"

# Configuration

Runtime configuration is a TOML file holding the trigger token, the
suggestion bound, and the candidate vocabulary:

	[editor]
	trigger = "<>"
	max_suggestions = 4

	[vocab]
	words = ["getSelection", "getAnchorKey", "getEntityAt"]

The config file is created with defaults if it doesn't exist; flags
override it for one run.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/AlexanderKh/tokenflow/internal/cli"
	"github.com/AlexanderKh/tokenflow/pkg/config"
	"github.com/AlexanderKh/tokenflow/pkg/server"
	"github.com/AlexanderKh/tokenflow/pkg/session"
	"github.com/AlexanderKh/tokenflow/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "tokenflow"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, session, and the chosen front end together; the
// packages it calls own all the logic.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive playground instead of the IPC server")
	configPath := flag.String("config", "", "Path to a config.toml")
	triggerFlag := flag.String("trigger", "", "Override the trigger token")
	limitFlag := flag.Int("limit", 0, "Override the suggestion bound")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
		})
		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)
		logger.Print("[ tokenflow ] in-editor autocomplete engine", "version", Version)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(false)
	} else {
		log.SetLevel(log.ErrorLevel)
	}
	log.SetOutput(os.Stderr)

	cfg, loadedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if loadedPath != "" {
		log.Debugf("Using config: %s", loadedPath)
	}
	if *triggerFlag != "" {
		cfg.Editor.Trigger = *triggerFlag
	}
	if *limitFlag > 0 {
		cfg.Editor.MaxSuggestions = *limitFlag
	}
	cfg.Validate()

	source := suggest.NewVocab(cfg.Vocab.Words, cfg.Editor.MaxSuggestions)
	sess := session.New(cfg.Editor.Trigger, source, cfg.Editor.MaxSuggestions)

	if *cliMode {
		log.SetLevel(log.InfoLevel)
		handler := cli.NewInputHandler(sess, cfg.Editor.Trigger)
		if err := handler.Start(); err != nil {
			log.Fatalf("Playground error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC processor")
	srv := server.NewServer(sess, server.Options{
		MaxPartial: cfg.Server.MaxPartial,
		Greeting:   cfg.Server.Greeting,
	})
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

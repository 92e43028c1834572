package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/drake/pulseboard/internal/config"
	"github.com/drake/pulseboard/internal/log"
	"github.com/drake/pulseboard/internal/notify"
	"github.com/drake/pulseboard/internal/refresh"
	"github.com/drake/pulseboard/internal/service"
	"github.com/drake/pulseboard/internal/statusapi"
	"github.com/drake/pulseboard/internal/store"
	"github.com/drake/pulseboard/internal/tui"
	"github.com/drake/pulseboard/internal/watch"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("pulseboard %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting pulseboard", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pulseboard requires an interactive terminal")
	}

	// Durable store: mute preference + offline board cache. Falling back to
	// memory-only keeps the dashboard usable when the data dir is unwritable.
	durable, err := store.NewBoltStore(config.DataDir())
	if err != nil {
		logger.Warn("durable store unavailable, running memory-only", "error", err)
		durable, _ = store.NewBoltStore("")
	}
	defer durable.Close()

	session := store.NewSessionStore()

	client := statusapi.NewClient(cfg.Backend.URL, cfg.Backend.APIKey, logger)
	boardSvc := service.NewBoardService(client, durable, logger)
	watcher := watch.New(session, logger)
	player := notify.NewPlayer(cfg.Sounds.Command, cfg.Sounds.Created, cfg.Sounds.Completed, logger)
	notifier := notify.New(durable, player, os.Stderr, logger)
	scheduler := refresh.NewScheduler(cfg.Poll.IntervalSeconds)

	model := tui.NewModel(boardSvc, watcher, notifier, scheduler, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for backend settings when not configured
func runSetupFlow(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("Welcome to pulseboard!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter your status backend URL (e.g., https://xyz.supabase.co): ")
	url, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	cfg.Backend.URL = strings.TrimSpace(url)
	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend URL cannot be empty")
	}

	fmt.Print("Enter your API key: ")
	key, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	cfg.Backend.APIKey = strings.TrimSpace(key)
	if cfg.Backend.APIKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run pulseboard again to start the dashboard.")

	return nil
}

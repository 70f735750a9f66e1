package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gifdex/gifdex/internal/config"
	"github.com/gifdex/gifdex/internal/giphy"
	"github.com/gifdex/gifdex/internal/history"
	"github.com/gifdex/gifdex/internal/log"
	"github.com/gifdex/gifdex/internal/service"
	"github.com/gifdex/gifdex/internal/store"
	"github.com/gifdex/gifdex/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("gifdex %s\n", Version)
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

	logger.Info("starting gifdex", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	tagStore, err := store.NewTagStore(config.DataPath())
	if err != nil {
		return fmt.Errorf("failed to open tag store: %w", err)
	}
	defer tagStore.Close()

	// Step one: load the persisted history. This never triggers a search.
	hist := history.New(tagStore, cfg.History.MaxEntries, logger)
	if err := hist.Load(); err != nil {
		return fmt.Errorf("failed to load tag history: %w", err)
	}

	client := giphy.NewClient(cfg.Giphy.BaseURL, cfg.Giphy.APIKey, logger)
	searchSvc := service.NewSearchService(client, hist, cfg.Search.Limit, logger)

	// Step two, independent of the load: optionally replay the most
	// recent tag as the initial search.
	var initialTag string
	if cfg.History.ReplayOnStart {
		if last, ok := hist.Last(); ok {
			initialTag = last
		}
	}

	model := tui.NewModel(searchSvc, initialTag)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "replay", initialTag)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when no API key is configured
func runSetupFlow(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("Welcome to gifdex!")
	fmt.Println()
	fmt.Println("An API key is required. Create one at https://developers.giphy.com")
	fmt.Println()

	var apiKey string
	for {
		fmt.Print("Enter your API key: ")
		keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		apiKey = strings.TrimSpace(string(keyBytes))

		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}
		break
	}

	cfg.Giphy.APIKey = apiKey
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run gifdex again to start the application.")

	return nil
}

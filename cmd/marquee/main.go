package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/config"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/log"
	"github.com/mmcdole/marquee/internal/movieapi"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tui"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	var showVersion, login bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&login, "login", false, "sign in on the terminal and save the session")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(login); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(login bool) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	fileLogger, err := log.SetupLogger(&cfg.Logging, Version)
	if err != nil {
		// Fall back to null logger if file logging fails
		fileLogger = log.NullLogger()
	}
	defer fileLogger.Close()
	logger := fileLogger.Logger
	slog.SetDefault(logger)

	logger.Info("starting marquee", "server", cfg.Server.URL)

	client := movieapi.NewClient(cfg.Server.URL, cfg.Server.Token, logger)
	sessions := configSessions{client: client}

	if login {
		return runLoginFlow(client, sessions)
	}

	catalogStore, err := store.NewCatalogStore(cfg.GetCachePath(), cfg.Server.URL)
	if err != nil {
		return fmt.Errorf("failed to open catalog cache: %w", err)
	}
	defer catalogStore.Close()

	// Seed the session saved by a previous run
	if cfg.HasSession() {
		catalogStore.SaveSession(domain.Session{
			Token:    cfg.Server.Token,
			UserID:   cfg.Server.UserID,
			Username: cfg.Server.Username,
		})
	}

	catalogSvc := catalog.NewService(client, catalogStore, logger)
	model := tui.NewModel(catalogSvc, client, catalogStore, sessions, cfg.UI)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// configSessions saves the session into the config file and keeps the
// client's bearer token in step with it
type configSessions struct {
	client *movieapi.Client
}

func (c configSessions) SaveSession(session domain.Session) error {
	c.client.SetToken(session.Token)
	return config.SaveSession(session.Token, session.UserID, session.Username)
}

func (c configSessions) ClearSession() error {
	c.client.SetToken("")
	return config.ClearSession()
}

// runLoginFlow signs in without the TUI, then checks the token against the catalog
func runLoginFlow(client *movieapi.Client, sessions configSessions) error {
	session, err := movieapi.NewTerminalLogin(client).Run(context.Background())
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := sessions.SaveSession(*session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	count, err := countMoviesWithSpinner(client)
	if err != nil {
		fmt.Printf("✗ Signed in, but the catalog could not be read: %v\n", err)
		return nil
	}

	fmt.Println()
	fmt.Printf("✓ Session saved. %d movies in the catalog.\n", count)
	fmt.Println("Run marquee again to open the dashboard.")
	return nil
}

// countMoviesWithSpinner fetches the catalog with a visual spinner
func countMoviesWithSpinner(client *movieapi.Client) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	type result struct {
		count int
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		movies, err := client.ListMovies(ctx)
		resultCh <- result{len(movies), err}
	}()

	frame := 0
	fmt.Printf("\r%s Checking catalog access...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultCh:
			fmt.Print(clearSpinnerLine)
			return res.count, res.err

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking catalog access...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return 0, fmt.Errorf("catalog check timed out")
		}
	}
}

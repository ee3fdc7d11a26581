package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/slatehq/slate/internal/api"
	"github.com/slatehq/slate/internal/cli"
	"github.com/slatehq/slate/internal/query"
	"github.com/slatehq/slate/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory can set SLATE_* vars during
	// development. Missing file is fine.
	_ = godotenv.Load()

	configDir := os.Getenv("SLATE_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configDir = filepath.Join(home, ".slate")
	}

	tokens, err := session.NewTokenFile(configDir)
	if err != nil {
		return fmt.Errorf("opening config dir: %w", err)
	}

	// Request logging goes to a file, never the terminal: the TUI owns
	// the screen.
	var observer api.Observer = api.NoopObserver{}
	if os.Getenv("SLATE_LOG") != "" {
		logCfg := zap.NewProductionConfig()
		logCfg.OutputPaths = []string{filepath.Join(configDir, "slate.log")}
		logger, err := logCfg.Build()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer logger.Sync()
		observer = api.NewZapObserver(logger)
	}

	client := api.NewClient(api.LoadConfig(), tokens, observer)
	auth := api.NewAuthClient(client)

	app := &cli.App{
		Auth:       auth,
		Projects:   api.NewProjectsClient(client),
		Tasks:      api.NewTasksClient(client),
		CRM:        api.NewCRMClient(client),
		HR:         api.NewHRClient(client),
		Accounting: api.NewAccountingClient(client),
		Equipment:  api.NewEquipmentClient(client),
		Production: api.NewProductionClient(client),
		Dashboard:  api.NewDashboardClient(client),
		Users:      api.NewUsersClient(client),

		Queries:   query.NewStore(),
		Session:   session.NewStore(auth, tokens),
		ConfigDir: configDir,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

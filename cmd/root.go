package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/cogscreen/internal/config"
	"github.com/abhisek/cogscreen/internal/logging"
	"github.com/abhisek/cogscreen/internal/questionnaire"
	"github.com/abhisek/cogscreen/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cogscreen",
	Short: "Cognitive health screening scorer",
	Long: "cogscreen scores a cognitive screening: a symptom questionnaire with adaptive follow-ups,\n" +
		"memory, attention and processing-speed games, and a risk profile with recommendations.\n" +
		"It is an educational tool, not a medical diagnosis.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		log, err := logging.New(c.Logging, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		cfg, logger = c, log
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./cogscreen.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COGSCREEN_DB env var)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured store path, then COGSCREEN_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path, store.EnsureDir(cfg.Store.Path)
	}
	return store.DefaultDBPath()
}

// repos bundles the configured repositories and their cleanup.
type repos struct {
	profiles store.ProfileRepo
	events   store.EventRepo // nil on backends without events
	close    func() error
}

// openRepos opens the configured profile store.
func openRepos(ctx context.Context, cmd *cobra.Command) (*repos, error) {
	switch cfg.Store.Backend {
	case "redis":
		r := cfg.Store.Redis
		client, err := store.OpenRedis(ctx, r.Addr, r.Password, r.DB)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		return &repos{profiles: store.NewRedisProfileRepo(client), close: client.Close}, nil
	default:
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		logger.Debug("opened store", zap.String("path", dbPath))
		return &repos{profiles: s.ProfileRepo(), events: s.EventRepo(), close: s.Close}, nil
	}
}

// loadBank returns the configured question bank.
func loadBank() (*questionnaire.Bank, error) {
	if cfg.Questions == "" {
		return questionnaire.DefaultBank(), nil
	}
	return questionnaire.LoadBank(cfg.Questions)
}

// colorEnabled reports whether styled output should be written.
func colorEnabled(cmd *cobra.Command) bool {
	if off, _ := cmd.Flags().GetBool("no-color"); off {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

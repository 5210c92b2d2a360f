package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/leetprep/internal/attempt"
	"github.com/abhisek/leetprep/internal/catalog"
	"github.com/abhisek/leetprep/internal/config"
	"github.com/abhisek/leetprep/internal/logging"
	"github.com/abhisek/leetprep/internal/practice"
	"github.com/abhisek/leetprep/internal/spacedrep"
	"github.com/abhisek/leetprep/internal/store"
)

// app bundles everything a command needs.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	store     *store.Store
	scheduler *spacedrep.Scheduler
	practice  *practice.Service
	now       time.Time
}

// loadConfig loads the configuration and applies --log-level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		if _, err := logging.ParseLevel(level); err != nil {
			return nil, err
		}
		cfg.Log.Level = level
	}
	return cfg, nil
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	now, err := resolveNow(cmd)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(cmd.Context(), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("database opened", zap.String("path", dbPath))

	scheduler := spacedrep.NewScheduler(s.ReviewRepo(), cfg.Review, logger)
	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     s,
		scheduler: scheduler,
		practice:  practice.NewService(s, scheduler, catalog.New(cfg.Catalog, logger), logger),
		now:       now,
	}, nil
}

func (a *app) Close() error {
	_ = a.logger.Sync()
	return a.store.Close()
}

// resolveNow returns --today as a calendar date, or the current time.
func resolveNow(cmd *cobra.Command) (time.Time, error) {
	today, _ := cmd.Flags().GetString("today")
	if today == "" {
		return time.Now(), nil
	}
	d, err := attempt.ParseDate(today)
	if err != nil {
		return time.Time{}, fmt.Errorf("--today: %w", err)
	}
	return d, nil
}

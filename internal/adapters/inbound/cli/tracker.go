package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stockroom/stockroom/internal/adapters/outbound/config"
	"github.com/stockroom/stockroom/internal/adapters/outbound/store"
	"github.com/stockroom/stockroom/internal/application"
	"github.com/stockroom/stockroom/internal/domain"
)

// loadConfig resolves the effective configuration for a command invocation:
// .stockroom.yaml and environment first, then the --data flag on top.
func loadConfig(cmd *cobra.Command) (domain.Config, error) {
	cfg, err := config.New().Load(".")
	if err != nil {
		return domain.Config{}, err
	}
	if flag, _ := cmd.Flags().GetString("data"); flag != "" {
		cfg.DataFile = flag
	}
	return cfg, nil
}

// newTracker wires a service for one command invocation, with the inventory
// already loaded from the data file.
func newTracker(cmd *cobra.Command) (*application.TrackerService, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	svc := application.NewTrackerService(store.New(), cfg.DataFile, newLogger(cmd, cfg.LogLevel))
	if err := svc.Load(); err != nil {
		return nil, err
	}
	return svc, nil
}

func newLogger(cmd *cobra.Command, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)
	return log
}

package app

import (
	"fmt"

	"github.com/riskibarqy/fpl-livesync/external/fpl"
	"github.com/riskibarqy/fpl-livesync/internal/config"
	"github.com/riskibarqy/fpl-livesync/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-livesync/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
)

// NewLogger builds the process logger from LOG_FORMAT and APP_LOG_LEVEL and
// installs it as the package default.
func NewLogger(cfg config.Config) *logging.Logger {
	logger := logging.New(cfg.LogFormat, cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	return logger
}

// NewLiveSync wires one live sync pipeline. recorder may be nil.
func NewLiveSync(cfg config.Config, logger *logging.Logger, recorder usecase.RunRecorder) (*usecase.LiveSyncService, error) {
	if logger == nil {
		logger = logging.Default()
	}

	source := fpl.NewClient(fpl.ClientConfig{
		BaseURL:   cfg.FPLBaseURL,
		Timeout:   cfg.FPLTimeout,
		UserAgent: cfg.FPLUserAgent,
		Logger:    logger,
	})

	connector, err := newStoreConnector(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := usecase.NewSnapshotValidator(usecase.ValidationConfig{
		MinPlayers:        cfg.ValidationMinPlayers,
		ExpectedTeams:     cfg.ValidationExpectedTeams,
		ExpectedGameweeks: cfg.ValidationExpectedGameweeks,
	})

	return usecase.NewLiveSyncService(source, connector, validator, recorder, logger), nil
}

func newStoreConnector(cfg config.Config, logger *logging.Logger) (usecase.StoreConnector, error) {
	if cfg.DryRun {
		logger.Info("dry run enabled, writes go to an in-memory store")
		return memory.NewConnector(memory.NewStore()), nil
	}

	if cfg.DBURL == "" && cfg.DBServer == "" {
		return nil, fmt.Errorf("database url cannot be empty")
	}

	return postgres.NewConnector(postgres.ConnectorConfig{
		DSN:            DatabaseURL(cfg),
		DBName:         DatabaseName(cfg),
		ConnectTimeout: cfg.DBConnectTimeout,
		QueryTimeout:   cfg.DBQueryTimeout,
		QueryFormatter: formatDBQueryForTrace,
		Logger:         logger,
	}), nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
)

// Config stores runtime configuration for the live sync process.
type Config struct {
	AppEnv         string `validate:"oneof=dev stage prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string
	LogLevel       logging.Level
	LogFormat      string `validate:"oneof=json console"`

	FPLBaseURL   string        `validate:"required,url"`
	FPLTimeout   time.Duration `validate:"gt=0"`
	FPLUserAgent string

	DBURL      string
	DBServer   string
	DBPort     int `validate:"gt=0,lte=65535"`
	DBName     string
	DBUser     string
	DBPassword string
	DBEncrypt  bool
	// DBDisablePreparedBinary keeps lib/pq compatible with transaction poolers.
	DBDisablePreparedBinary bool
	DBConnectTimeout        time.Duration `validate:"gt=0"`
	DBQueryTimeout          time.Duration `validate:"gt=0"`

	DryRun bool

	ValidationMinPlayers        int `validate:"gt=0"`
	ValidationExpectedTeams     int `validate:"gt=0"`
	ValidationExpectedGameweeks int `validate:"gt=0"`

	UptraceEnabled     bool
	UptraceDSN         string `validate:"required_if=UptraceEnabled true"`
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string `validate:"required_if=PyroscopeEnabled true"`
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration `validate:"gt=0"`

	PushgatewayURL string `validate:"omitempty,url"`

	SchedulerSpec       string `validate:"required"`
	SchedulerTimezone   string `validate:"required"`
	SchedulerRunTimeout time.Duration `validate:"gt=0"`
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	fplTimeout, err := time.ParseDuration(getEnv("FPL_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_TIMEOUT: %w", err)
	}
	if fplTimeout <= 0 {
		return Config{}, fmt.Errorf("FPL_TIMEOUT must be > 0")
	}

	dbPort, err := getEnvAsInt("DB_PORT", 5432)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_PORT: %w", err)
	}
	dbEncrypt, err := strconv.ParseBool(getEnv("DB_ENCRYPT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_ENCRYPT: %w", err)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbConnectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_CONNECT_TIMEOUT: %w", err)
	}
	dbQueryTimeout, err := time.ParseDuration(getEnv("DB_QUERY_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_QUERY_TIMEOUT: %w", err)
	}

	dryRun, err := strconv.ParseBool(getEnv("LIVESYNC_DRY_RUN", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVESYNC_DRY_RUN: %w", err)
	}

	minPlayers, err := getEnvAsInt("VALIDATION_MIN_PLAYERS", 400)
	if err != nil {
		return Config{}, fmt.Errorf("parse VALIDATION_MIN_PLAYERS: %w", err)
	}
	expectedTeams, err := getEnvAsInt("VALIDATION_EXPECTED_TEAMS", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse VALIDATION_EXPECTED_TEAMS: %w", err)
	}
	expectedGameweeks, err := getEnvAsInt("VALIDATION_EXPECTED_GAMEWEEKS", 38)
	if err != nil {
		return Config{}, fmt.Errorf("parse VALIDATION_EXPECTED_GAMEWEEKS: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}

	schedulerRunTimeout, err := time.ParseDuration(getEnv("SCHEDULER_RUN_TIMEOUT", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULER_RUN_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "fpl-livesync"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                    logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                   strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", logging.FormatJSON))),
		FPLBaseURL:                  strings.TrimRight(strings.TrimSpace(getEnv("FPL_BASE_URL", "https://fantasy.premierleague.com/api")), "/"),
		FPLTimeout:                  fplTimeout,
		FPLUserAgent:                strings.TrimSpace(getEnv("FPL_USER_AGENT", "fpl-livesync/1.0")),
		DBURL:                       strings.TrimSpace(getEnv("DB_URL", "")),
		DBServer:                    strings.TrimSpace(getEnv("DB_SERVER", "")),
		DBPort:                      dbPort,
		DBName:                      strings.TrimSpace(getEnv("DB_NAME", "")),
		DBUser:                      strings.TrimSpace(getEnv("DB_USER", "")),
		DBPassword:                  getEnv("DB_PASSWORD", ""),
		DBEncrypt:                   dbEncrypt,
		DBDisablePreparedBinary:     dbDisablePreparedBinary,
		DBConnectTimeout:            dbConnectTimeout,
		DBQueryTimeout:              dbQueryTimeout,
		DryRun:                      dryRun,
		ValidationMinPlayers:        minPlayers,
		ValidationExpectedTeams:     expectedTeams,
		ValidationExpectedGameweeks: expectedGameweeks,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		UptraceLogsEnabled:          uptraceLogsEnabled,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		PushgatewayURL:              strings.TrimSpace(getEnv("PUSHGATEWAY_URL", "")),
		SchedulerSpec:               strings.TrimSpace(getEnv("SCHEDULER_SPEC", "*/2 * * * *")),
		SchedulerTimezone:           strings.TrimSpace(getEnv("SCHEDULER_TIMEZONE", "Europe/London")),
		SchedulerRunTimeout:         schedulerRunTimeout,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if !cfg.DryRun && cfg.DBURL == "" {
		if cfg.DBServer == "" || cfg.DBName == "" || cfg.DBUser == "" {
			return Config{}, fmt.Errorf("DB_SERVER, DB_NAME and DB_USER are required when DB_URL is empty")
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

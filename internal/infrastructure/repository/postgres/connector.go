package postgres

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const defaultConnectTimeout = 30 * time.Second

type ConnectorConfig struct {
	DSN            string
	DBName         string
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
	// QueryFormatter shapes the statement text recorded on spans.
	QueryFormatter func(query string) string
	Logger         *logging.Logger
}

// Connector opens one traced postgres handle per run.
type Connector struct {
	cfg    ConnectorConfig
	logger *logging.Logger
}

var _ usecase.StoreConnector = (*Connector)(nil)

func NewConnector(cfg ConnectorConfig) *Connector {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = defaultQueryTimeout
	}

	return &Connector{cfg: cfg, logger: logger}
}

func (c *Connector) Connect(ctx context.Context) (usecase.SyncStore, error) {
	if strings.TrimSpace(c.cfg.DSN) == "" {
		return nil, crerr.Mark(crerr.New("database dsn is empty"), usecase.ErrStorageConnectionFailed)
	}

	opts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	}
	if c.cfg.DBName != "" {
		opts = append(opts, otelsql.WithDBName(c.cfg.DBName))
	}
	if c.cfg.QueryFormatter != nil {
		opts = append(opts, otelsql.WithQueryFormatter(c.cfg.QueryFormatter))
	}

	db, err := otelsqlx.Open("postgres", c.cfg.DSN, opts...)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "open postgres"), usecase.ErrStorageConnectionFailed)
	}
	// Writes are sequential; one connection is all a run needs.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, crerr.Mark(crerr.Wrap(err, "ping postgres"), usecase.ErrStorageConnectionFailed)
	}

	c.logger.DebugContext(ctx, "postgres connection opened", "db_name", c.cfg.DBName)
	return NewStore(db, c.cfg.QueryTimeout), nil
}

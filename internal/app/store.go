package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/cricktrackr/internal/config"
	"github.com/riskibarqy/cricktrackr/internal/domain/match"
	"github.com/riskibarqy/cricktrackr/internal/domain/player"
	"github.com/riskibarqy/cricktrackr/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricktrackr/internal/infrastructure/repository/postgres"
	idgen "github.com/riskibarqy/cricktrackr/internal/platform/id"
	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
)

const maxTracedQueryLength = 512

// store bundles the repositories of the selected driver with the handles
// that must be released on shutdown.
type store struct {
	matches match.Repository
	players player.Repository

	db        *sqlx.DB
	connName  string
}

func (s *store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	stdlib.UnregisterConnConfig(s.connName)
	s.db = nil
	return err
}

func openStore(cfg config.Config, logger *logging.Logger) (*store, error) {
	if cfg.StoreDriver != config.StorePostgres {
		logger.Info("using in-memory store")
		return &store{
			matches: memory.NewMatchRepository(nil, nil),
			players: memory.NewPlayerRepository(nil, nil),
		}, nil
	}

	connCfg, err := pgxConnConfig(cfg.DBURL, cfg.DBDisablePreparedBinary)
	if err != nil {
		return nil, err
	}
	connName := stdlib.RegisterConnConfig(connCfg)

	db, err := otelsqlx.Open("pgx", connName,
		otelsql.WithDBName(connCfg.Database),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		stdlib.UnregisterConnConfig(connName)
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	st := &store{db: db, connName: connName}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	logger.Info("using postgres store", "db_name", connCfg.Database, "host", connCfg.Host)

	ids := idgen.NewUUIDGenerator()
	st.matches = postgres.NewMatchRepository(db, ids)
	st.players = postgres.NewPlayerRepository(db, ids)
	return st, nil
}

// pgxConnConfig parses a URL or keyword DSN. simpleProtocol avoids named
// prepared statements so the service can sit behind a transaction-pooling
// proxy.
func pgxConnConfig(dsn string, simpleProtocol bool) (*pgx.ConnConfig, error) {
	connCfg, err := pgx.ParseConfig(strings.TrimSpace(dsn))
	if err != nil {
		return nil, fmt.Errorf("parse DB_URL: %w", err)
	}
	if simpleProtocol {
		connCfg.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	return connCfg, nil
}

// formatDBQueryForTrace collapses whitespace in built SQL and caps its length
// before it lands on a span attribute.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}

package db

import (
	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/tsenart/nap"
)

type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// Builder returns a statement builder using the dialect's placeholders.
func (d Dialect) Builder() sq.StatementBuilderType {
	if d == Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Open connects to dsn (master;replica...) and migrates the master.
func Open(dialect Dialect, dsn string) (*nap.DB, error) {
	conn, err := nap.Open(string(dialect), dsn)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer
	if dialect == SQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := Migrate(conn.Master(), dialect); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

package db

import (
	"bytes"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"text/template"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed schema/*.sql
var embedFiles embed.FS

// MigrateData fills the dialect specific column types of the schema templates.
type MigrateData struct {
	AutoID    string
	Timestamp string
}

func migrateData(dialect Dialect) MigrateData {
	switch dialect {
	case Postgres:
		return MigrateData{AutoID: "BIGSERIAL PRIMARY KEY", Timestamp: "TIMESTAMP"}
	case SQLite:
		return MigrateData{AutoID: "INTEGER PRIMARY KEY AUTOINCREMENT", Timestamp: "DATETIME"}
	default:
		return MigrateData{AutoID: "BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY", Timestamp: "DATETIME"}
	}
}

func databaseDriver(db *sql.DB, dialect Dialect) (database.Driver, error) {
	switch dialect {
	case MySQL:
		return mysql.WithInstance(db, &mysql.Config{})
	case Postgres:
		return postgres.WithInstance(db, &postgres.Config{})
	case SQLite:
		return sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

// Migrate runs the embedded schema migrations for dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	d, err := iofs.New(&templateFS{
		data: migrateData(dialect),
		FS:   embedFiles,
	}, "schema")
	if err != nil {
		return err
	}

	driver, err := databaseDriver(db, dialect)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", d, string(dialect), driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

type templateFile struct {
	io.ReadCloser
	info *fileInfoWithSize
}

func (t *templateFile) Stat() (fs.FileInfo, error) {
	return t.info, nil
}

type templateFS struct {
	data any
	embed.FS
}

func (t *templateFS) Open(name string) (fs.File, error) {
	file, err := t.FS.Open(name)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	// directories are listed, not rendered
	if info.IsDir() {
		return t.FS.Open(name)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, t.data); err != nil {
		return nil, err
	}

	return &templateFile{
		ReadCloser: io.NopCloser(bytes.NewReader(buf.Bytes())),
		info:       &fileInfoWithSize{info, int64(buf.Len())},
	}, nil
}

type fileInfoWithSize struct {
	fs.FileInfo
	size int64
}

func (f *fileInfoWithSize) Size() int64 {
	return f.size
}

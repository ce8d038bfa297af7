package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет SQL миграции через goose
type Migrator struct {
	db     *sql.DB
	fsys   fs.FS
	logger Logger
}

// New создает мигратор для миграций из fsys (корень - каталог с *.sql)
func New(db *sql.DB, fsys fs.FS, logger Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("migrator: set goose dialect: %w", err)
	}
	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())

	return &Migrator{db: db, fsys: fsys, logger: logger}, nil
}

// Up применяет все непримененные миграции
func (m *Migrator) Up(ctx context.Context) error {
	before, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("migrator: get version: %w", err)
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migrator: apply migrations: %w", err)
	}

	after, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("migrator: get version: %w", err)
	}

	m.logger.Info("Migrations applied: version %d -> %d", before, after)
	return nil
}

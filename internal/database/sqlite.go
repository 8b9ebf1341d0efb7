package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mindfit/MindFitBack/migrations"
)

var DB *sqlx.DB

func ConnectDB(dbPath string) error {
	var err error
	DB, err = sqlx.Connect("sqlite", "file:"+dbPath+"?_time_format=sqlite")
	if err != nil {
		return fmt.Errorf("unable to open database: %w", err)
	}

	if _, err := DB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("unable to enable WAL mode: %w", err)
	}
	if _, err := DB.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("unable to enable foreign keys: %w", err)
	}

	fmt.Println("Connected to SQLite successfully")
	return nil
}

// MigrateUp applies the embedded schema migrations. It is run at boot so a
// fresh database file is usable immediately; re-running is a no-op.
func MigrateUp(dbPath string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("unable to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite://"+dbPath)
	if err != nil {
		return fmt.Errorf("unable to prepare migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}

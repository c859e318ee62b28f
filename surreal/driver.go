package surreal

import (
	"errors"
	"fmt"

	"github.com/segmentio/ksuid"
	"github.com/surrealdb/surrealdb.go"
)

type Config struct {
	URL       string `toml:"url"`
	User      string `toml:"user"`
	Pass      string `toml:"pass"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
}

type Driver struct {
	db *surrealdb.DB
}

// Open connects to the SurrealDB instance described by cfg. A missing
// URL is an error here, at startup, not a silent no-op discovered on
// the first query.
func Open(cfg Config) (*Driver, error) {
	if cfg.URL == "" {
		return nil, errors.New("surreal: no url configured")
	}
	if cfg.Namespace == "" || cfg.Database == "" {
		return nil, errors.New("surreal: namespace and database are required")
	}

	db, err := surrealdb.New(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("surreal: connecting to %s: %w", cfg.URL, err)
	}

	if cfg.User != "" {
		if _, err := db.Signin(map[string]interface{}{
			"user": cfg.User,
			"pass": cfg.Pass,
		}); err != nil {
			db.Close()
			return nil, fmt.Errorf("surreal: signing in: %w", err)
		}
	}

	if _, err := db.Use(cfg.Namespace, cfg.Database); err != nil {
		db.Close()
		return nil, fmt.Errorf("surreal: selecting %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	return &Driver{db: db}, nil
}

func (d *Driver) Close() {
	d.db.Close()
}

// newID mints a record id for table. SurrealDB record ids embed the
// table name, and ksuids keep them roughly time-sortable.
func newID(table string) string {
	return table + ":" + ksuid.New().String()
}

// isNoRow reports whether err only means that the record does not
// exist. The driver surfaces that as ErrNoRow, or as a permission
// error when selecting a specific record id.
func isNoRow(err error) bool {
	if errors.Is(err, surrealdb.ErrNoRow) {
		return true
	}

	var perr surrealdb.PermissionError
	return errors.As(err, &perr)
}

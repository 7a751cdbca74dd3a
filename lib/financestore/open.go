package financestore

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Config struct {
	// path to a local sqlite database, created if missing
	File string `json:"file"`
	// libsql / turso url, takes precedence over File
	Url string `json:"url"`
}

func (c Config) Enabled() bool {
	return c.File != "" || c.Url != ""
}

func (c Config) OpenDB() (*sql.DB, error) {
	if c.Url != "" {
		return sql.Open("libsql", c.Url)
	}
	if c.File == "" {
		return nil, fmt.Errorf("neither a history file nor url was specified")
	}

	_, statErr := os.Stat(c.File)
	if os.IsNotExist(statErr) {
		f, err := os.Create(c.File)
		if err != nil {
			return nil, err
		}
		f.Close()
	}

	db, err := sql.Open("sqlite", c.File)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

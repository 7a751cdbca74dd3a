package testutil

import (
	"database/sql"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// opens an in-memory sqlite database, applying `schema` if it is not
// empty. The database is closed when the test ends.
func OpenSqlite(t testing.TB, schema string) *sql.DB {
	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// every connection of :memory: is its own database
	database.SetMaxOpenConns(1)
	t.Cleanup(func() {
		database.Close()
	})

	if schema == "" {
		return database
	}
	_, err = database.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		t.Fatal(err)
	}
	return database
}

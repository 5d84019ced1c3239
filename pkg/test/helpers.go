package test

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"todoapi/internal/adapter/database/sqlite"
)

// findProjectRoot walks up from this file until it sees go.mod, so
// tests can locate db/migrations regardless of the package under test.
func findProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("Could not find project root directory")
	return ""
}

// InitTestDB opens a fresh in-memory sqlite database with the full
// schema applied. One connection only, so the memory database survives
// the whole test.
func InitTestDB() *sqlite.DB {
	db, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Fatal(err)
	}

	migrationsPath := filepath.Join(findProjectRoot(), "db", "migrations")

	if err := sqlite.RunMigrations(db, migrationsPath); err != nil {
		log.Fatal(err)
	}

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &sqlite.DB{
		DB:           db,
		QueryBuilder: &queryBuilder,
	}
}

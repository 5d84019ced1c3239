package sqlite

import (
	"database/sql"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	_ "github.com/mattn/go-sqlite3"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"todoapi/pkg/config"
)

type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
}

func NewDB(cfg *config.Config) (*DB, error) {
	plainDB, err := sql.Open("sqlite3", cfg.DatabasePath)

	if err != nil {
		return nil, err
	}

	if err := RunMigrations(plainDB, cfg.MigrationsPath); err != nil {
		plainDB.Close()
		return nil, err
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	sqlDB := sqldblogger.OpenDriver(cfg.DatabasePath, plainDB.Driver(), zerologadapter.New(logger))

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	plainDB.Close()

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &DB{
		DB:           sqlDB,
		QueryBuilder: &queryBuilder,
	}, nil
}

func RunMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})

	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"sqlite3",
		driver,
	)

	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/grbus/seatcore/internal/platform/config"
)

const maxConnectRetries = 10

// NewPostgresDB connects to postgres, retrying until the database is
// ready so the service can start alongside it.
func NewPostgresDB(cfg config.PostgresConfig, log *logrus.Logger) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	var db *sqlx.DB
	var err error

	for i := 1; i <= maxConnectRetries; i++ {
		log.WithFields(logrus.Fields{"attempt": i, "max": maxConnectRetries}).Info("connecting to database")

		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			log.Info("database connected")

			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}

		log.WithError(err).Warn("database not ready, waiting 2 seconds")
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}

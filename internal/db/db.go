package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"asq/internal/config"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open returns a connected GORM DB for the configured driver.
func Open(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return connect(mysql.Open(cfg.MySQLDSN), cfg.DBMaxOpenConns, log)
	case config.DriverSQLite:
		return connect(sqlite.Open(cfg.SQLitePath), cfg.DBMaxOpenConns, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// NewSQLite returns a GORM DB connected to SQLite over a single connection.
// A nil logger silences query logging.
func NewSQLite(dsn string, log logrus.FieldLogger) (*gorm.DB, error) {
	return connect(sqlite.Open(dsn), 1, log)
}

func connect(dialector gorm.Dialector, maxOpenConns int, log logrus.FieldLogger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         queryLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", dialector.Name(), err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("%s handle: %w", dialector.Name(), err)
	}
	if maxOpenConns < 1 {
		maxOpenConns = 1
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)

	return gormDB, nil
}

func queryLogger(log logrus.FieldLogger) gormlogger.Interface {
	if log == nil {
		return gormlogger.Discard
	}
	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

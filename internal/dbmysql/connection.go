package dbmysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gomessaging/internal/config"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Models lists every table owned by the service, in migration order.
func Models() []interface{} {
	return []interface{}{&User{}, &Message{}, &Notification{}, &MessageHistory{}}
}

// NewDatabase opens the configured driver and applies the pool settings.
func NewDatabase(cnf *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := logger.Warn
	if cnf.IsDevelopment() {
		level = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cnf.Database.Driver {
	case DriverSQLite:
		db, err = OpenSQLite(cnf.Database.SQLitePath, gormCfg)
	case DriverMySQL, "":
		gormCfg.PrepareStmt = true
		db, err = gorm.Open(mysql.Open(cnf.DSN()), gormCfg)
		if err == nil {
			err = configurePool(db, cnf.Database.MaxOpenConns, cnf.Database.MaxIdleConns)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cnf.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %w", cnf.Database.Driver, err)
	}

	log.Info("connected to database", zap.String("driver", db.Dialector.Name()))
	return db, nil
}

// OpenSQLite opens a sqlite database. ":memory:" is pinned to one connection so every query sees the same database.
func OpenSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true}
	}
	db, err := gorm.Open(sqlite.Open(path), gormCfg)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}
	return db, nil
}

func configurePool(db *gorm.DB, maxOpen, maxIdle int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql.DB error: %w", err)
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		sqlDB.SetMaxIdleConns(maxIdle)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

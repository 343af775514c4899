package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"real-estate-listings/internal/config"
	"real-estate-listings/internal/models"
)

type DB struct {
	db *gorm.DB
}

// New opens a connection for the configured database type. TranslateError
// is enabled so duplicate-key violations surface as gorm.ErrDuplicatedKey
// regardless of driver.
func New(cfg config.DatabaseConfig) (*DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}

	var db *gorm.DB
	var err error

	switch cfg.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.MySQL.User, cfg.MySQL.Password, cfg.MySQL.Host, cfg.MySQL.Port, cfg.MySQL.Database)
		db, err = gorm.Open(mysql.Open(dsn), gormCfg)
	case "postgres":
		sslMode := cfg.Postgres.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password,
			cfg.Postgres.Database, sslMode)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	case "sqlite", "":
		path := cfg.SQLite.Path
		if path == "" {
			path = "instance/app.db"
		}
		if dir := filepath.Dir(path); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return nil, mkErr
			}
		}
		// SQLite only enforces the cascade constraints with the pragma on
		db, err = gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	// Test connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// NewFromDB wraps an existing gorm.DB instance (used by tests)
func NewFromDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

// DB returns the underlying gorm.DB instance
func (d *DB) DB() *gorm.DB {
	return d.db
}

func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables using GORM AutoMigrate
func (d *DB) InitSchema() error {
	return d.db.AutoMigrate(
		&models.Property{},
		&models.PropertyImage{},
		&models.Favorite{},
	)
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/localchefbazaar/backend/internal/models"
)

type Kind int

const (
	KindPostgres Kind = iota + 1
	KindSQLite
	KindMongo
)

func (k Kind) String() string {
	switch k {
	case KindPostgres:
		return "postgres"
	case KindSQLite:
		return "sqlite"
	case KindMongo:
		return "mongodb"
	}
	return "unknown"
}

// KindOf picks the storage backend from the DATABASE_URL scheme.
func KindOf(dsn string) (Kind, error) {
	switch {
	case dsn == "":
		return 0, fmt.Errorf("DATABASE_URL is empty")
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return KindMongo, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return KindPostgres, nil
	case strings.HasPrefix(dsn, "sqlite:"), strings.HasPrefix(dsn, "file:"):
		return KindSQLite, nil
	}
	return 0, fmt.Errorf("unsupported DATABASE_URL scheme")
}

func configurePool(sqlDB *sql.DB, kind Kind) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	if kind == KindSQLite {
		// one writer at a time; extra connections only produce SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
		return
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

func sqliteDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite:")
	return strings.TrimPrefix(dsn, "//")
}

// Open connects gorm to postgres or sqlite, pings it and migrates the schema.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	kind, err := KindOf(dsn)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch kind {
	case KindPostgres:
		dialector = postgres.Open(dsn)
	case KindSQLite:
		dialector = sqlite.Open(sqliteDSN(dsn))
	default:
		return nil, fmt.Errorf("open %s with gorm: unsupported", kind)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: kind == KindPostgres,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	configurePool(sqlDB, kind)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/interview-prep/internal/config"
	"github.com/fadilmartias/interview-prep/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UserStore is implemented by UserRepository and MemoryUserRepository.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

var (
	_ UserStore = (*UserRepository)(nil)
	_ UserStore = (*MemoryUserRepository)(nil)
)

// NewUsers returns the postgres-backed store when a database is configured
// and an in-memory one otherwise.
func NewUsers(dbConfig *config.DBConfig, production bool) (UserStore, error) {
	if !dbConfig.Enabled() {
		log.Println("Warning: DB_HOST not set, accounts are kept in memory and lost on restart")
		return NewMemoryUserRepository(), nil
	}
	db, err := ConnectDB(dbConfig, production)
	if err != nil {
		return nil, err
	}
	return NewUserRepository(db), nil
}

func ConnectDB(dbConfig *config.DBConfig, production bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	if production {
		pgDB.SetMaxIdleConns(10)
		pgDB.SetMaxOpenConns(50)
		pgDB.SetConnMaxLifetime(time.Hour)
	} else {
		pgDB.SetMaxIdleConns(2)
		pgDB.SetMaxOpenConns(5)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

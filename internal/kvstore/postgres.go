package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record é a linha da tabela records: uma chave, um blob JSON.
type Record struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value string `gorm:"type:text"`

	UpdatedAt time.Time
}

// PostgresStore guarda cada chave como uma linha em Postgres, para quando
// o serviço roda atrás de um banco em vez de disco local.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("kvstore: get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("kvstore: migrate: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: postgres get %q: %w", key, err)
	}
	return []byte(rec.Value), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	rec := Record{Key: key, Value: string(value)}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("kvstore: postgres set %q: %w", key, err)
	}
	return nil
}

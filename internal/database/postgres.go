package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/madeira-wx/foehnwx/internal/log"
	"go.uber.org/zap"
)

// PostgresStore persists analyses in Postgres through GORM.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to the database and migrates the analyses
// table.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	// Route GORM's logging through zap
	dbLogger := logger.New(
		zap.NewStdLog(log.GetZapLogger()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("unable to connect to Postgres: %w", err)
	}

	if err := db.AutoMigrate(&AnalysisRecord{}); err != nil {
		return nil, fmt.Errorf("unable to migrate analyses table: %w", err)
	}

	log.Info("Postgres analysis store ready")
	return &PostgresStore{db: db}, nil
}

// SaveAnalysis inserts one analysis record
func (s *PostgresStore) SaveAnalysis(ctx context.Context, rec *AnalysisRecord) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

// GetAnalysis fetches one analysis record by id
func (s *PostgresStore) GetAnalysis(ctx context.Context, id string) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListAnalyses returns the most recent analyses, newest first
func (s *PostgresStore) ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	var recs []AnalysisRecord
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&recs).Error
	return recs, err
}

// Close closes the underlying connection pool
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

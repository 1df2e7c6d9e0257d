// internal/store/store.go

// Package store persists analysis runs and classified company records to
// the embedded SQLite result store.
package store

import (
	"context"
	"database/sql"
	"time"

	"hkindustry/internal/common/database"
	"hkindustry/internal/common/errors"
	"hkindustry/internal/common/logger"
	"hkindustry/internal/models"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		completed_at TEXT,
		total_companies INTEGER NOT NULL DEFAULT 0,
		medical_rd_count INTEGER NOT NULL DEFAULT 0,
		patent_brokerage_count INTEGER NOT NULL DEFAULT 0,
		other_count INTEGER NOT NULL DEFAULT 0,
		scoring_mode TEXT NOT NULL,
		threshold REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		name TEXT NOT NULL,
		description TEXT,
		business_nature TEXT,
		location TEXT,
		source TEXT NOT NULL,
		registration_number TEXT,
		website TEXT,
		employees TEXT,
		founded INTEGER,
		search_term TEXT,
		category TEXT,
		industry_classification TEXT NOT NULL,
		confidence_score REAL NOT NULL,
		isic_code TEXT,
		hsic_code TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_run ON companies(run_id)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_classification ON companies(industry_classification)`,
}

// RunRecord is one row of the runs table. CompletedAt stays empty while
// the run is in flight.
type RunRecord struct {
	ID                   string
	StartedAt            string
	CompletedAt          string
	TotalCompanies       int
	MedicalRDCount       int
	PatentBrokerageCount int
	OtherCount           int
	ScoringMode          string
	Threshold            float64
}

// Store wraps the SQLite client with the run and company operations.
type Store struct {
	client *database.SQLiteClient
	logger logger.Logger
}

func New(client *database.SQLiteClient, log logger.Logger) *Store {
	return &Store{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "store"}),
	}
}

// Migrate creates the schema. Safe to call on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.client.Exec(ctx, stmt); err != nil {
			return errors.NewStoreOpenFailedError(err)
		}
	}
	return nil
}

// BeginRun records a new analysis run before any records are written.
func (s *Store) BeginRun(ctx context.Context, runID string, startedAt time.Time, scoringMode string, threshold float64) error {
	_, err := s.client.Exec(ctx,
		`INSERT INTO runs (id, started_at, scoring_mode, threshold) VALUES (?, ?, ?, ?)`,
		runID, startedAt.UTC().Format(time.RFC3339), scoringMode, threshold,
	)
	if err != nil {
		return errors.NewStoreWriteFailedError("begin_run", err)
	}
	return nil
}

// CompleteRun stamps the run with its completion time and summary counts.
func (s *Store) CompleteRun(ctx context.Context, runID string, completedAt time.Time, summary models.Summary) error {
	_, err := s.client.Exec(ctx,
		`UPDATE runs
		 SET completed_at = ?, total_companies = ?, medical_rd_count = ?, patent_brokerage_count = ?, other_count = ?
		 WHERE id = ?`,
		completedAt.UTC().Format(time.RFC3339),
		summary.TotalCompaniesAnalyzed,
		summary.MedicalRDCompanies,
		summary.PatentBrokerageCompanies,
		summary.OtherCompanies,
		runID,
	)
	if err != nil {
		return errors.NewStoreWriteFailedError("complete_run", err)
	}
	return nil
}

// SaveCompanies writes all classified records for a run in one
// transaction so a failed run never leaves a partial company list.
func (s *Store) SaveCompanies(ctx context.Context, runID string, records []models.CompanyRecord) error {
	tx, err := s.client.GetDB().BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreWriteFailedError("save_companies", err)
	}

	for _, record := range records {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO companies (
				run_id, name, description, business_nature, location, source,
				registration_number, website, employees, founded, search_term, category,
				industry_classification, confidence_score, isic_code, hsic_code
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, record.Name, record.Description, record.BusinessNature,
			record.Location, record.Source, record.RegistrationNumber,
			record.Website, record.Employees, record.Founded, record.SearchTerm,
			record.Category, record.IndustryClassification,
			record.ConfidenceScore, record.ISICCode, record.HSICCode,
		)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.WithError(rbErr).Warn("rollback failed", nil)
			}
			return errors.NewStoreWriteFailedError("save_companies", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreWriteFailedError("save_companies", err)
	}

	s.logger.Info("companies persisted", map[string]interface{}{
		"runId":   runID,
		"records": len(records),
	})
	return nil
}

// TopCompanies returns the highest confidence classifications across all
// runs, ties broken by name.
func (s *Store) TopCompanies(ctx context.Context, limit int) ([]models.CompanyRecord, error) {
	rows, err := s.client.Query(ctx,
		`SELECT name, location, source, industry_classification, confidence_score, isic_code, hsic_code
		 FROM companies
		 ORDER BY confidence_score DESC, name ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, errors.NewStoreQueryFailedError("top_companies", err)
	}
	defer rows.Close()

	var records []models.CompanyRecord
	for rows.Next() {
		var record models.CompanyRecord
		if err := rows.Scan(
			&record.Name, &record.Location, &record.Source,
			&record.IndustryClassification, &record.ConfidenceScore,
			&record.ISICCode, &record.HSICCode,
		); err != nil {
			return nil, errors.NewStoreQueryFailedError("top_companies", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreQueryFailedError("top_companies", err)
	}

	return records, nil
}

// GetRun loads one run row by ID.
func (s *Store) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	var run RunRecord
	var completedAt sql.NullString

	err := s.client.QueryRow(ctx,
		`SELECT id, started_at, completed_at, total_companies, medical_rd_count, patent_brokerage_count, other_count, scoring_mode, threshold
		 FROM runs WHERE id = ?`,
		runID,
	).Scan(
		&run.ID, &run.StartedAt, &completedAt, &run.TotalCompanies,
		&run.MedicalRDCount, &run.PatentBrokerageCount, &run.OtherCount,
		&run.ScoringMode, &run.Threshold,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("run", runID)
		}
		return nil, errors.NewStoreQueryFailedError("get_run", err)
	}

	if completedAt.Valid {
		run.CompletedAt = completedAt.String
	}
	return &run, nil
}

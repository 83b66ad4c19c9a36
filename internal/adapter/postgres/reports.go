// Package postgres reads citizen hazard reports from the platform database.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/coastwatch/threat-aggregation-service/internal/domain"
)

// ReportStore fetches citizen reports submitted through the mobile and web
// frontends. Reports are written by the ingestion service; this store only
// reads.
type ReportStore struct {
	db *sql.DB
}

// NewReportStore opens a connection pool against the given DSN.
func NewReportStore(dsn string) (*ReportStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return &ReportStore{db: db}, nil
}

// Ping verifies the database is reachable.
func (s *ReportStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *ReportStore) Close() error {
	return s.db.Close()
}

// FetchRecent returns reports submitted within the given window, newest first.
func (s *ReportStore) FetchRecent(ctx context.Context, window time.Duration) ([]domain.CitizenReport, error) {
	cutoff := time.Now().UTC().Add(-window)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hazard_type, latitude, longitude, severity, priority_score,
			created_at, location_name, verification_status
		FROM hazard_reports
		WHERE created_at >= $1
		ORDER BY created_at DESC`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("query hazard reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.CitizenReport
	for rows.Next() {
		var (
			r            domain.CitizenReport
			locationName sql.NullString
			verification sql.NullString
		)
		if err := rows.Scan(
			&r.ID,
			&r.HazardType,
			&r.Latitude,
			&r.Longitude,
			&r.Severity,
			&r.PriorityScore,
			&r.Timestamp,
			&locationName,
			&verification,
		); err != nil {
			return nil, fmt.Errorf("scan hazard report: %w", err)
		}
		r.LocationName = locationName.String
		r.VerificationStatus = verification.String
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hazard reports: %w", err)
	}
	return reports, nil
}

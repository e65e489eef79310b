package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
	"time"

	"github.com/google/uuid"
)

type sqlUploadRecordRepository struct {
	db SQLQuerier
}

// NewSqlUploadRecordRepository creates sqlUploadRecordRepository that implements port.UploadRecordRepository
func NewSqlUploadRecordRepository(db SQLQuerier) port.UploadRecordRepository {
	return &sqlUploadRecordRepository{
		db: db,
	}
}

// Create inserts one upload history entry
func (s *sqlUploadRecordRepository) Create(ctx context.Context, record domain.UploadRecord) error {
	query := `INSERT INTO upload_records (id, document_id, filename, mime_type, category, size_bytes, outcome, url, reason, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.DocumentID,
		record.FileName,
		record.MimeType,
		record.Category,
		record.SizeBytes,
		record.Outcome,
		nullable(record.URL),
		nullable(record.Reason),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting upload record: %w", err)
	}
	return nil
}

// ListRecent returns the latest entries, newest first
func (s *sqlUploadRecordRepository) ListRecent(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	query := `SELECT id, document_id, filename, mime_type, category, size_bytes, outcome, url, reason, created_at
              FROM upload_records
              ORDER BY created_at DESC, id
              LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying upload records: %w", err)
	}
	defer rows.Close()

	var records []domain.UploadRecord
	for rows.Next() {
		var dbRec dbUploadRecord
		err := rows.Scan(
			&dbRec.ID,
			&dbRec.DocumentID,
			&dbRec.FileName,
			&dbRec.MimeType,
			&dbRec.Category,
			&dbRec.SizeBytes,
			&dbRec.Outcome,
			&dbRec.URL,
			&dbRec.Reason,
			&dbRec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning upload record: %w", err)
		}
		records = append(records, *dbRec.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upload records: %w", err)
	}

	return records, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// dbUploadRecord represents an upload record in DB
type dbUploadRecord struct {
	ID         uuid.UUID      `db:"id"`
	DocumentID string         `db:"document_id"`
	FileName   string         `db:"filename"`
	MimeType   string         `db:"mime_type"`
	Category   string         `db:"category"`
	SizeBytes  int64          `db:"size_bytes"`
	Outcome    string         `db:"outcome"`
	URL        sql.NullString `db:"url"`
	Reason     sql.NullString `db:"reason"`
	CreatedAt  time.Time      `db:"created_at"`
}

// ToDomain converts to domain.UploadRecord
func (r *dbUploadRecord) ToDomain() *domain.UploadRecord {
	return &domain.UploadRecord{
		ID:         r.ID,
		DocumentID: r.DocumentID,
		FileName:   r.FileName,
		MimeType:   r.MimeType,
		Category:   domain.Category(r.Category),
		SizeBytes:  r.SizeBytes,
		Outcome:    domain.UploadOutcome(r.Outcome),
		URL:        r.URL.String,
		Reason:     r.Reason.String,
		CreatedAt:  r.CreatedAt,
	}
}

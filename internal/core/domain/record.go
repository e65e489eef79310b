package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadOutcome is the terminal result of handling one file
type UploadOutcome string

const (
	UploadOutcomeUploaded UploadOutcome = "uploaded"
	UploadOutcomeSaved    UploadOutcome = "saved"
	UploadOutcomeFailed   UploadOutcome = "failed"
)

// UploadRecord is one entry of the upload history
type UploadRecord struct {
	ID         uuid.UUID
	DocumentID string
	FileName   string
	MimeType   string
	Category   Category
	SizeBytes  int64
	Outcome    UploadOutcome
	URL        string
	Reason     string
	CreatedAt  time.Time
}

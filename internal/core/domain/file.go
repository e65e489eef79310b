package domain

// Category is the bucket a dropped file falls into based on its extension
type Category string

const (
	CategoryImage Category = "image"
	CategoryPdf   Category = "pdf"
	CategoryOther Category = "other"
)

// UploadTarget is an in-memory file blob captured from a drop or paste event.
// It is immutable once captured and consumed by exactly one upload attempt.
type UploadTarget struct {
	Name     string
	MimeType string
	Data     []byte
}

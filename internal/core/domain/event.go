package domain

// EventSource tells which editor gesture produced a batch of files
type EventSource string

const (
	EventSourceDrop  EventSource = "drop"
	EventSourcePaste EventSource = "paste"
)

// DropEvent is one drop or paste occurrence carrying the files to dispatch
type DropEvent struct {
	DocumentID string
	Source     EventSource
	Files      []UploadTarget
}

package dropevent

import (
	"context"
	"encoding/json"
	"fmt"
	"paste-upload/internal/core/domain"
)

// dropMessage is the broker wire format of one drop/paste occurrence.
// File payloads travel base64-encoded.
type dropMessage struct {
	DocumentID string            `json:"document_id"`
	Source     string            `json:"source"`
	Files      []dropMessageFile `json:"files"`
}

type dropMessageFile struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

func (d *dropEventService) HandleMessage(ctx context.Context, data []byte) error {
	var msg dropMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("could not unmarshal drop event: %w", err)
	}
	if msg.DocumentID == "" {
		return fmt.Errorf("drop event missing document id")
	}

	source := domain.EventSource(msg.Source)
	if source != domain.EventSourcePaste {
		source = domain.EventSourceDrop
	}

	files := make([]domain.UploadTarget, 0, len(msg.Files))
	for _, f := range msg.Files {
		files = append(files, domain.UploadTarget{
			Name:     f.Name,
			MimeType: f.MimeType,
			Data:     f.Data,
		})
	}

	intercepted, err := d.uploads.HandleDrop(ctx, domain.DropEvent{
		DocumentID: msg.DocumentID,
		Source:     source,
		Files:      files,
	})
	if err != nil {
		return err
	}

	d.logger.Info("handled drop event", "document", msg.DocumentID, "files", len(files), "intercepted", intercepted)
	return nil
}

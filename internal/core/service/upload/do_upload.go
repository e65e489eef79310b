package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
	"strings"
)

const defaultFileFieldName = "file"

// Upload sends the target to the configured endpoint as multipart/form-data
// and returns the URL extracted from the JSON response. Transport errors,
// non-2xx statuses, unparseable bodies and unresolvable response paths all
// surface as errors; there is no retry.
func (s *uploadService) Upload(ctx context.Context, target domain.UploadTarget) (string, error) {
	cfg := s.settings.Current()

	headers := make(map[string]string, len(cfg.Headers)+1)
	for _, pair := range cfg.Headers {
		key := strings.TrimSpace(pair.Key)
		if key == "" {
			continue
		}
		headers[key] = pair.Value
	}

	fieldName := strings.TrimSpace(cfg.FileFieldName)
	if fieldName == "" {
		fieldName = defaultFileFieldName
	}

	// the boundary value always wins over a user-configured Content-Type
	contentType, body := EncodeMultipart(target, fieldName)
	headers["Content-Type"] = contentType

	resp, err := s.sender.Do(ctx, port.Request{
		Method:  http.MethodPost,
		URL:     cfg.Endpoint,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w %d", domain.ErrServerStatus, resp.StatusCode)
	}

	var decoded any
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrResponseParse, err)
	}

	url, ok := ExtractByPath(decoded, cfg.ResponsePath)
	if !ok {
		return "", fmt.Errorf("%w using path %q", domain.ErrResponseExtract, cfg.ResponsePath)
	}

	return url, nil
}

package upload

import (
	"bytes"
	"fmt"
	"paste-upload/internal/core/domain"
	"strconv"
	"time"
)

const boundaryPrefix = "----PasteUploadFormBoundary"

// EncodeMultipart builds a single-part multipart/form-data payload carrying
// the target's bytes under fieldName. The boundary derives from the current
// time base-36 encoded; a collision with the payload is accepted as
// negligible. It returns the composed Content-Type header value and the body.
func EncodeMultipart(target domain.UploadTarget, fieldName string) (string, []byte) {
	boundary := boundaryPrefix + strconv.FormatInt(time.Now().UnixNano(), 36)

	mimeType := target.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Disposition: form-data; name=%q; filename=%q\r\n", fieldName, target.Name)
	fmt.Fprintf(&buf, "Content-Type: %s\r\n\r\n", mimeType)
	buf.Write(target.Data)
	fmt.Fprintf(&buf, "\r\n--%s--\r\n", boundary)

	return "multipart/form-data; boundary=" + boundary, buf.Bytes()
}

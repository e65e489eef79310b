package domain

// PdfDisposition is the configured handling path for dropped PDF files
type PdfDisposition string

const (
	PdfSaveLocally PdfDisposition = "save_locally"
	PdfUpload      PdfDisposition = "upload"
	PdfAskEachTime PdfDisposition = "ask"
)

// HeaderPair is one configured request header. Keys are not required to be
// unique; at request time a later duplicate overwrites an earlier one.
type HeaderPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UploadConfig is the user-owned upload configuration. A blank FileFieldName
// is coerced to "file" at request time only and never persisted coerced.
type UploadConfig struct {
	Endpoint       string         `json:"endpoint"`
	Headers        []HeaderPair   `json:"headers"`
	FileFieldName  string         `json:"file_field_name"`
	ResponsePath   string         `json:"response_path"`
	PdfDisposition PdfDisposition `json:"pdf_disposition"`
}

// DefaultUploadConfig returns the configuration used before the user has
// saved anything.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		FileFieldName:  "file",
		ResponsePath:   "url",
		PdfDisposition: PdfSaveLocally,
	}
}

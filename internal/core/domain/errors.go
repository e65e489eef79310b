package domain

import "errors"

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrDocumentNotFound is an error thrown when a document is not registered
var ErrDocumentNotFound = errors.New("document not found")

// ErrUploadRecordNotFound is an error thrown when an upload record is not found
var ErrUploadRecordNotFound = errors.New("upload record not found")

// ErrServerStatus is an error thrown when the upload endpoint answers outside
// the 2xx range. Callers append the numeric status code.
var ErrServerStatus = errors.New("Server responded with status")

// ErrResponseParse is an error thrown when the endpoint's 2xx body is not JSON
var ErrResponseParse = errors.New("invalid JSON in upload response")

// ErrResponseExtract is an error thrown when the configured response path does
// not resolve to a string. Callers append the offending path.
var ErrResponseExtract = errors.New("Could not extract URL from response")

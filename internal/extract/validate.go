package extract

import (
	"path/filepath"
	"strings"
)

// MaxUploadBytes is the upload size ceiling enforced before extraction.
const MaxUploadBytes = 5 << 20

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".txt":  {},
	".doc":  {},
	".docx": {},
}

var allowedMimeTypes = map[string]struct{}{
	mimePDF:              {},
	mimeDOCX:             {},
	"text/plain":         {},
	"application/msword": {},
}

// ValidateUpload rejects a file by declared type/extension allow-list and by
// size before extraction is attempted.
func ValidateUpload(fileName, mimeType string, sizeBytes int64) error {
	if sizeBytes > MaxUploadBytes {
		return extractionErr("file exceeds the 5 MB limit", nil)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := allowedExtensions[ext]; ok {
		return nil
	}
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if _, ok := allowedMimeTypes[clean]; ok {
		return nil
	}
	return extractionErr("unsupported file type; use PDF, DOC, DOCX or TXT", nil)
}

package entities

import "time"

// MaxDocumentSize is the upload limit for a single document, 10 MiB.
const MaxDocumentSize = 10 << 20

var allowedDocumentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"text/plain": {},
	"text/csv":   {},
}

type Document struct {
	ID        int64
	Name      string
	Key       string
	PublicURL string
	UserEmail string
	CreatedAt time.Time
}

// Upload describes a file received from a client.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
}

func (u Upload) Validate() error {
	if u.Size <= 0 {
		return ErrFileEmpty
	}
	if u.Size > MaxDocumentSize {
		return ErrFileTooLarge
	}
	if _, ok := allowedDocumentTypes[u.ContentType]; !ok {
		return ErrFileTypeForbidden
	}
	return nil
}

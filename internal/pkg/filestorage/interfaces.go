package filestorage

import "mime/multipart"

// Storage is the profile-image storage contract: durable save under a
// deterministic name, idempotent delete, and a predictable public path.
type Storage interface {
	SaveProfileImage(fileHeader *multipart.FileHeader, scholarID string) (string, error)
	DeleteProfileImage(filename string) error
	PublicURL(filename string) string
}

package model

import "time"

// Document is metadata only. The file itself lives in the platform's
// object storage and is reachable through StorageURL.
type Document struct {
	DocumentID  string    `firestore:"documentid,omitempty"`
	Name        string    `firestore:"name,omitempty"`
	ContentType string    `firestore:"contenttype,omitempty"`
	SizeBytes   int64     `firestore:"sizebytes,omitempty"`
	StorageURL  string    `firestore:"storageurl,omitempty"`
	CreatedBy   string    `firestore:"createdby,omitempty"`
	UploadedAt  time.Time `firestore:"uploadedat,omitempty"`
}

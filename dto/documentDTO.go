package dto

type CreateDocumentRequest struct {
	Name        string `json:"name" binding:"required"`
	ContentType string `json:"contenttype"`
	SizeBytes   int64  `json:"sizebytes" binding:"min=0"`
	StorageURL  string `json:"storageurl" binding:"required,url"`
}

package models

// Attachment is file metadata attached to a task.
// FilePath is opaque to the engine; the file bytes live elsewhere.
type Attachment struct {
	ID       string `json:"id" yaml:"id"`
	FileName string `json:"file_name" yaml:"file_name"`
	FilePath string `json:"file_path" yaml:"file_path"`
	MimeType string `json:"mime_type" yaml:"mime_type"`
}

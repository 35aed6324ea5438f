package models

// Comment represents a note left on a task.
// Comments are append-only: there is no update or delete.
type Comment struct {
	ID        string `json:"id" yaml:"id"`
	Author    string `json:"author" yaml:"author"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt string `json:"created_at" yaml:"created_at"` // RFC3339, UTC
}

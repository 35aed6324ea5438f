package models

// Task represents a single card on the kanban board
type Task struct {
	ID          string       `json:"id" yaml:"id"`
	Content     string       `json:"content" yaml:"content"`
	Description *string      `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     *string      `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Labels      []string     `json:"labels" yaml:"labels"`
	Comments    []Comment    `json:"comments" yaml:"comments"`
	Attachments []Attachment `json:"attachments" yaml:"attachments"`
}

// NewTask creates a task with empty nested collections
func NewTask(id, content string) Task {
	return Task{
		ID:          id,
		Content:     content,
		Labels:      []string{},
		Comments:    []Comment{},
		Attachments: []Attachment{},
	}
}

// Clone returns a deep copy of the task.
// Nil collections come back as empty slices so they never encode as null.
func (t Task) Clone() Task {
	out := Task{
		ID:          t.ID,
		Content:     t.Content,
		Labels:      make([]string, len(t.Labels)),
		Comments:    make([]Comment, len(t.Comments)),
		Attachments: make([]Attachment, len(t.Attachments)),
	}
	if t.Description != nil {
		d := *t.Description
		out.Description = &d
	}
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	copy(out.Labels, t.Labels)
	copy(out.Comments, t.Comments)
	copy(out.Attachments, t.Attachments)
	return out
}

// GetID returns the task identifier (used by quiet CLI output)
func (t Task) GetID() string {
	return t.ID
}

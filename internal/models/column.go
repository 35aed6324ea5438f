package models

// Column represents a kanban board column (e.g., "To Do", "Doing", "Done")
// Tasks are kept in display order; index 0 is the top of the column
type Column struct {
	ID    string `json:"id" yaml:"id"`       // Unique within the board
	Title string `json:"title" yaml:"title"` // Display name of the column
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// Clone returns a deep copy of the column and all of its tasks
func (c Column) Clone() Column {
	tasks := make([]Task, len(c.Tasks))
	for i := range c.Tasks {
		tasks[i] = c.Tasks[i].Clone()
	}
	return Column{
		ID:    c.ID,
		Title: c.Title,
		Tasks: tasks,
	}
}

// TaskIDs returns the task identifiers in column order
func (c Column) TaskIDs() []string {
	ids := make([]string, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

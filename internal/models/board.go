package models

import "fmt"

// Board is the full ordered set of columns and their tasks
type Board struct {
	Columns []Column `json:"columns" yaml:"columns"`
}

// DefaultBoard returns the board used when no snapshot can be restored
func DefaultBoard() *Board {
	return &Board{
		Columns: []Column{
			{ID: DefaultTodoColumnID, Title: "To Do", Tasks: []Task{}},
			{ID: DefaultDoingColumnID, Title: "Doing", Tasks: []Task{}},
			{ID: DefaultDoneColumnID, Title: "Done", Tasks: []Task{}},
		},
	}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cols := make([]Column, len(b.Columns))
	for i := range b.Columns {
		cols[i] = b.Columns[i].Clone()
	}
	return &Board{Columns: cols}
}

// TaskCount returns the number of tasks across all columns
func (b *Board) TaskCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}

// Normalize replaces nil collections with empty ones so a decoded
// snapshot encodes the same way as a board built in memory.
func (b *Board) Normalize() {
	if b.Columns == nil {
		b.Columns = []Column{}
	}
	for i := range b.Columns {
		col := &b.Columns[i]
		if col.Tasks == nil {
			col.Tasks = []Task{}
		}
		for j := range col.Tasks {
			t := &col.Tasks[j]
			if t.Labels == nil {
				t.Labels = []string{}
			}
			if t.Comments == nil {
				t.Comments = []Comment{}
			}
			if t.Attachments == nil {
				t.Attachments = []Attachment{}
			}
		}
	}
}

// Validate checks the identifier invariants: column ids are unique within
// the board and task ids are unique across all columns.
func (b *Board) Validate() error {
	columns := make(map[string]struct{}, len(b.Columns))
	tasks := make(map[string]struct{})
	for _, col := range b.Columns {
		if col.ID == "" {
			return fmt.Errorf("%w: column with empty id", ErrInvalidBoard)
		}
		if _, dup := columns[col.ID]; dup {
			return fmt.Errorf("%w: duplicate column id %q", ErrInvalidBoard, col.ID)
		}
		columns[col.ID] = struct{}{}
		for _, t := range col.Tasks {
			if t.ID == "" {
				return fmt.Errorf("%w: task with empty id in column %q", ErrInvalidBoard, col.ID)
			}
			if _, dup := tasks[t.ID]; dup {
				return fmt.Errorf("%w: duplicate task id %q", ErrInvalidBoard, t.ID)
			}
			tasks[t.ID] = struct{}{}
		}
	}
	return nil
}

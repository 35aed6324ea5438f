package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Argument payloads use the camelCase keys sent by the board UI.
// Required fields are pointers so that a missing key can be told apart from
// an empty value.

type addColumnArgs struct {
	Title *string `json:"title"`
}

type columnArgs struct {
	ColumnID *string `json:"columnId"`
}

type addTaskArgs struct {
	ColumnID *string `json:"columnId"`
	Content  *string `json:"content"`
}

type taskArgs struct {
	TaskID *string `json:"taskId"`
}

type updateTaskArgs struct {
	TaskID  *string `json:"taskId"`
	Content *string `json:"content"`
}

type updateTaskDetailsArgs struct {
	TaskID      *string  `json:"taskId"`
	Content     *string  `json:"content"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"dueDate"`
	Labels      []string `json:"labels"`
}

type addCommentArgs struct {
	TaskID  *string `json:"taskId"`
	Content *string `json:"content"`
}

type addAttachmentArgs struct {
	TaskID   *string `json:"taskId"`
	FilePath *string `json:"filePath"`
	FileName *string `json:"fileName"`
	MimeType *string `json:"mimeType"`
}

type moveTaskArgs struct {
	SourceColID *string `json:"sourceColId"`
	DestColID   *string `json:"destColId"`
	SourceIndex *int    `json:"sourceIndex"`
	DestIndex   *int    `json:"destIndex"`
}

// decodeArgs unmarshals a payload. An empty payload or JSON null decodes to
// the zero value so that argument-less commands accept anything blank.
func decodeArgs[T any](raw json.RawMessage) (T, error) {
	var v T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return v, nil
	}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return v, fmt.Errorf("decode arguments: %w", err)
	}
	return v, nil
}

// field returns a required string argument
func field(name string, v *string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("missing field %s", name)
	}
	return *v, nil
}

// index returns a required position argument, which must not be negative
func index(name string, v *int) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("missing field %s", name)
	}
	if *v < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return *v, nil
}

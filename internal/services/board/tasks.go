package board

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// AddTask appends a new task to the end of the column
func (s *service) AddTask(ctx context.Context, columnID, content string) (*models.Board, error) {
	return s.apply(ctx, CmdAddTask, func(st *store.Store) error {
		col, ok := st.FindColumn(columnID)
		if !ok {
			return fmt.Errorf("column %q: %w", columnID, models.ErrColumnNotFound)
		}
		col.Tasks = append(col.Tasks, models.NewTask(s.newID(), content))
		return nil
	})
}

// UpdateTask replaces the task content. A missing task is tolerated as a
// no-op; the board is still persisted.
func (s *service) UpdateTask(ctx context.Context, taskID, content string) *models.Board {
	b, _ := s.apply(ctx, CmdUpdateTask, func(st *store.Store) error {
		task, ok := st.TaskRef(taskID)
		if !ok {
			s.logger.Debug("update_task: task not present", "task_id", taskID)
			return nil
		}
		task.Content = content
		return nil
	})
	return b
}

// UpdateTaskDetails replaces each provided field and leaves the rest as is.
// A request with no fields set still persists the board.
func (s *service) UpdateTaskDetails(ctx context.Context, req UpdateTaskDetailsRequest) (*models.Board, error) {
	return s.apply(ctx, CmdUpdateTaskDetails, func(st *store.Store) error {
		task, ok := st.TaskRef(req.TaskID)
		if !ok {
			return fmt.Errorf("task %q: %w", req.TaskID, models.ErrTaskNotFound)
		}

		if req.Content != nil {
			task.Content = *req.Content
		}
		if req.Description != nil {
			d := *req.Description
			task.Description = &d
		}
		if req.DueDate != nil {
			d := *req.DueDate
			task.DueDate = &d
		}
		if req.Labels != nil {
			task.Labels = append(make([]string, 0, len(req.Labels)), req.Labels...)
		}
		return nil
	})
}

// DeleteTask removes the task from whichever column holds it.
// Deleting a missing task is a no-op; the board is still persisted.
func (s *service) DeleteTask(ctx context.Context, taskID string) *models.Board {
	b, _ := s.apply(ctx, CmdDeleteTask, func(st *store.Store) error {
		if !st.RemoveTask(taskID) {
			s.logger.Debug("delete_task: task not present", "task_id", taskID)
		}
		return nil
	})
	return b
}

// AddComment appends a comment stamped with the current UTC time
func (s *service) AddComment(ctx context.Context, taskID, content string) (*models.Board, error) {
	return s.apply(ctx, CmdAddComment, func(st *store.Store) error {
		task, ok := st.TaskRef(taskID)
		if !ok {
			return fmt.Errorf("task %q: %w", taskID, models.ErrTaskNotFound)
		}
		task.Comments = append(task.Comments, models.Comment{
			ID:        s.newID(),
			Author:    s.author,
			Content:   content,
			CreatedAt: s.now().UTC().Format(time.RFC3339),
		})
		return nil
	})
}

// AddAttachment appends attachment metadata. The file itself is never touched.
func (s *service) AddAttachment(ctx context.Context, req AddAttachmentRequest) (*models.Board, error) {
	return s.apply(ctx, CmdAddAttachment, func(st *store.Store) error {
		task, ok := st.TaskRef(req.TaskID)
		if !ok {
			return fmt.Errorf("task %q: %w", req.TaskID, models.ErrTaskNotFound)
		}
		task.Attachments = append(task.Attachments, models.Attachment{
			ID:       s.newID(),
			FileName: req.FileName,
			FilePath: req.FilePath,
			MimeType: req.MimeType,
		})
		return nil
	})
}

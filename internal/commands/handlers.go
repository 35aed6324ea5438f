package commands

import (
	"context"
	"encoding/json"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

func getBoard(ctx context.Context, svc board.Service, _ json.RawMessage) (*models.Board, error) {
	return svc.GetBoard(ctx), nil
}

func addColumn(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[addColumnArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdAddColumn, err)
	}
	title, err := field("title", args.Title)
	if err != nil {
		return nil, invalidArguments(board.CmdAddColumn, err)
	}
	return svc.AddColumn(ctx, title), nil
}

func deleteColumn(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[columnArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdDeleteColumn, err)
	}
	columnID, err := field("columnId", args.ColumnID)
	if err != nil {
		return nil, invalidArguments(board.CmdDeleteColumn, err)
	}
	return svc.DeleteColumn(ctx, columnID), nil
}

func addTask(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[addTaskArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdAddTask, err)
	}
	columnID, err := field("columnId", args.ColumnID)
	if err != nil {
		return nil, invalidArguments(board.CmdAddTask, err)
	}
	content, err := field("content", args.Content)
	if err != nil {
		return nil, invalidArguments(board.CmdAddTask, err)
	}
	return svc.AddTask(ctx, columnID, content)
}

func updateTask(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[updateTaskArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdUpdateTask, err)
	}
	taskID, err := field("taskId", args.TaskID)
	if err != nil {
		return nil, invalidArguments(board.CmdUpdateTask, err)
	}
	content, err := field("content", args.Content)
	if err != nil {
		return nil, invalidArguments(board.CmdUpdateTask, err)
	}
	return svc.UpdateTask(ctx, taskID, content), nil
}

func updateTaskDetails(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[updateTaskDetailsArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdUpdateTaskDetails, err)
	}
	taskID, err := field("taskId", args.TaskID)
	if err != nil {
		return nil, invalidArguments(board.CmdUpdateTaskDetails, err)
	}
	return svc.UpdateTaskDetails(ctx, board.UpdateTaskDetailsRequest{
		TaskID:      taskID,
		Content:     args.Content,
		Description: args.Description,
		DueDate:     args.DueDate,
		Labels:      args.Labels,
	})
}

func addComment(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[addCommentArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdAddComment, err)
	}
	taskID, err := field("taskId", args.TaskID)
	if err != nil {
		return nil, invalidArguments(board.CmdAddComment, err)
	}
	content, err := field("content", args.Content)
	if err != nil {
		return nil, invalidArguments(board.CmdAddComment, err)
	}
	return svc.AddComment(ctx, taskID, content)
}

func addAttachment(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[addAttachmentArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdAddAttachment, err)
	}
	req := board.AddAttachmentRequest{}
	if req.TaskID, err = field("taskId", args.TaskID); err != nil {
		return nil, invalidArguments(board.CmdAddAttachment, err)
	}
	if req.FilePath, err = field("filePath", args.FilePath); err != nil {
		return nil, invalidArguments(board.CmdAddAttachment, err)
	}
	if req.FileName, err = field("fileName", args.FileName); err != nil {
		return nil, invalidArguments(board.CmdAddAttachment, err)
	}
	if req.MimeType, err = field("mimeType", args.MimeType); err != nil {
		return nil, invalidArguments(board.CmdAddAttachment, err)
	}
	return svc.AddAttachment(ctx, req)
}

func deleteTask(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[taskArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdDeleteTask, err)
	}
	taskID, err := field("taskId", args.TaskID)
	if err != nil {
		return nil, invalidArguments(board.CmdDeleteTask, err)
	}
	return svc.DeleteTask(ctx, taskID), nil
}

func moveTask(ctx context.Context, svc board.Service, raw json.RawMessage) (*models.Board, error) {
	args, err := decodeArgs[moveTaskArgs](raw)
	if err != nil {
		return nil, invalidArguments(board.CmdMoveTask, err)
	}
	req := board.MoveTaskRequest{}
	if req.SourceColumnID, err = field("sourceColId", args.SourceColID); err != nil {
		return nil, invalidArguments(board.CmdMoveTask, err)
	}
	if req.DestColumnID, err = field("destColId", args.DestColID); err != nil {
		return nil, invalidArguments(board.CmdMoveTask, err)
	}
	if req.SourceIndex, err = index("sourceIndex", args.SourceIndex); err != nil {
		return nil, invalidArguments(board.CmdMoveTask, err)
	}
	if req.DestIndex, err = index("destIndex", args.DestIndex); err != nil {
		return nil, invalidArguments(board.CmdMoveTask, err)
	}
	return svc.MoveTask(ctx, req)
}

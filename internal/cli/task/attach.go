package task

import (
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
)

// AttachCmd returns the task attach subcommand
func AttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Record a file attachment on a task",
		Long: `Record attachment metadata on a task. The file itself is never read or copied.

--name defaults to the base name of --path, and --mime is guessed from the
file extension when omitted.

Examples:
  tablero task attach --id=<task-id> --path=/home/me/screenshot.png
  tablero task attach --id=<task-id> --path=./design.pdf --name="Design v2" --mime=application/pdf
`,
		RunE: runAttach,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("path", "", "File path (required)")
	if err := cmd.MarkFlagRequired("path"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("name", "", "Display file name (default: base name of --path)")
	cmd.Flags().String("mime", "", "MIME type (default: guessed from extension)")

	return cmd
}

func runAttach(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	req := boardservice.AddAttachmentRequest{}
	req.TaskID, _ = cmd.Flags().GetString("id")
	req.FilePath, _ = cmd.Flags().GetString("path")
	req.FileName, _ = cmd.Flags().GetString("name")
	req.MimeType, _ = cmd.Flags().GetString("mime")

	if req.FileName == "" {
		req.FileName = filepath.Base(req.FilePath)
	}
	if req.MimeType == "" {
		req.MimeType = guessMimeType(req.FilePath)
	}

	board, err := cliInstance.App.BoardService.AddAttachment(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err)
	}

	task, _, _ := cli.FindTask(board, req.TaskID)
	attachment := task.Attachments[len(task.Attachments)-1]

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, attachment.ID)
		return err
	}

	return formatter.Success(board, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\n  File: %s (%s)\n  Attachment ID: %s\n",
			styles.Success("Attached '%s' to task '%s'", attachment.FileName, task.Content),
			attachment.FilePath,
			attachment.MimeType,
			attachment.ID)
		return err
	})
}

// guessMimeType maps a file extension to a MIME type
func guessMimeType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}

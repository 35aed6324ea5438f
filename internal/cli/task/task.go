package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DetailsCmd())
	cmd.AddCommand(CommentCmd())
	cmd.AddCommand(AttachCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

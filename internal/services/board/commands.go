package board

// Command names, as used by the dispatcher and in events and logs
const (
	CmdGetBoard          = "get_board"
	CmdAddColumn         = "add_column"
	CmdDeleteColumn      = "delete_column"
	CmdAddTask           = "add_task"
	CmdUpdateTask        = "update_task"
	CmdUpdateTaskDetails = "update_task_details"
	CmdAddComment        = "add_comment"
	CmdAddAttachment     = "add_attachment"
	CmdDeleteTask        = "delete_task"
	CmdMoveTask          = "move_task"
	CmdReload            = "reload"
)

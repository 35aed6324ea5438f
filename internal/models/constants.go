package models

// ============================================================================
// DEFAULT BOARD
// ============================================================================

// Column identifiers of the default board
const (
	DefaultTodoColumnID  = "todo"
	DefaultDoingColumnID = "doing"
	DefaultDoneColumnID  = "done"
)

// ============================================================================
// COMMENTS
// ============================================================================

// DefaultCommentAuthor is the author recorded on new comments
const DefaultCommentAuthor = "User"

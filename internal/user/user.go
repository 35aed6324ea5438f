package user

import (
	"os"
	"os/user"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// LoginPlaceholder in a comment_author setting stands for the login name
const LoginPlaceholder = "$USER"

// CurrentUsername returns the login name of the current user.
// It falls back to the USER environment variable, then to "unknown".
func CurrentUsername() string {
	if currentUser, err := user.Current(); err == nil && currentUser.Username != "" {
		return currentUser.Username
	}
	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}

// ResolveAuthor turns a comment_author setting into the name recorded on
// comments. An empty setting gives models.DefaultCommentAuthor.
func ResolveAuthor(setting string) string {
	setting = strings.TrimSpace(setting)
	if setting == "" {
		return models.DefaultCommentAuthor
	}
	return strings.ReplaceAll(setting, LoginPlaceholder, CurrentUsername())
}

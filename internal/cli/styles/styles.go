package styles

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
)

var (
	// Card styles
	CardStyle   lipgloss.Style
	CardWidth   = 80
	ColumnStyle lipgloss.Style
	ColumnWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Due:", "Labels:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Comments"
	ChipStyle     lipgloss.Style
	DueStyle      lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	initOnce sync.Once
)

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	initOnce.Do(func() {})
	apply(scheme)
}

// ensureInit applies the default scheme if Init was never called
func ensureInit() {
	initOnce.Do(func() {
		apply(*colors.Default())
	})
}

func apply(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	ChipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Label)).
		Bold(true)

	DueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Due))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))
}

// ═══════════════════════════════════════════════════════════════════
// BOARD RENDERING
// ═══════════════════════════════════════════════════════════════════

// RenderBoard lays the columns out side by side
func RenderBoard(b *models.Board) string {
	ensureInit()
	if b == nil || len(b.Columns) == 0 {
		return SubtitleStyle.Render("(no columns)")
	}

	rendered := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		rendered = append(rendered, RenderColumn(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderColumn renders one column with its tasks in order
func RenderColumn(col models.Column) string {
	ensureInit()
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))))
	sb.WriteString("\n")
	sb.WriteString(SubtitleStyle.Render(col.ID))

	if len(col.Tasks) == 0 {
		sb.WriteString("\n")
		sb.WriteString(SubtitleStyle.Render("empty"))
	}
	for i, task := range col.Tasks {
		sb.WriteString("\n")
		sb.WriteString(RenderTaskLine(i, task))
	}
	return ColumnStyle.Render(sb.String())
}

// RenderTaskLine renders a compact one-task summary: position, content, chips
func RenderTaskLine(index int, task models.Task) string {
	ensureInit()
	line := fmt.Sprintf("%d. %s", index, ValueStyle.Render(task.Content))
	for _, label := range task.Labels {
		line += " " + RenderLabelChip(label)
	}
	if task.DueDate != nil {
		line += " " + DueStyle.Render("⏰ "+*task.DueDate)
	}
	if n := len(task.Comments); n > 0 {
		line += " " + SubtitleStyle.Render(fmt.Sprintf("💬%d", n))
	}
	if n := len(task.Attachments); n > 0 {
		line += " " + SubtitleStyle.Render(fmt.Sprintf("📎%d", n))
	}
	return line
}

// RenderTaskDetail renders every field of a task inside a card
func RenderTaskDetail(task models.Task, columnTitle string) string {
	ensureInit()
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(task.Content))
	sb.WriteString("\n")
	sb.WriteString(SubtitleStyle.Render(task.ID))
	sb.WriteString("\n\n")
	sb.WriteString(LabelStyle.Render("Column: ") + ValueStyle.Render(columnTitle))

	if task.DueDate != nil {
		sb.WriteString("\n")
		sb.WriteString(LabelStyle.Render("Due: ") + DueStyle.Render(*task.DueDate))
	}
	if len(task.Labels) > 0 {
		chips := make([]string, 0, len(task.Labels))
		for _, label := range task.Labels {
			chips = append(chips, RenderLabelChip(label))
		}
		sb.WriteString("\n")
		sb.WriteString(LabelStyle.Render("Labels: ") + strings.Join(chips, " "))
	}

	sb.WriteString("\n")
	sb.WriteString(SectionStyle.Render("Description"))
	sb.WriteString("\n")
	if task.Description != nil {
		sb.WriteString(RenderMarkdown(*task.Description, CardWidth-6))
	} else {
		sb.WriteString(SubtitleStyle.Italic(true).Render("No description"))
	}

	if len(task.Comments) > 0 {
		sb.WriteString("\n")
		sb.WriteString(SectionStyle.Render(fmt.Sprintf("Comments (%d)", len(task.Comments))))
		for _, c := range task.Comments {
			sb.WriteString("\n")
			sb.WriteString(SubtitleStyle.Render(c.Author+" · "+c.CreatedAt) + "\n  " + ValueStyle.Render(c.Content))
		}
	}

	if len(task.Attachments) > 0 {
		sb.WriteString("\n")
		sb.WriteString(SectionStyle.Render(fmt.Sprintf("Attachments (%d)", len(task.Attachments))))
		for _, a := range task.Attachments {
			sb.WriteString("\n")
			sb.WriteString(ValueStyle.Render("• "+a.FileName) + SubtitleStyle.Render(fmt.Sprintf(" (%s) %s", a.MimeType, a.FilePath)))
		}
	}

	return RenderCard(sb.String())
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders markdown for the terminal, falling back to the raw text
func RenderMarkdown(text string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}

// RenderLabelChip renders a label as "[name]"
func RenderLabelChip(label string) string {
	ensureInit()
	return ChipStyle.Render("[" + label + "]")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	ensureInit()
	return CardStyle.Render(content)
}

// Success renders a confirmation line
func Success(format string, args ...any) string {
	ensureInit()
	return SuccessStyle.Render("✓") + " " + fmt.Sprintf(format, args...)
}

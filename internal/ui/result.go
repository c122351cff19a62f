package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result is the box printed once a command finishes.
type Result struct {
	Type            ResultType
	Title           string   // e.g., "Message Sent"
	Details         []Detail // Key-value details to display
	Error           error    // Error (for failure results)
	Troubleshooting []string // Hint lines (for failure results)
	Width           int      // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Detail) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box. hint may span several
// lines; each becomes one troubleshooting line.
func NewFailureResult(title string, err error, hint string) *Result {
	var tips []string
	for _, line := range strings.Split(hint, "\n") {
		if strings.TrimSpace(line) != "" {
			tips = append(tips, line)
		}
	}
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: tips,
		Width:           GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width, nil)

	var (
		lines  []string
		border lipgloss.TerminalColor
	)

	switch r.Type {
	case ResultFailure:
		border = ErrorColor
		lines = append(lines, ErrorTitleStyle.Render(fmt.Sprintf("%s  FAILED  ─  %s", FailureMarker, r.Title)))
		if r.Error != nil {
			lines = append(lines, "", ErrorMessageStyle.Render(r.Error.Error()))
		}
		if len(r.Details) > 0 {
			lines = append(lines, "")
			lines = append(lines, renderDetails(r.Details)...)
		}
		if len(r.Troubleshooting) > 0 {
			lines = append(lines, "")
			for _, tip := range r.Troubleshooting {
				lines = append(lines, TroubleshootingItemStyle.Render(tip))
			}
		}
	default:
		border = SuccessColor
		lines = append(lines, SuccessTitleStyle.Render(fmt.Sprintf("%s  SUCCESS  ─  %s", SuccessMarker, r.Title)))
		if len(r.Details) > 0 {
			lines = append(lines, "")
			lines = append(lines, renderDetails(r.Details)...)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

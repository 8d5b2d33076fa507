package todo

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Errors returned by List operations. Callers match them with errors.Is.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrFileExists   = errors.New("file already exists")
	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("i/o error")
	ErrEncode       = errors.New("serialization error")
	ErrDecode       = errors.New("deserialization error")
)

// Priority represents a task priority.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the priority label used both for display and in snapshot files.
func (p Priority) String() string {
	switch p {
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Low"
	}
}

// MarshalText encodes the priority as its label.
func (p Priority) MarshalText() ([]byte, error) {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("invalid priority %d", int(p))
	}
}

// UnmarshalText decodes an exact priority label ("Low", "Medium" or "High").
func (p *Priority) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Low":
		*p = PriorityLow
	case "Medium":
		*p = PriorityMedium
	case "High":
		*p = PriorityHigh
	default:
		return fmt.Errorf("invalid priority %q, must be one of: Low, Medium, High", string(text))
	}
	return nil
}

// ParsePriority parses user input case-insensitively.
// Unrecognized input returns PriorityLow and false.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	default:
		return PriorityLow, false
	}
}

// TimeLayout is the layout used when rendering AddTime (DD-MM-YYYY HH:MM:SS).
const TimeLayout = "02-01-2006 15:04:05"

const renderRule = "****************************"

// Task represents a single task in the list.
type Task struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	AddTime     time.Time `json:"add_time"`
}

// NewTask creates a task stamped with the current local time.
func NewTask(name, description string, priority Priority) Task {
	return Task{
		Name:        name,
		Description: description,
		Priority:    priority,
		AddTime:     time.Now(),
	}
}

// Render returns the task as a human-readable block.
func (t Task) Render() string {
	var b strings.Builder
	b.WriteString("\n" + renderRule + "\n")
	b.WriteString(fmt.Sprintf("%s | %s | %s\n", t.Name, t.Priority, t.AddTime.Format(TimeLayout)))
	b.WriteString(`"` + t.Description + `"` + "\n")
	b.WriteString(renderRule + "\n\n")
	return b.String()
}

// ValidationError represents a snapshot validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

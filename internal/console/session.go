// Package console runs the interactive task list session.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nibzard/tasker-go/internal/logging"
	"github.com/nibzard/tasker-go/internal/todo"
)

// Session owns one task list and drives it from line-oriented input.
type Session struct {
	list            *todo.List
	in              LineReader
	out             io.Writer
	log             logging.Logger
	defaultSnapshot string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithDefaultSnapshot sets the file used when a save/load prompt is left empty.
func WithDefaultSnapshot(path string) Option {
	return func(s *Session) {
		s.defaultSnapshot = path
	}
}

// WithList starts the session with an existing list instead of an empty one.
func WithList(l *todo.List) Option {
	return func(s *Session) {
		s.list = l
	}
}

// NewSession creates a session reading answers from in and writing results to out.
func NewSession(in LineReader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:  in,
		out: out,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.list == nil {
		s.list = &todo.List{}
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	return s
}

// List returns the task list owned by the session.
func (s *Session) List() *todo.List {
	return s.list
}

// PrintMenu writes the numbered command menu.
func (s *Session) PrintMenu() {
	for _, item := range menu {
		fmt.Fprintf(s.out, "%s: %s\n", item.code, item.label)
	}
}

// Run prints the menu once and then processes commands until the input is
// exhausted or ctx is canceled. Exhausted input is not an error.
func (s *Session) Run(ctx context.Context) error {
	s.PrintMenu()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("input closed, ending session")
				return nil
			}
			return err
		}
		fmt.Fprintln(s.out)
	}
}

// Step reads one command code and executes it. Only input errors are
// returned; command failures are reported on the output and the session
// carries on.
func (s *Session) Step() error {
	code, err := s.in.ReadLine(promptCommand)
	if err != nil {
		return err
	}

	switch code {
	case CmdAdd:
		return s.addTask()
	case CmdFind:
		return s.findTask()
	case CmdEdit:
		return s.editTask()
	case CmdRemove:
		return s.removeTask()
	case CmdPrint:
		fmt.Fprint(s.out, s.list.RenderAll())
		return nil
	case CmdSave:
		return s.saveTasks()
	case CmdLoad:
		return s.loadTasks()
	default:
		s.log.Debug("unrecognized command", "input", code)
		fmt.Fprintln(s.out, "I don't understand this command")
		return nil
	}
}

// readTask prompts for the fields of a new task.
func (s *Session) readTask() (todo.Task, error) {
	name, err := s.in.ReadLine(promptName)
	if err != nil {
		return todo.Task{}, err
	}
	description, err := s.in.ReadLine(promptDescription)
	if err != nil {
		return todo.Task{}, err
	}
	priorityText, err := s.in.ReadLine(promptPriority)
	if err != nil {
		return todo.Task{}, err
	}

	priority, ok := todo.ParsePriority(priorityText)
	if !ok {
		s.log.Warn("unrecognized priority, using Low", "input", priorityText)
		fmt.Fprintln(s.out, "I don't understand, priority set to Low")
	}
	return todo.NewTask(name, description, priority), nil
}

func (s *Session) addTask() error {
	task, err := s.readTask()
	if err != nil {
		return err
	}
	s.list.Add(task)
	s.log.Debug("task added", "name", task.Name, "priority", task.Priority)
	return nil
}

func (s *Session) findTask() error {
	name, err := s.in.ReadLine(promptFindName)
	if err != nil {
		return err
	}

	i, ok := s.list.Find(name)
	if !ok {
		fmt.Fprintln(s.out, "Nothing found")
		return nil
	}
	task, _ := s.list.Get(i)
	fmt.Fprint(s.out, task.Render())
	return nil
}

func (s *Session) editTask() error {
	name, err := s.in.ReadLine(promptEditName)
	if err != nil {
		return err
	}
	replacement, err := s.readTask()
	if err != nil {
		return err
	}

	if err := s.list.Edit(name, replacement); err != nil {
		s.reportTaskError("edit", name, err)
		return nil
	}
	s.log.Debug("task edited", "name", name, "new_name", replacement.Name)
	fmt.Fprintf(s.out, "Task %q updated successfully\n", name)
	return nil
}

func (s *Session) removeTask() error {
	name, err := s.in.ReadLine(promptRemoveName)
	if err != nil {
		return err
	}

	if err := s.list.Remove(name); err != nil {
		s.reportTaskError("remove", name, err)
		return nil
	}
	s.log.Debug("task removed", "name", name)
	fmt.Fprintf(s.out, "Task %q removed\n", name)
	return nil
}

func (s *Session) reportTaskError(op, name string, err error) {
	if errors.Is(err, todo.ErrTaskNotFound) {
		fmt.Fprintf(s.out, "Task %q doesn't exist\n", name)
		return
	}
	s.log.Error("task "+op+" failed", "name", name, "err", err)
	fmt.Fprintf(s.out, "Failed to %s task %q: %v\n", op, name, err)
}

func (s *Session) saveTasks() error {
	path, err := s.readPath(promptSavePath)
	if err != nil || path == "" {
		return err
	}

	if err := s.list.Save(path); err != nil {
		s.log.Error("save failed", "path", path, "err", err)
		if errors.Is(err, todo.ErrFileExists) {
			fmt.Fprintf(s.out, "%q already exists\n", path)
			return nil
		}
		fmt.Fprintf(s.out, "Failed to store data: %v\n", err)
		return nil
	}
	s.log.Info("snapshot saved", "path", path, "tasks", s.list.Len())
	fmt.Fprintln(s.out, "Data stored successfully")
	return nil
}

func (s *Session) loadTasks() error {
	path, err := s.readPath(promptLoadPath)
	if err != nil || path == "" {
		return err
	}

	if err := s.list.Load(path); err != nil {
		s.log.Error("load failed", "path", path, "err", err)
		if errors.Is(err, todo.ErrFileNotFound) {
			fmt.Fprintf(s.out, "%q doesn't exist\n", path)
			return nil
		}
		fmt.Fprintf(s.out, "Failed to read data: %v\n", err)
		return nil
	}
	s.log.Info("snapshot loaded", "path", path, "tasks", s.list.Len())
	fmt.Fprintln(s.out, "Data loaded successfully")
	return nil
}

// readPath prompts for a file path, falling back to the default snapshot
// file on an empty answer. It returns "" when neither is available.
func (s *Session) readPath(prompt string) (string, error) {
	if s.defaultSnapshot != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, s.defaultSnapshot)
	}
	path, err := s.in.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = s.defaultSnapshot
	}
	if path == "" {
		fmt.Fprintln(s.out, "No file name given")
	}
	return path, nil
}

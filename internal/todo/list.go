package todo

import (
	"fmt"
	"strings"
)

// List is an ordered, in-memory collection of tasks.
// The zero value is an empty list ready to use.
type List struct {
	tasks []Task
}

// NewList returns a list holding the given tasks in order.
func NewList(tasks ...Task) *List {
	l := &List{}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in list order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Get returns the task at index i.
func (l *List) Get(i int) (Task, bool) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Add appends a task to the end of the list.
func (l *List) Add(task Task) {
	l.tasks = append(l.tasks, task)
}

// Find returns the index of the first task whose name equals name exactly.
func (l *List) Find(name string) (int, bool) {
	for i := range l.tasks {
		if l.tasks[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Edit copies the name, description and priority of replacement onto the
// first task named name. AddTime is kept.
func (l *List) Edit(name string, replacement Task) error {
	i, ok := l.Find(name)
	if !ok {
		return fmt.Errorf("edit %q: %w", name, ErrTaskNotFound)
	}
	l.tasks[i].Name = replacement.Name
	l.tasks[i].Description = replacement.Description
	l.tasks[i].Priority = replacement.Priority
	return nil
}

// Remove deletes the first task named name. Later tasks shift left.
func (l *List) Remove(name string) error {
	i, ok := l.Find(name)
	if !ok {
		return fmt.Errorf("remove %q: %w", name, ErrTaskNotFound)
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

// RenderAll returns the rendered blocks of every task in list order.
func (l *List) RenderAll() string {
	var b strings.Builder
	for _, task := range l.tasks {
		b.WriteString(task.Render())
	}
	return b.String()
}

// Replace swaps the whole contents of the list.
func (l *List) Replace(tasks []Task) {
	l.tasks = append([]Task(nil), tasks...)
}

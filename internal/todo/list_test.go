package todo

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAddPreservesOrder(t *testing.T) {
	l := &List{}
	names := []string{"first", "second", "third"}
	for _, name := range names {
		l.Add(NewTask(name, "", PriorityLow))
	}

	if l.Len() != len(names) {
		t.Fatalf("Len: got %d, want %d", l.Len(), len(names))
	}

	out := l.RenderAll()
	last := -1
	for _, name := range names {
		idx := strings.Index(out, "\n"+name+" | ")
		if idx < 0 {
			t.Fatalf("RenderAll missing %q", name)
		}
		if idx <= last {
			t.Errorf("RenderAll: %q out of order", name)
		}
		last = idx
	}
	if got := strings.Count(out, "****************************\n\n"); got != len(names) {
		t.Errorf("RenderAll blocks: got %d, want %d", got, len(names))
	}
}

func TestRenderAllEmpty(t *testing.T) {
	l := &List{}
	if got := l.RenderAll(); got != "" {
		t.Errorf("RenderAll on empty list: got %q, want empty", got)
	}
}

func TestFind(t *testing.T) {
	l := NewList(
		NewTask("alpha", "", PriorityLow),
		NewTask("beta", "first beta", PriorityLow),
		NewTask("beta", "second beta", PriorityHigh),
	)

	tests := []struct {
		name    string
		query   string
		wantIdx int
		wantOK  bool
	}{
		{"existing", "alpha", 0, true},
		{"duplicate returns first", "beta", 1, true},
		{"case sensitive", "Alpha", -1, false},
		{"missing", "gamma", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := l.Find(tt.query)
			if idx != tt.wantIdx || ok != tt.wantOK {
				t.Errorf("Find(%q): got (%d, %v), want (%d, %v)", tt.query, idx, ok, tt.wantIdx, tt.wantOK)
			}
		})
	}
}

func TestGet(t *testing.T) {
	l := NewList(NewTask("only", "", PriorityLow))

	if task, ok := l.Get(0); !ok || task.Name != "only" {
		t.Errorf("Get(0): got (%+v, %v)", task, ok)
	}
	if _, ok := l.Get(1); ok {
		t.Error("Get(1) should be out of range")
	}
	if _, ok := l.Get(-1); ok {
		t.Error("Get(-1) should be out of range")
	}
}

func TestRemove(t *testing.T) {
	l := NewList(
		NewTask("a", "", PriorityLow),
		NewTask("b", "", PriorityLow),
		NewTask("c", "", PriorityLow),
	)

	if err := l.Remove("b"); err != nil {
		t.Fatalf("Remove(b) failed: %v", err)
	}
	if _, ok := l.Find("b"); ok {
		t.Error("Find(b) after remove should fail")
	}
	if idx, _ := l.Find("c"); idx != 1 {
		t.Errorf("c should shift left to index 1, got %d", idx)
	}
}

func TestRemoveMissingLeavesListUnchanged(t *testing.T) {
	l := NewList(
		NewTask("a", "", PriorityLow),
		NewTask("b", "", PriorityLow),
	)
	before := l.Tasks()

	err := l.Remove("zzz")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("Remove(zzz): got %v, want ErrTaskNotFound", err)
	}

	after := l.Tasks()
	if len(after) != len(before) {
		t.Fatalf("Len changed: got %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i].Name != before[i].Name {
			t.Errorf("task %d: got %q, want %q", i, after[i].Name, before[i].Name)
		}
	}
}

func TestEditKeepsAddTime(t *testing.T) {
	added := time.Date(2023, time.December, 31, 23, 59, 0, 0, time.Local)
	l := NewList(
		Task{Name: "old", Description: "old desc", Priority: PriorityLow, AddTime: added},
		Task{Name: "other", Priority: PriorityLow, AddTime: added},
	)

	replacement := NewTask("new", "new desc", PriorityHigh)
	if err := l.Edit("old", replacement); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	task, _ := l.Get(0)
	if task.Name != "new" || task.Description != "new desc" || task.Priority != PriorityHigh {
		t.Errorf("Edit did not apply fields: %+v", task)
	}
	if !task.AddTime.Equal(added) {
		t.Errorf("AddTime changed: got %v, want %v", task.AddTime, added)
	}
	if _, ok := l.Find("old"); ok {
		t.Error("old name should no longer be found")
	}
}

func TestEditMissing(t *testing.T) {
	l := NewList(NewTask("a", "desc", PriorityMedium))

	err := l.Edit("missing", NewTask("x", "y", PriorityHigh))
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("Edit(missing): got %v, want ErrTaskNotFound", err)
	}

	task, _ := l.Get(0)
	if task.Name != "a" || task.Description != "desc" || task.Priority != PriorityMedium {
		t.Errorf("list changed after failed edit: %+v", task)
	}
	if l.Len() != 1 {
		t.Errorf("Len: got %d, want 1", l.Len())
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	l := NewList(NewTask("a", "", PriorityLow))
	tasks := l.Tasks()
	tasks[0].Name = "mutated"

	if task, _ := l.Get(0); task.Name != "a" {
		t.Errorf("Tasks() should return a copy, list now has %q", task.Name)
	}
}

func TestScenarioAddRenderRemove(t *testing.T) {
	l := &List{}
	l.Add(NewTask("Buy milk", "2%", PriorityLow))
	l.Add(NewTask("Call bank", "about loan", PriorityHigh))

	out := l.RenderAll()
	milk := strings.Index(out, "Buy milk | Low | ")
	bank := strings.Index(out, "Call bank | High | ")
	if milk < 0 || bank < 0 || milk > bank {
		t.Fatalf("RenderAll should show Buy milk then Call bank, got %q", out)
	}

	if err := l.Remove("Buy milk"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	out = l.RenderAll()
	if strings.Contains(out, "Buy milk") {
		t.Errorf("Buy milk still rendered: %q", out)
	}
	if !strings.Contains(out, "Call bank | High | ") {
		t.Errorf("Call bank missing: %q", out)
	}
}

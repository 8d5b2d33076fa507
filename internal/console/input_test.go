package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompterReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  first  \nsecond\r\nlast"), &out)

	want := []string{"first", "second", "last"}
	for _, w := range want {
		got, err := p.ReadLine("Enter")
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if got != w {
			t.Errorf("ReadLine: got %q, want %q", got, w)
		}
	}

	if _, err := p.ReadLine("Enter"); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine at end: got %v, want io.EOF", err)
	}
	if got := strings.Count(out.String(), "Enter: "); got != 4 {
		t.Errorf("prompts written: got %d, want 4 in %q", got, out.String())
	}
}

func TestPrompterEmptyPrompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("x\n"), &out)
	if _, err := p.ReadLine(""); err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("empty prompt should write nothing, got %q", out.String())
	}
}

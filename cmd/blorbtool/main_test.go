package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestBlorb writes a minimal Blorb with one Exec resource and
// returns its path.
func writeTestBlorb(t *testing.T) string {
	t.Helper()

	story := []byte("story bytes")
	var body []byte
	body = append(body, "GLUL"...)
	body = binary.BigEndian.AppendUint32(body, uint32(len(story)))
	body = append(body, story...)
	if len(story)%2 == 1 {
		body = append(body, 0)
	}

	ridxSize := 4 + 12
	bodyStart := 12 + 8 + ridxSize

	var out []byte
	out = append(out, "FORM"...)
	out = binary.BigEndian.AppendUint32(out, uint32(4+8+ridxSize+len(body)))
	out = append(out, "IFRS"...)
	out = append(out, "RIdx"...)
	out = binary.BigEndian.AppendUint32(out, uint32(ridxSize))
	out = binary.BigEndian.AppendUint32(out, 1)
	out = append(out, "Exec"...)
	out = binary.BigEndian.AppendUint32(out, 0)
	out = binary.BigEndian.AppendUint32(out, uint32(bodyStart))
	out = append(out, body...)

	path := filepath.Join(t.TempDir(), "test.blorb")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestListCommand(t *testing.T) {
	path := writeTestBlorb(t)

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"list", path, "--chunks"})

	if err := root.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Exec\t0") {
		t.Errorf("list output missing resource line:\n%s", got)
	}
	if !strings.Contains(got, "GLUL") {
		t.Errorf("list --chunks output missing chunk line:\n%s", got)
	}
}

func TestExtractCommand(t *testing.T) {
	path := writeTestBlorb(t)
	out := filepath.Join(t.TempDir(), "story.ulx")

	root := newRootCmd()
	root.SetArgs([]string{"extract", path, "--usage", "exec", "--id", "0", "--output", out})

	if err := root.Execute(); err != nil {
		t.Fatalf("extract: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "story bytes" {
		t.Errorf("extracted %q, want %q", data, "story bytes")
	}
}

func TestExtractBadUsage(t *testing.T) {
	path := writeTestBlorb(t)

	root := newRootCmd()
	root.SetArgs([]string{"extract", path, "--usage", "music"})

	if err := root.Execute(); err == nil {
		t.Fatal("extract with bad usage succeeded, want error")
	}
}

func TestListRejectsNonBlorb(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	os.WriteFile(path, []byte("hello"), 0o644)

	root := newRootCmd()
	root.SetArgs([]string{"list", path})

	if err := root.Execute(); err == nil {
		t.Fatal("list on a plain file succeeded, want error")
	}
}

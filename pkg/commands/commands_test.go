package commands

import (
	"strings"
	"testing"
)

func TestNewRegistersCommands(t *testing.T) {
	root := New()
	if got := strings.TrimSpace(root.Short); got != "Browse a school timetable export on the command line." {
		t.Fatalf("unexpected short description %q", got)
	}
	for _, name := range []string{"ui", "timetable", "teachers", "classrooms", "subjects", "info", "serve", "mcp", "version"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Fatalf("command %q not registered: %v", name, err)
		}
	}
}

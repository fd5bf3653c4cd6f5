package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestBundledMigrations(t *testing.T) {
	m := NewMigrator(nil)

	names, err := m.Versions()
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if len(names) == 0 || names[0] != "001_init.sql" {
		t.Fatalf("expected 001_init.sql first, got %v", names)
	}

	content, err := fs.ReadFile(m.files, "sql/001_init.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{"admins_email_key", "teachers_email_key", "students_student_id_key", "ON DELETE SET NULL"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("expected schema to contain %q", want)
		}
	}
}

func TestVersionOf(t *testing.T) {
	tests := map[string]string{
		"001_init.sql":      "001",
		"002_add_index.sql": "002",
		"003.sql":           "003",
	}
	for in, want := range tests {
		if got := versionOf(in); got != want {
			t.Fatalf("versionOf(%q) = %q, want %q", in, got, want)
		}
	}
}

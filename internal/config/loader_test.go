package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsAndFiles_DefaultsOnly(t *testing.T) {
	defaults := []byte(`
output:
  format: plain
  line_numbers: false
log:
  level: warn
`)
	s, err := LoadDefaultsAndFiles(defaults, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Output.Format != FormatPlain || s.Output.LineNumbers || s.Log.Level != "warn" {
		t.Fatalf("defaults not loaded correctly: %+v", s)
	}
}

func TestLoadDefaultsAndFiles_Overlay(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yml")
	os.WriteFile(f1, []byte(`
output:
  format: table
  line_numbers: true
`), 0o644)
	os.WriteFile(f2, []byte(`
output:
  line_numbers: false
log:
  level: debug
`), 0o644)
	defaults := []byte(`
output:
  format: plain
log:
  level: warn
`)
	s, err := LoadDefaultsAndFiles(defaults, []string{f2, f1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Output.Format != FormatTable {
		t.Fatalf("format not overridden: %s", s.Output.Format)
	}
	if s.Output.LineNumbers {
		t.Fatalf("line_numbers from b.yml should win over a.yaml")
	}
	if s.Log.Level != "debug" {
		t.Fatalf("level not overridden: %s", s.Log.Level)
	}
}

func TestLoadDefaultsAndFiles_BadYAMLMentionsFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "broken.yaml")
	os.WriteFile(f, []byte("output: [unclosed\n"), 0o644)
	_, err := LoadDefaultsAndFiles(nil, []string{f})
	if err == nil {
		t.Fatalf("expected yaml error")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("error should mention file, got: %v", err)
	}
}

func TestLoadDefaultsAndFiles_ScalarDocumentRejected(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "scalar.yaml")
	os.WriteFile(f, []byte("just a string\n"), 0o644)
	if _, err := LoadDefaultsAndFiles(nil, []string{f}); err == nil {
		t.Fatalf("expected error for non-mapping settings")
	}
}

func TestLoadDefaultsAndFiles_EmptyFileIgnored(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "empty.yaml")
	os.WriteFile(f, []byte("\n"), 0o644)
	s, err := LoadDefaultsAndFiles([]byte("output:\n  format: plain\n"), []string{f})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Output.Format != FormatPlain {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestFilesInDir(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.yaml", "a.YML", "notes.txt"} {
		os.WriteFile(filepath.Join(dir, n), []byte("{}"), 0o644)
	}
	os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755)
	files, err := FilesInDir(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.YML" || filepath.Base(files[1]) != "b.yaml" {
		t.Fatalf("unexpected files: %v", files)
	}
}

func TestFilesInDir_Missing(t *testing.T) {
	files, err := FilesInDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil || len(files) != 0 {
		t.Fatalf("want no files and no error, got %v, %v", files, err)
	}
}

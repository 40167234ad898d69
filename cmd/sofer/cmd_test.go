package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReplaceExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"paper.md", "paper.docx"},
		{"reports/paper.markdown", "reports/paper.docx"},
		{"noext", "noext.docx"},
		{"dir.v2/file", "dir.v2/file.docx"},
	}
	for _, tt := range tests {
		if got := replaceExtension(tt.in, ".docx"); got != tt.want {
			t.Errorf("replaceExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "paper.md")
	if err := os.WriteFile(input, []byte("# כותרת\n\nפסקה.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "paper.docx")

	var out bytes.Buffer
	convertCmd.SetOut(&out)
	convertOutput = output
	convertTitle = "מסמך"
	defer func() { convertOutput, convertTitle = "", "" }()

	if err := runConvert(convertCmd, []string{input}); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out.String(), "Document saved to: "+output) {
		t.Errorf("output = %q, want confirmation line", out.String())
	}

	zr, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("output is not a valid package: %v", err)
	}
	zr.Close()
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	ch1 := filepath.Join(dir, "ch1.md")
	ch2 := filepath.Join(dir, "ch2.md")
	missing := filepath.Join(dir, "ch3.md")
	if err := os.WriteFile(ch1, []byte("# פרק א\n\nתוכן ראשון.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ch2, []byte("# פרק ב\n\nתוכן שני.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "full.md")
	var out, errOut bytes.Buffer
	mergeCmd.SetOut(&out)
	mergeCmd.SetErr(&errOut)
	mergeOutput = output
	mergeTitle = "המאמר המלא"
	defer func() { mergeOutput, mergeTitle = "full_paper.md", "" }()

	if err := runMerge(mergeCmd, []string{ch1, ch2, missing}); err != nil {
		t.Fatalf("merge: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	merged := string(data)
	if !strings.HasPrefix(merged, "# המאמר המלא\n") {
		t.Errorf("merged output missing title page:\n%s", merged)
	}
	for _, want := range []string{"תוכן ראשון", "תוכן שני", "---"} {
		if !strings.Contains(merged, want) {
			t.Errorf("merged output missing %q", want)
		}
	}
	if !strings.Contains(errOut.String(), "skipping missing chapter") {
		t.Errorf("stderr = %q, want missing-chapter warning", errOut.String())
	}
	if !strings.Contains(out.String(), "Merged 2 chapters into: "+output) {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestMergeAllMissing(t *testing.T) {
	mergeOutput = filepath.Join(t.TempDir(), "full.md")
	defer func() { mergeOutput = "full_paper.md" }()
	mergeCmd.SetErr(new(bytes.Buffer))

	if err := runMerge(mergeCmd, []string{"/nonexistent/a.md"}); err == nil {
		t.Error("expected error when every chapter is missing")
	}
}

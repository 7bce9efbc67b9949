package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFasta(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.fasta")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanOutput(t *testing.T) {
	path := writeFasta(t, ">s1\nACGT\n\nACGT\n>s2\nMKV\n")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"scan", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		">s1\nACGTACGT\n",
		"Length: 8\n",
		"Alphabet: nucleotide\n",
		">s2\nMKV\n",
		"Length: 3\n",
		"Alphabet: protein\n",
		delimiter + "\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, delimiter); n != 2 {
		t.Fatalf("expected 2 delimiter lines, got %d", n)
	}
}

func TestScanRejectsNonFasta(t *testing.T) {
	path := writeFasta(t, "plain text\n")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"scan", path})
	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for non-FASTA input")
	}
}

func TestCheck(t *testing.T) {
	path := writeFasta(t, ">x\nACGT\n")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"check", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), ": FASTA") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	root = newRootCmd()
	out.Reset()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"check", filepath.Join(t.TempDir(), "missing.fasta")})
	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(out.String(), ": not FASTA") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

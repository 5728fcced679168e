package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestListFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.dds", "b.DDS", "c.png", "d.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := listFiles(dir, ".dds")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 .dds files (case-insensitive), got %d: %v", len(files), files)
	}
}

func TestRunPoolProcessesAllFilesAndPreservesRelativePaths(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	sub := filepath.Join(inDir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "tex.dds"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := listFiles(inDir, ".dds")
	if err != nil {
		t.Fatal(err)
	}
	err = runPool(files, inDir, outDir, false, func(data []byte) ([]byte, error) {
		upper := make([]byte, len(data))
		copy(upper, data)
		return upper, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(outDir, "nested", "tex.dds"))
	if err != nil {
		t.Fatalf("expected output file at preserved relative path: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("unexpected output contents: %q", got)
	}
}

func TestRunPoolReportsFirstError(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(inDir, "bad.dds"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	files, err := listFiles(inDir, ".dds")
	if err != nil {
		t.Fatal(err)
	}
	err = runPool(files, inDir, outDir, false, func(data []byte) ([]byte, error) {
		return nil, errBoom
	})
	if err == nil {
		t.Fatal("expected error to propagate")
	}
}

var errBoom = errors.New("boom")

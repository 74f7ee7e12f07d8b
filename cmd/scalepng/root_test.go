package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := writePNG(&buf, renderOptions{frequency: 110, detected: true, width: 80, height: 300, theme: "dark"}); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sz := img.Bounds().Size(); sz.X != 80 || sz.Y != 300 {
		t.Fatalf("size = %v", sz)
	}
}

func TestWritePNGRejectsEmptyImage(t *testing.T) {
	if err := writePNG(&bytes.Buffer{}, renderOptions{width: 0, height: 10}); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestRootCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gauge.png")
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"--freq", "440", "-d", "-o", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout.String(), "A4") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestRootCommandBadSizeLeavesOutputAlone(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gauge.png")
	if err := os.WriteFile(out, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer func() { opts.width = 80 }()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--width", "0", "-o", out})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for zero width")
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "keep" {
		t.Fatalf("output file was rewritten: %q", b)
	}
}

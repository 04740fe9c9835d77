package input

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestOpenStdin(t *testing.T) {
	r, err := Open("-", strings.NewReader("from stdin"), false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	data, _ := io.ReadAll(r)
	if string(data) != "from stdin" {
		t.Errorf("Expected %q, got %q", "from stdin", data)
	}
}

func TestOpenCompressedFile(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if _, err := enc.Write([]byte("a,b,c")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "in.zst")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r, err := Open(path, nil, true)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "a,b,c" {
		t.Errorf("Expected %q, got %q", "a,b,c", data)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope"), nil, false); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

package facade

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robertkibet/gocompress"
	"github.com/robertkibet/gocompress/rle"
)

func TestCompressSuccess(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out.rle")
	if err := os.WriteFile(in, []byte("aaabbbccc"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := New(gocompress.RLE, &rle.Codec{}, nil, nil)
	m := f.Compress(in, out)

	if !m.Success {
		t.Fatalf("expected success, got err %v", m.Err)
	}
	if m.OriginalBytes != 9 {
		t.Errorf("OriginalBytes = %d, want 9", m.OriginalBytes)
	}
	if m.CompressedBytes != 6 {
		t.Errorf("CompressedBytes = %d, want 6", m.CompressedBytes)
	}
	if m.CompressionRatio <= 0 {
		t.Error("expected a positive compression ratio")
	}
}

func TestDecompressSuccess(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	compressed := filepath.Join(dir, "out.rle")
	restored := filepath.Join(dir, "restored")
	if err := os.WriteFile(in, []byte("aaabbbccc"), 0o644); err != nil {
		t.Fatal(err)
	}

	codec := &rle.Codec{}
	f := New(gocompress.RLE, codec, nil, nil)
	if m := f.Compress(in, compressed); !m.Success {
		t.Fatalf("Compress failed: %v", m.Err)
	}

	m := f.Decompress(compressed, restored)
	if !m.Success {
		t.Fatalf("expected success, got err %v", m.Err)
	}
	if m.OriginalBytes != 9 {
		t.Errorf("OriginalBytes = %d, want 9", m.OriginalBytes)
	}
	if m.CompressedBytes != 6 {
		t.Errorf("CompressedBytes = %d, want 6", m.CompressedBytes)
	}
}

func TestCompressFailureRecordsError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist")
	out := filepath.Join(dir, "out.rle")

	f := New(gocompress.RLE, &rle.Codec{}, nil, nil)
	m := f.Compress(missing, out)

	if m.Success {
		t.Fatal("expected failure for a missing input file")
	}
	var ioErr *gocompress.IOError
	if !errors.As(m.Err, &ioErr) {
		t.Fatalf("got %v, want an *IOError", m.Err)
	}
}

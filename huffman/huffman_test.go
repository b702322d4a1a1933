package huffman

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robertkibet/gocompress"
)

func roundTrip(t *testing.T, data []byte) []byte {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	compressed := filepath.Join(dir, "out.huf")
	restored := filepath.Join(dir, "restored")

	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c := &Codec{}
	if err := c.Compress(in, compressed); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if err := c.Decompress(compressed, restored); err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(data))
	}

	out, err := os.ReadFile(compressed)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestRoundTripEmpty(t *testing.T) {
	out := roundTrip(t, []byte{})
	if len(out) != 4 {
		t.Fatalf("expected a 4-byte zero-size header, got %d bytes", len(out))
	}
}

func TestScenarioS2SingleByte(t *testing.T) {
	out := roundTrip(t, []byte("a"))
	want := []byte{0x01, 0x00, 0x00, 0x00, 0x61}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %#v, want %#v", out, want)
	}
}

func TestSingleSymbolRepeated(t *testing.T) {
	for _, n := range []int{1, 2, 5, 300} {
		data := bytes.Repeat([]byte{'z'}, n)
		out := roundTrip(t, data)
		if len(out) != 5 {
			t.Fatalf("n=%d: expected 5-byte single-symbol file, got %d bytes", n, len(out))
		}
	}
}

func TestRoundTripDistinctBytes(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	roundTrip(t, data)
}

func TestRoundTripText(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog. the dog barked back.")
	roundTrip(t, data)
}

func TestRoundTripSkewedFrequencies(t *testing.T) {
	var data []byte
	data = append(data, bytes.Repeat([]byte{'a'}, 1000)...)
	data = append(data, bytes.Repeat([]byte{'b'}, 10)...)
	data = append(data, 'c')
	roundTrip(t, data)
}

func TestPayloadSizeFormula(t *testing.T) {
	data := []byte("aaaabbbccd")
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	compressed := filepath.Join(dir, "out.huf")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c := &Codec{}
	if err := c.Compress(in, compressed); err != nil {
		t.Fatal(err)
	}

	var freq [256]uint32
	for _, b := range data {
		freq[b]++
	}
	nodes, root := buildTree(freq)
	codes := generateCodes(nodes, root)
	payloadBits := 0
	for _, b := range data {
		payloadBits += len(codes[b])
	}

	var treePacker bitPacker
	serializeTree(&treePacker, nodes, root)
	_, treeBits := treePacker.finish()

	want := 4 + 4 + (treeBits+7)/8 + 4 + (payloadBits+7)/8
	got := int(gocompress.FileSize(compressed))
	if got != want {
		t.Fatalf("compressed size = %d, want %d (tree_bits=%d payload_bits=%d)", got, want, treeBits, payloadBits)
	}
}

func TestDeterministicOutput(t *testing.T) {
	data := []byte("mississippi river")
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c := &Codec{}
	out1 := filepath.Join(dir, "a.huf")
	out2 := filepath.Join(dir, "b.huf")
	if err := c.Compress(in, out1); err != nil {
		t.Fatal(err)
	}
	if err := c.Compress(in, out2); err != nil {
		t.Fatal(err)
	}

	b1, _ := os.ReadFile(out1)
	b2, _ := os.ReadFile(out2)
	if !bytes.Equal(b1, b2) {
		t.Fatal("compressing the same input twice produced different output")
	}
}

func TestIsValid(t *testing.T) {
	dir := t.TempDir()
	c := &Codec{}

	tooShort := filepath.Join(dir, "short.huf")
	if err := os.WriteFile(tooShort, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}
	if c.IsValid(tooShort) {
		t.Error("expected a 3-byte file to be invalid")
	}

	longEnough := filepath.Join(dir, "ok.huf")
	if err := os.WriteFile(longEnough, []byte{1, 2, 3, 4}, 0o644); err != nil {
		t.Fatal(err)
	}
	if !c.IsValid(longEnough) {
		t.Error("expected a 4-byte file to be valid")
	}
}

func TestDecompressTruncatedHeader(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.huf")
	if err := os.WriteFile(bad, []byte{1, 2}, 0o644); err != nil {
		t.Fatal(err)
	}
	c := &Codec{}
	err := c.Decompress(bad, filepath.Join(dir, "out"))
	if !errors.Is(err, gocompress.ErrTruncatedHeader) {
		t.Fatalf("got %v, want ErrTruncatedHeader", err)
	}
}

func TestDecompressCorruptPayload(t *testing.T) {
	data := []byte("aabbccdd")
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	compressed := filepath.Join(dir, "out.huf")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c := &Codec{}
	if err := c.Compress(in, compressed); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(compressed)
	if err != nil {
		t.Fatal(err)
	}
	truncated := raw[:len(raw)-1]
	badPath := filepath.Join(dir, "truncated.huf")
	if err := os.WriteFile(badPath, truncated, 0o644); err != nil {
		t.Fatal(err)
	}

	err = c.Decompress(badPath, filepath.Join(dir, "out"))
	if err == nil {
		t.Fatal("expected an error decompressing a truncated payload")
	}
}

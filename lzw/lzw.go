// Package lzw implements Lempel-Ziv-Welch compression with variable-width
// codes (9 to 15 bits), a growing dictionary, and explicit CLEAR/STOP
// control codes. It is the only codec in this module that uses the shared
// bitio bit-writer/bit-reader pair; RLE is byte-aligned and Huffman packs
// its own bits.
package lzw

import (
	"os"

	"go.uber.org/zap"

	"github.com/robertkibet/gocompress"
	"github.com/robertkibet/gocompress/bitio"
)

const (
	initialCodeWidth = 9
	maxCodeWidth     = 15
	maxDictionary    = 1 << maxCodeWidth // 32768
	clearCode        = 256
	stopCode         = 257
	firstUserCode    = 258
)

// Codec is the LZW compressor/decompressor. The zero value is ready to
// use; Logger defaults to a no-op logger.
type Codec struct {
	Logger *zap.Logger
}

var _ gocompress.Codec = (*Codec)(nil)

func (c *Codec) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Compress reads inputPath whole and writes its LZW-encoded bit stream to
// outputPath.
func (c *Codec) Compress(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return gocompress.NewIOError("read", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return gocompress.NewIOError("create output", outputPath, err)
	}
	defer out.Close()

	bw := bitio.NewWriter(out)
	if err := encode(data, bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return gocompress.NewIOError("flush", outputPath, err)
	}

	c.logger().Info("lzw compress complete",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int64("original_size", int64(len(data))),
		zap.Int64("compressed_size", gocompress.FileSize(outputPath)),
	)
	return nil
}

// Decompress reads an LZW bit stream and writes the decoded original
// bytes to outputPath.
func (c *Codec) Decompress(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return gocompress.NewIOError("open input", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return gocompress.NewIOError("create output", outputPath, err)
	}
	defer out.Close()

	br := bitio.NewReader(in)
	n, err := decode(br, out)
	if err != nil {
		c.logger().Error("lzw decompress failed",
			zap.String("input", inputPath),
			zap.Error(err),
		)
		return err
	}

	c.logger().Info("lzw decompress complete",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int64("compressed_size", gocompress.FileSize(inputPath)),
		zap.Int64("decompressed_size", int64(n)),
	)
	return nil
}

// IsValid reports whether path looks like an LZW file: it exists and is
// non-empty. This does not attempt to decode the bit stream.
func (c *Codec) IsValid(path string) bool {
	if !gocompress.FileExists(path) {
		return false
	}
	return gocompress.FileSize(path) > 0
}

// Package rle implements run-length encoding: a file-level codec that
// collapses maximal runs of identical consecutive bytes into (count, byte)
// pairs.
package rle

import (
	"bufio"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/robertkibet/gocompress"
)

const maxRunLength = 255

// Codec is the RLE compressor/decompressor. The zero value is ready to
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

// Compress reads inputPath and writes its run-length encoded form to
// outputPath. An empty input produces an empty output.
func (c *Codec) Compress(inputPath, outputPath string) error {
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

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	var (
		current     byte
		count       int
		haveCurrent bool
	)

	flush := func() error {
		if !haveCurrent {
			return nil
		}
		if err := w.WriteByte(byte(count)); err != nil {
			return gocompress.NewIOError("write", outputPath, err)
		}
		if err := w.WriteByte(current); err != nil {
			return gocompress.NewIOError("write", outputPath, err)
		}
		return nil
	}

	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return gocompress.NewIOError("read", inputPath, err)
		}

		switch {
		case !haveCurrent:
			current, count, haveCurrent = b, 1, true
		case b == current && count < maxRunLength:
			count++
		default:
			if err := flush(); err != nil {
				return err
			}
			current, count = b, 1
		}
	}

	if err := flush(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return gocompress.NewIOError("flush", outputPath, err)
	}

	c.logger().Info("rle compress complete",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int64("original_size", gocompress.FileSize(inputPath)),
		zap.Int64("compressed_size", gocompress.FileSize(outputPath)),
	)
	return nil
}

// Decompress reads an RLE file and writes the expanded original bytes to
// outputPath.
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

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	for {
		count, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return gocompress.NewIOError("read", inputPath, err)
		}

		b, err := r.ReadByte()
		if err == io.EOF {
			return gocompress.ErrTruncatedRun
		}
		if err != nil {
			return gocompress.NewIOError("read", inputPath, err)
		}

		for i := 0; i < int(count); i++ {
			if err := w.WriteByte(b); err != nil {
				return gocompress.NewIOError("write", outputPath, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return gocompress.NewIOError("flush", outputPath, err)
	}

	c.logger().Info("rle decompress complete",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int64("compressed_size", gocompress.FileSize(inputPath)),
		zap.Int64("decompressed_size", gocompress.FileSize(outputPath)),
	)
	return nil
}

// IsValid reports whether path looks like an RLE file: it exists and its
// size is a non-negative even multiple of 2 (an empty file is valid).
func (c *Codec) IsValid(path string) bool {
	if !gocompress.FileExists(path) {
		return false
	}
	size := gocompress.FileSize(path)
	return size%2 == 0
}

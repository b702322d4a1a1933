package main

import (
	"fmt"

	"github.com/robertkibet/gocompress"
	"github.com/robertkibet/gocompress/huffman"
	"github.com/robertkibet/gocompress/lzw"
	"github.com/robertkibet/gocompress/rle"
)

// ArgumentError reports a malformed CLI invocation: an unknown algorithm
// name, or input/output paths that collide. It belongs to the CLI layer,
// not the core codecs, since the core never parses command-line flags.
type ArgumentError struct {
	Flag   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("gocompress: invalid %s: %s", e.Flag, e.Reason)
}

func resolveAlgorithm(name string) (gocompress.Algorithm, gocompress.Codec, error) {
	switch name {
	case "rle":
		return gocompress.RLE, &rle.Codec{Logger: logger}, nil
	case "huffman":
		return gocompress.Huffman, &huffman.Codec{Logger: logger}, nil
	case "lzw":
		return gocompress.LZW, &lzw.Codec{Logger: logger}, nil
	case "":
		return 0, nil, &ArgumentError{Flag: "algo", Reason: "required, must be 'rle', 'huffman', or 'lzw'"}
	default:
		return 0, nil, &ArgumentError{Flag: "algo", Reason: fmt.Sprintf("unsupported algorithm %q", name)}
	}
}

func checkDistinctPaths(input, output string) error {
	if input == output {
		return &ArgumentError{Flag: "output", Reason: "input and output files cannot be the same"}
	}
	return nil
}

// Package main provides the gocompress CLI tool for compressing and
// decompressing files with RLE, Huffman, or LZW.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

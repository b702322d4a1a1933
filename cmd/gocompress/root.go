package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags.
	algoName string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gocompress",
	Short: "Multi-algorithm file compression tool",
	Long: `gocompress compresses and decompresses files using one of three
algorithms: run-length encoding, static Huffman coding, or LZW.

Examples:
  # Compress with RLE
  gocompress compress --algo rle --input sample.txt --output sample.rle

  # Decompress a Huffman file
  gocompress decompress --algo huffman --input sample.huf --output restored.txt

  # Check whether a file looks like a valid LZW container
  gocompress verify --algo lzw --input sample.lzw`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return logger.Sync()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&algoName, "algo", "a", "", "compression algorithm: 'rle', 'huffman', or 'lzw'")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robertkibet/gocompress/internal/facade"
)

var (
	decompressInput  string
	decompressOutput string
)

var decompressCmd = &cobra.Command{
	Use:   "decompress",
	Short: "Decompress a file",
	RunE:  runDecompress,
}

func init() {
	decompressCmd.Flags().StringVarP(&decompressInput, "input", "i", "", "input file path")
	decompressCmd.Flags().StringVarP(&decompressOutput, "output", "o", "", "output file path")
	rootCmd.AddCommand(decompressCmd)
}

func runDecompress(cmd *cobra.Command, args []string) error {
	if decompressInput == "" {
		return &ArgumentError{Flag: "input", Reason: "required"}
	}
	if decompressOutput == "" {
		return &ArgumentError{Flag: "output", Reason: "required"}
	}
	if err := checkDistinctPaths(decompressInput, decompressOutput); err != nil {
		return err
	}

	algo, codec, err := resolveAlgorithm(algoName)
	if err != nil {
		return err
	}
	collector, err := newStatsCollector()
	if err != nil {
		return err
	}

	if !codec.IsValid(decompressInput) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s may not be a valid %s file\n", decompressInput, algo)
	}

	f := facade.New(algo, codec, collector, logger)
	m := f.Decompress(decompressInput, decompressOutput)
	if !m.Success {
		return fmt.Errorf("decompression failed: %w", m.Err)
	}

	fmt.Printf("Algorithm: %s\n", algo)
	fmt.Printf("Compressed size:   %d bytes\n", m.CompressedBytes)
	fmt.Printf("Decompressed size: %d bytes\n", m.OriginalBytes)
	fmt.Printf("Time:              %s\n", m.Duration)
	return nil
}

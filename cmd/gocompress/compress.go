package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robertkibet/gocompress/internal/facade"
)

var (
	compressInput  string
	compressOutput string
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress a file",
	RunE:  runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(&compressInput, "input", "i", "", "input file path")
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "", "output file path")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	if compressInput == "" {
		return &ArgumentError{Flag: "input", Reason: "required"}
	}
	if compressOutput == "" {
		return &ArgumentError{Flag: "output", Reason: "required"}
	}
	if err := checkDistinctPaths(compressInput, compressOutput); err != nil {
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

	f := facade.New(algo, codec, collector, logger)
	m := f.Compress(compressInput, compressOutput)
	if !m.Success {
		return fmt.Errorf("compression failed: %w", m.Err)
	}

	fmt.Printf("Algorithm: %s\n", algo)
	fmt.Printf("Original size:   %d bytes\n", m.OriginalBytes)
	fmt.Printf("Compressed size: %d bytes\n", m.CompressedBytes)
	fmt.Printf("Ratio:           %.2f%%\n", m.CompressionRatio)
	fmt.Printf("Time:            %s\n", m.Duration)
	return nil
}

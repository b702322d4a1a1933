package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyInput string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check whether a file looks like a valid container for an algorithm",
	Long: `Verify performs the same cheap structural check (IsValid) that the
decompress command runs before decoding, without actually decoding the file.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyInput, "input", "i", "", "input file path")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyInput == "" {
		return &ArgumentError{Flag: "input", Reason: "required"}
	}

	algo, codec, err := resolveAlgorithm(algoName)
	if err != nil {
		return err
	}

	if codec.IsValid(verifyInput) {
		fmt.Printf("%s looks like a valid %s file\n", verifyInput, algo)
		return nil
	}

	fmt.Printf("%s does not look like a valid %s file\n", verifyInput, algo)
	return fmt.Errorf("verification failed")
}

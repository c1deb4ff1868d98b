// Command frost-cli is a thin, single-process demonstration driver for the
// threshold signing protocol: it runs DKG and signing sessions against
// in-memory parties on one machine, rather than over a network, and prints
// bandwidth and timing figures as it goes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	numParties int
	threshold  int
	numNonces  int
	message    string
)

var rootCmd = &cobra.Command{
	Use:   "frost-cli",
	Short: "Demonstration driver for threshold Schnorr signing over secp256k1",
}

var dkgCmd = &cobra.Command{
	Use:   "dkg",
	Short: "Run distributed key generation and print the group public key",
	RunE:  runDKGCmd,
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Run DKG followed by one signing session over --message",
	RunE:  runSignCmd,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run repeated signing sessions, reporting bandwidth and nonce refreshes",
	RunE:  runBenchCmd,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&numParties, "parties", "n", 5, "total number of parties N")
	rootCmd.PersistentFlags().IntVarP(&threshold, "threshold", "t", 3, "signing threshold T")
	rootCmd.PersistentFlags().IntVarP(&numNonces, "nonces", "k", 5, "per-party nonce batch size K")
	signCmd.Flags().StringVarP(&message, "message", "m", "hello", "message to sign")
	benchCmd.Flags().StringVarP(&message, "message", "m", "hello", "message to sign")
	benchCmd.Flags().IntP("rounds", "r", 7, "number of signing sessions to run")

	rootCmd.AddCommand(dkgCmd, signCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "frost-cli: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the mate-service CLI: a small HTTP service that
// tracks shared-consumable inventory, per-person consumption, and payments
// on top of a bounded record store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

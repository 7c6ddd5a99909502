// CellPlate: battery-cell holder plate generator
//
// Generates manufacturable solid-plate models for arrays of circular cell
// bores and exports one AP214 STEP solid per packing strategy.
//
// Build:
//
//	go build -o cellplate ./cmd/cellplate
package main

import (
	"fmt"
	"os"

	"github.com/battkit/cellplate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

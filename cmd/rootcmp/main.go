// Command rootcmp compares two ROOT files and highlights differences
// in keys and histogram contents.
package main

import (
	"os"

	"github.com/amecca/rootcmp/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}

// cmd/highroad/main.go
//
// highroad aligns two sequences and prints one optimal alignment and its
// score:
//
//	highroad pair.txt 1 -1 -1
package main

import (
	"os"

	"github.com/katalvlaran/highroad/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Command perffigures regenerates the README performance figures as static
// PNG images under docs/usage/figures.
package main

import (
	"os"

	"github.com/jellllly420/libsimplenet/src/figures"
)

func main() {
	if err := figures.GenerateAll(figures.DefaultOutputDir); err != nil {
		figures.Errorf("generate figures: %v", err)
		os.Exit(1)
	}
}

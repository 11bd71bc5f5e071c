// Command decompose is a small CLI collaborator around the decomposer
// core: given a 13-tile hand shorthand, it prints every waiting
// decomposition found.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kevin-chtw/riichi-decomp/decomposer"
	"github.com/kevin-chtw/riichi-decomp/histogram"
	"github.com/kevin-chtw/riichi-decomp/tile"
)

func main() {
	hand := flag.String("hand", "", `13-tile hand shorthand, e.g. "1112345678999m"`)
	flag.Parse()

	if *hand == "" {
		fmt.Fprintln(os.Stderr, "usage: decompose -hand <shorthand>")
		os.Exit(2)
	}

	tiles, err := tile.ParseAll(*hand)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	h, err := histogram.FromTiles(tiles)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ws, err := decomposer.Decompose(h)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if ws.IsEmpty() {
		fmt.Println("not tenpai")
		return
	}
	for _, w := range ws.Regular {
		fmt.Println(w.String())
	}
	for _, w := range ws.Irregular {
		for _, t := range w.WaitingTiles {
			fmt.Printf("%s +%s\n", w.Kind, t)
		}
	}
}
